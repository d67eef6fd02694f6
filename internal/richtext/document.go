// Package richtext turns model markdown into a structured document that the UI
// renders with its own styling.
package richtext

// NodeType names a document node.
type NodeType string

const (
	Heading   NodeType = "heading"
	Paragraph NodeType = "paragraph"
	List      NodeType = "list"
	ListItem  NodeType = "list_item"
	CodeBlock NodeType = "code_block"
	Quote     NodeType = "quote"
	Text      NodeType = "text"
	Strong    NodeType = "strong"
	Emphasis  NodeType = "emphasis"
	Code      NodeType = "code"
	Link      NodeType = "link"
	LineBreak NodeType = "line_break"
)

// Node is one block or inline element.
type Node struct {
	Type     NodeType `json:"type"`
	Level    int      `json:"level,omitempty"`
	Ordered  bool     `json:"ordered,omitempty"`
	Text     string   `json:"text,omitempty"`
	Href     string   `json:"href,omitempty"`
	Children []Node   `json:"children,omitempty"`
}

// Document is an ordered list of block nodes.
type Document struct {
	Blocks []Node `json:"blocks"`
}

// IsEmpty reports whether the document has no blocks.
func (d Document) IsEmpty() bool {
	return len(d.Blocks) == 0
}

func (t NodeType) isBlock() bool {
	switch t {
	case Heading, Paragraph, List, ListItem, CodeBlock, Quote:
		return true
	default:
		return false
	}
}
