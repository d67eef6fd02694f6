package richtext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

// Parse converts markdown into a Document. Raw HTML in the input is dropped.
func Parse(src string) Document {
	source := []byte(src)
	root := markdown.Parser().Parse(text.NewReader(source))
	return Document{Blocks: blocks(root, source)}
}

func blocks(parent ast.Node, source []byte) []Node {
	out := make([]Node, 0, parent.ChildCount())
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		if node, ok := block(n, source); ok {
			out = append(out, node)
		}
	}
	return out
}

func block(n ast.Node, source []byte) (Node, bool) {
	switch v := n.(type) {
	case *ast.Heading:
		return Node{Type: Heading, Level: v.Level, Children: inlines(v, source)}, true
	case *ast.Paragraph:
		return Node{Type: Paragraph, Children: inlines(v, source)}, true
	case *ast.TextBlock:
		return Node{Type: Paragraph, Children: inlines(v, source)}, true
	case *ast.List:
		return Node{Type: List, Ordered: v.IsOrdered(), Children: blocks(v, source)}, true
	case *ast.ListItem:
		var children []Node
		for c := v.FirstChild(); c != nil; c = c.NextSibling() {
			// Tight items hold a bare text block; flatten it into the item.
			if tb, ok := c.(*ast.TextBlock); ok {
				children = append(children, inlines(tb, source)...)
				continue
			}
			if node, ok := block(c, source); ok {
				children = append(children, node)
			}
		}
		return Node{Type: ListItem, Children: children}, true
	case *ast.Blockquote:
		return Node{Type: Quote, Children: blocks(v, source)}, true
	case *ast.FencedCodeBlock:
		return Node{Type: CodeBlock, Text: lines(v, source)}, true
	case *ast.CodeBlock:
		return Node{Type: CodeBlock, Text: lines(v, source)}, true
	default:
		return Node{}, false
	}
}

func inlines(parent ast.Node, source []byte) []Node {
	var out []Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch v := n.(type) {
		case *ast.Text:
			value := string(v.Segment.Value(source))
			if v.SoftLineBreak() {
				value += "\n"
			}
			out = appendText(out, value)
			if v.HardLineBreak() {
				out = append(out, Node{Type: LineBreak})
			}
		case *ast.String:
			out = appendText(out, string(v.Value))
		case *ast.Emphasis:
			kind := Emphasis
			if v.Level >= 2 {
				kind = Strong
			}
			out = append(out, Node{Type: kind, Children: inlines(v, source)})
		case *ast.CodeSpan:
			out = append(out, Node{Type: Code, Text: plain(inlines(v, source))})
		case *ast.Link:
			out = append(out, Node{Type: Link, Href: string(v.Destination), Children: inlines(v, source)})
		case *ast.AutoLink:
			url := string(v.URL(source))
			out = append(out, Node{Type: Link, Href: url, Children: []Node{{Type: Text, Text: url}}})
		}
	}
	return out
}

func appendText(nodes []Node, value string) []Node {
	if value == "" {
		return nodes
	}
	if last := len(nodes) - 1; last >= 0 && nodes[last].Type == Text {
		nodes[last].Text += value
		return nodes
	}
	return append(nodes, Node{Type: Text, Text: value})
}

func lines(n ast.Node, source []byte) string {
	var b strings.Builder
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(source))
	}
	return strings.TrimRight(b.String(), "\n")
}

func plain(nodes []Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.Text)
		if len(n.Children) > 0 {
			b.WriteString(plain(n.Children))
		}
	}
	return b.String()
}

// PlainText flattens the document into text, one block per line.
func (d Document) PlainText() string {
	parts := make([]string, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		if b.Type == List {
			for _, item := range b.Children {
				parts = append(parts, plain(item.Children))
			}
			continue
		}
		parts = append(parts, plain(b.Children)+b.Text)
	}
	return strings.Join(parts, "\n")
}
