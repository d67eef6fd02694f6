package richtext

import (
	"html"
	"strconv"
	"strings"
)

// HTML renders the document as class-free HTML.
func (d Document) HTML() string {
	var b strings.Builder
	for _, n := range d.Blocks {
		writeNode(&b, n)
	}
	return b.String()
}

// MarkdownToHTML parses src and renders it.
func MarkdownToHTML(src string) string {
	return Parse(src).HTML()
}

func writeNode(b *strings.Builder, n Node) {
	switch n.Type {
	case Heading:
		level := n.Level
		if level < 1 || level > 6 {
			level = 1
		}
		tag := "h" + strconv.Itoa(level)
		wrap(b, tag, n.Children)
	case Paragraph:
		wrap(b, "p", n.Children)
	case List:
		tag := "ul"
		if n.Ordered {
			tag = "ol"
		}
		wrap(b, tag, n.Children)
	case ListItem:
		wrap(b, "li", n.Children)
	case Quote:
		wrap(b, "blockquote", n.Children)
	case CodeBlock:
		b.WriteString("<pre><code>")
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString("</code></pre>")
	case Strong:
		wrap(b, "strong", n.Children)
	case Emphasis:
		wrap(b, "em", n.Children)
	case Code:
		b.WriteString("<code>")
		b.WriteString(html.EscapeString(n.Text))
		b.WriteString("</code>")
	case Link:
		b.WriteString(`<a href="`)
		b.WriteString(html.EscapeString(safeHref(n.Href)))
		b.WriteString(`">`)
		for _, c := range n.Children {
			writeNode(b, c)
		}
		b.WriteString("</a>")
	case LineBreak:
		b.WriteString("<br>")
	case Text:
		b.WriteString(html.EscapeString(n.Text))
	}
}

func wrap(b *strings.Builder, tag string, children []Node) {
	b.WriteString("<" + tag + ">")
	for _, c := range children {
		writeNode(b, c)
	}
	b.WriteString("</" + tag + ">")
}

func safeHref(href string) string {
	lower := strings.ToLower(strings.TrimSpace(href))
	if strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "data:") {
		return "#"
	}
	return href
}
