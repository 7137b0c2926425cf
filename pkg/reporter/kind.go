package reporter

import (
	"fmt"

	"github.com/yaklabco/gowikitext/pkg/wikitext"
)

// NodeKind returns a short, stable label identifying the concrete type
// of a wikitext AST node. Mutation and introspection of the AST are a
// collaborator's concern, not the parser's, so this type switch lives
// in the reporter rather than pkg/wikitext.
func NodeKind(n wikitext.Node) string {
	switch n.(type) {
	case *wikitext.Paragraph:
		return "Paragraph"
	case *wikitext.Heading:
		return "Heading"
	case *wikitext.ListItem:
		return "ListItem"
	case *wikitext.PlainText:
		return "PlainText"
	case *wikitext.FormatSwitch:
		return "FormatSwitch"
	case *wikitext.WikiLink:
		return "WikiLink"
	case *wikitext.ExternalLink:
		return "ExternalLink"
	case *wikitext.Template:
		return "Template"
	case *wikitext.ArgumentReference:
		return "ArgumentReference"
	case *wikitext.Comment:
		return "Comment"
	case *wikitext.ParserTag:
		return "ParserTag"
	case *wikitext.HtmlTag:
		return "HtmlTag"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// children returns a node's direct descendants in source order, for
// tree rendering and kind counting. Runs are flattened transparently:
// their Inlines are reported as the owning node's children.
func children(n wikitext.Node) []wikitext.Node {
	switch v := n.(type) {
	case *wikitext.Paragraph:
		return inlinesToNodes(v.Inlines)
	case *wikitext.Heading:
		return inlinesToNodes(v.Inlines)
	case *wikitext.ListItem:
		return inlinesToNodes(v.Inlines)
	case *wikitext.WikiLink:
		nodes := runToNodes(v.Target)
		if v.Text != nil {
			nodes = append(nodes, runToNodes(*v.Text)...)
		}
		return nodes
	case *wikitext.ExternalLink:
		nodes := runToNodes(v.Target)
		if v.Text != nil {
			nodes = append(nodes, runToNodes(*v.Text)...)
		}
		return nodes
	case *wikitext.Template:
		nodes := runToNodes(v.Name)
		for _, arg := range v.Arguments {
			if arg.Name != nil {
				nodes = append(nodes, lineNodesToNodes(arg.Name.Lines)...)
			}
			nodes = append(nodes, lineNodesToNodes(arg.Value.Lines)...)
		}
		return nodes
	case *wikitext.ArgumentReference:
		nodes := lineNodesToNodes(v.Name.Lines)
		if v.DefaultValue != nil {
			nodes = append(nodes, lineNodesToNodes(v.DefaultValue.Lines)...)
		}
		return nodes
	case *wikitext.HtmlTag:
		if v.Content != nil {
			return lineNodesToNodes(v.Content.Lines)
		}
		return nil
	default:
		return nil
	}
}

func inlinesToNodes(inlines []wikitext.InlineNode) []wikitext.Node {
	nodes := make([]wikitext.Node, len(inlines))
	for i, inline := range inlines {
		nodes[i] = inline
	}
	return nodes
}

func runToNodes(r wikitext.Run) []wikitext.Node {
	return inlinesToNodes(r.Inlines)
}

func lineNodesToNodes(lines []wikitext.LineNode) []wikitext.Node {
	nodes := make([]wikitext.Node, len(lines))
	for i, line := range lines {
		nodes[i] = line
	}
	return nodes
}

// kindCounts walks the full document and tallies node kinds, including
// the document's top-level lines.
func kindCounts(doc *wikitext.Wikitext) map[string]int {
	counts := make(map[string]int)
	if doc == nil {
		return counts
	}
	var walk func(n wikitext.Node)
	walk = func(n wikitext.Node) {
		counts[NodeKind(n)]++
		for _, child := range children(n) {
			walk(child)
		}
	}
	for _, line := range doc.Lines {
		walk(line)
	}
	return counts
}
