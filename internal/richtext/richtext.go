// Package richtext parses rich-text markup into the flat block-tree view the
// slide splitter operates on, so the splitting logic stays independent of the
// markup dialect.
package richtext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Block is one top-level block of a rich-text fragment. Loose text nodes are
// wrapped in a paragraph so every block stays independently renderable.
type Block struct {
	// Heading reports whether this block is a heading element (h1..h6).
	Heading bool
	// Tag is the lowercase element name ("h3", "p", "ul", ...).
	Tag string
	// Inline is the block's inner markup (inline content for headings).
	Inline string
	// Outer is the block's full markup including its own tag.
	Outer string
}

// ParseBlocks scans the top-level nodes of the fragment in document order.
// Inter-element whitespace is dropped; malformed markup degrades to whatever
// the HTML5 parsing algorithm recovers.
func ParseBlocks(markup string) []Block {
	nodes, err := parseFragment(markup)
	if err != nil {
		return nil
	}
	var blocks []Block
	for _, node := range nodes {
		switch node.Type {
		case html.ElementNode:
			tag := strings.ToLower(node.Data)
			blocks = append(blocks, Block{
				Heading: isHeadingTag(tag),
				Tag:     tag,
				Inline:  renderChildren(node),
				Outer:   renderNode(node),
			})
		case html.TextNode:
			text := node.Data
			if strings.TrimSpace(text) == "" {
				continue
			}
			escaped := html.EscapeString(text)
			blocks = append(blocks, Block{
				Tag:    "p",
				Inline: escaped,
				Outer:  "<p>" + escaped + "</p>",
			})
		}
	}
	return blocks
}

// StripTags reduces markup to its concatenated text content.
func StripTags(markup string) string {
	if markup == "" {
		return ""
	}
	nodes, err := parseFragment(markup)
	if err != nil {
		return markup
	}
	var b strings.Builder
	for _, node := range nodes {
		collectText(node, &b)
	}
	return b.String()
}

// IsBlank reports whether the fragment has no non-whitespace text content.
// This is the inclusion test for the research slide.
func IsBlank(markup string) bool {
	return strings.TrimSpace(StripTags(markup)) == ""
}

func isHeadingTag(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	default:
		return false
	}
}

func parseFragment(markup string) ([]*html.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	return html.ParseFragment(strings.NewReader(markup), ctx)
}

func renderNode(node *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, node); err != nil {
		return ""
	}
	return b.String()
}

func renderChildren(node *html.Node) string {
	var b strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&b, child); err != nil {
			return ""
		}
	}
	return b.String()
}

func collectText(node *html.Node, b *strings.Builder) {
	if node.Type == html.TextNode {
		b.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, b)
	}
}

// ListItems returns the text of each li element in the fragment, in document
// order. The renderer uses it to lay research bullets out one per line.
func ListItems(markup string) []string {
	nodes, err := parseFragment(markup)
	if err != nil {
		return nil
	}
	var items []string
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && strings.ToLower(node.Data) == "li" {
			var b strings.Builder
			collectText(node, &b)
			if text := strings.TrimSpace(b.String()); text != "" {
				items = append(items, text)
			}
			return
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	for _, node := range nodes {
		walk(node)
	}
	return items
}

// BlockTexts returns the plain text of each top-level block, expanding list
// blocks into one entry per item.
func BlockTexts(markup string) []string {
	var texts []string
	for _, block := range ParseBlocks(markup) {
		if block.Tag == "ul" || block.Tag == "ol" {
			texts = append(texts, ListItems(block.Outer)...)
			continue
		}
		if text := strings.TrimSpace(StripTags(block.Outer)); text != "" {
			texts = append(texts, text)
		}
	}
	return texts
}
