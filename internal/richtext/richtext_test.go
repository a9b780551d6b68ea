package richtext

import (
	"strings"
	"testing"
)

func TestParseBlocksOrderAndKinds(t *testing.T) {
	markup := "<h3>Step One</h3><p>Do the thing.</p><ul><li>a</li></ul>"
	blocks := ParseBlocks(markup)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if !blocks[0].Heading || blocks[0].Tag != "h3" {
		t.Fatalf("expected leading h3 heading, got %+v", blocks[0])
	}
	if blocks[0].Inline != "Step One" {
		t.Fatalf("expected heading inline content, got %q", blocks[0].Inline)
	}
	if blocks[1].Heading || blocks[1].Tag != "p" {
		t.Fatalf("expected paragraph block, got %+v", blocks[1])
	}
	if blocks[2].Tag != "ul" {
		t.Fatalf("expected list block, got %+v", blocks[2])
	}
}

func TestParseBlocksWrapsLooseText(t *testing.T) {
	blocks := ParseBlocks("just some text<p>para</p>")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Tag != "p" || blocks[0].Outer != "<p>just some text</p>" {
		t.Fatalf("loose text not wrapped in paragraph: %+v", blocks[0])
	}
}

func TestParseBlocksSkipsInterElementWhitespace(t *testing.T) {
	blocks := ParseBlocks("<h3>A</h3>\n   \n<p>b</p>")
	if len(blocks) != 2 {
		t.Fatalf("expected whitespace-only text nodes dropped, got %d blocks", len(blocks))
	}
}

func TestParseBlocksEmptyInput(t *testing.T) {
	if blocks := ParseBlocks(""); len(blocks) != 0 {
		t.Fatalf("expected no blocks for empty input, got %d", len(blocks))
	}
}

func TestStripTags(t *testing.T) {
	got := StripTags("<ul><li>Uses <strong>consistency drives</strong>.</li></ul>")
	if got != "Uses consistency drives." {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestIsBlank(t *testing.T) {
	cases := []struct {
		markup string
		blank  bool
	}{
		{"", true},
		{"<ul>  \n </ul>", true},
		{"<p>&nbsp;</p>", true},
		{"<ul><li>x</li></ul>", false},
		{"   ", true},
	}
	for _, tc := range cases {
		if got := IsBlank(tc.markup); got != tc.blank {
			t.Fatalf("IsBlank(%q) = %v, want %v", tc.markup, got, tc.blank)
		}
	}
}

func TestListItems(t *testing.T) {
	items := ListItems("<ul><li>first</li><li>second <strong>bold</strong></li></ul>")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1] != "second bold" {
		t.Fatalf("unexpected item text: %q", items[1])
	}
}

func TestBlockTextsExpandsLists(t *testing.T) {
	texts := BlockTexts("<p>intro</p><ul><li>a</li><li>b</li></ul>")
	want := []string{"intro", "a", "b"}
	if len(texts) != len(want) {
		t.Fatalf("expected %d texts, got %d: %v", len(want), len(texts), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("texts[%d] = %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestStripTagsRoundTripsThroughBlocks(t *testing.T) {
	markup := "<h3>Heading</h3><p>Body text.</p>"
	var joined strings.Builder
	for _, b := range ParseBlocks(markup) {
		joined.WriteString(StripTags(b.Outer))
		joined.WriteString(" ")
	}
	if strings.TrimSpace(joined.String()) != "Heading Body text." {
		t.Fatalf("unexpected round trip: %q", joined.String())
	}
}
