package export

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Mindful Morning Check-In", "mindful-morning-check-in"},
		{"  Two   Words  ", "two-words"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"", "strategy"},
		{"   ", "strategy"},
		{"ALL CAPS", "all-caps"},
	}
	for _, tc := range cases {
		if got := Slug(tc.title); got != tc.want {
			t.Fatalf("Slug(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestSlugTruncatesAt50(t *testing.T) {
	long := strings.Repeat("word ", 30)
	got := Slug(long)
	if len(got) != 50 {
		t.Fatalf("slug length = %d, want 50", len(got))
	}
}

func TestSlugTruncationKeepsRunesWhole(t *testing.T) {
	// A two-byte rune straddling the cut must be dropped, not split.
	title := strings.Repeat("a", 49) + "é and more"
	got := Slug(title)
	if !utf8.ValidString(got) {
		t.Fatalf("slug is not valid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 50 {
		t.Fatalf("slug rune count = %d, want 50", n)
	}
	if !strings.HasSuffix(got, "é") {
		t.Fatalf("slug should end with the whole rune, got %q", got)
	}

	accented := strings.Repeat("é", 60)
	got = Slug(accented)
	if n := utf8.RuneCountInString(got); n != 50 {
		t.Fatalf("accented slug rune count = %d, want 50", n)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("accented slug is not valid UTF-8: %q", got)
	}
}

func TestFileNames(t *testing.T) {
	if got := CardFileName("Brain Break"); got != "brain-break-card.png" {
		t.Fatalf("card file name = %q", got)
	}
	if got := StoryFileName("Brain Break"); got != "brain-break-story.png" {
		t.Fatalf("story file name = %q", got)
	}
	if got := PostArchiveName("Brain Break"); got != "brain-break-post-carousel.zip" {
		t.Fatalf("post archive name = %q", got)
	}
}

func TestEntryNameIsOneBased(t *testing.T) {
	if got := EntryName(0); got != "slide-1.png" {
		t.Fatalf("EntryName(0) = %q", got)
	}
	if got := EntryName(9); got != "slide-10.png" {
		t.Fatalf("EntryName(9) = %q", got)
	}
}

func TestBuildArchiveOrdersAndNamesEntries(t *testing.T) {
	slides := [][]byte{[]byte("one"), []byte("two"), []byte("three")}
	data, err := BuildArchive(slides)
	if err != nil {
		t.Fatalf("BuildArchive: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("reopen archive: %v", err)
	}
	if len(zr.File) != 3 {
		t.Fatalf("archive has %d entries, want 3", len(zr.File))
	}
	for i, f := range zr.File {
		want := EntryName(i)
		if f.Name != want {
			t.Fatalf("entry %d named %q, want %q", i, f.Name, want)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %d: %v", i, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			t.Fatalf("read entry %d: %v", i, err)
		}
		rc.Close()
		if !bytes.Equal(buf.Bytes(), slides[i]) {
			t.Fatalf("entry %d content mismatch", i)
		}
	}
}

func TestBuildArchiveRejectsEmptyInput(t *testing.T) {
	if _, err := BuildArchive(nil); err == nil {
		t.Fatal("expected error for empty slide set")
	}
}
