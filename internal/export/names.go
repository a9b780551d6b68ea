// Package export assembles the downloadable assets: file naming, archive
// layout, and the sequential all-or-nothing rasterization walk.
package export

import (
	"fmt"
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

const slugMaxRunes = 50

// Slug derives the file-name stem from a strategy title: lowercased,
// whitespace runs collapsed to single hyphens, truncated to 50 characters
// on a rune boundary. A title that yields nothing falls back to "strategy".
func Slug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = whitespaceRun.ReplaceAllString(s, "-")
	if runes := []rune(s); len(runes) > slugMaxRunes {
		s = string(runes[:slugMaxRunes])
	}
	if s == "" {
		return "strategy"
	}
	return s
}

func CardFileName(title string) string {
	return Slug(title) + "-card.png"
}

func StoryFileName(title string) string {
	return Slug(title) + "-story.png"
}

func PostArchiveName(title string) string {
	return Slug(title) + "-post-carousel.zip"
}

const (
	WeeklyPostArchiveName  = "weekly-preview-post-carousel.zip"
	WeeklyStoryArchiveName = "weekly-preview-story-carousel.zip"
)

// EntryName is the archive member name for the slide at position i
// (zero-based). Members are numbered from 1.
func EntryName(i int) string {
	return fmt.Sprintf("slide-%d.png", i+1)
}
