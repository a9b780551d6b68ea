// Package slides turns strategy content into ordered slide sequences and
// tracks carousel position over them.
package slides

import (
	"github.com/brainzones/strategy-studio-backend/internal/domain"
	"github.com/brainzones/strategy-studio-backend/internal/richtext"
)

// SplitSteps partitions the top-level blocks of how-to markup into
// {heading, body} step fragments. A heading block starts a new fragment;
// every other block accumulates into the open fragment's body. Content before
// the first heading forms an implicit leading fragment with an empty heading.
// Fragments are emitted in document order; a fragment is emitted iff its
// heading or body is non-empty, so heading-only steps survive.
func SplitSteps(blocks []richtext.Block) []domain.StepFragment {
	var fragments []domain.StepFragment
	var current domain.StepFragment

	for _, block := range blocks {
		if block.Heading {
			if !current.Empty() {
				fragments = append(fragments, current)
			}
			current = domain.StepFragment{Heading: block.Inline}
			continue
		}
		current.Body += block.Outer
	}
	if !current.Empty() {
		fragments = append(fragments, current)
	}
	return fragments
}

// SplitHowTo is the markup-level convenience over SplitSteps.
func SplitHowTo(markup string) []domain.StepFragment {
	return SplitSteps(richtext.ParseBlocks(markup))
}
