package slides

import (
	"fmt"

	"github.com/brainzones/strategy-studio-backend/internal/domain"
	"github.com/brainzones/strategy-studio-backend/internal/richtext"
)

const researchHeading = "🔬 Research"

// BuildPostSequence derives the single-strategy carousel: title slide, one
// slide per how-to step, a research slide when the research field has any
// text content after stripping markup, and the closing CTA slide.
func BuildPostSequence(s domain.Strategy, image string, gradient domain.Gradient) []domain.SlideDescriptor {
	seq := []domain.SlideDescriptor{{
		Kind:     domain.SlideTitle,
		Heading:  s.Title,
		Image:    image,
		Gradient: &gradient,
	}}
	for _, step := range SplitHowTo(s.HowTo) {
		seq = append(seq, domain.SlideDescriptor{
			Kind:     domain.SlideHowTo,
			Heading:  step.Heading,
			Body:     step.Body,
			Gradient: &gradient,
		})
	}
	if !richtext.IsBlank(s.Research) {
		seq = append(seq, domain.SlideDescriptor{
			Kind:     domain.SlideResearch,
			Heading:  researchHeading,
			Body:     s.Research,
			Gradient: &gradient,
		})
	}
	return append(seq, domain.SlideDescriptor{Kind: domain.SlideCta})
}

// BuildWeeklyPostSequence derives the weekly 1:1 carousel: article cover,
// one slide per strategy, CTA.
func BuildWeeklyPostSequence(strategies []domain.WeeklyStrategy, article domain.ArticleContent) []domain.SlideDescriptor {
	seq := []domain.SlideDescriptor{{
		Kind:     domain.SlideArticle,
		Heading:  article.Title,
		Subtitle: article.Subtitle,
		Image:    article.Image,
	}}
	seq = appendStrategySlides(seq, strategies)
	return append(seq, domain.SlideDescriptor{Kind: domain.SlideCta})
}

// BuildWeeklyStorySequence derives the weekly 9:16 carousel: intro slide
// (reusing the first strategy's image as backdrop), one slide per strategy,
// CTA.
func BuildWeeklyStorySequence(strategies []domain.WeeklyStrategy) []domain.SlideDescriptor {
	intro := domain.SlideDescriptor{
		Kind:    domain.SlideIntro,
		Heading: fmt.Sprintf("%d New Strategies", len(strategies)),
	}
	if len(strategies) > 0 {
		intro.Image = strategies[0].Image
	}
	seq := appendStrategySlides([]domain.SlideDescriptor{intro}, strategies)
	return append(seq, domain.SlideDescriptor{Kind: domain.SlideCta})
}

func appendStrategySlides(seq []domain.SlideDescriptor, strategies []domain.WeeklyStrategy) []domain.SlideDescriptor {
	for _, s := range strategies {
		gradient := s.Gradient
		seq = append(seq, domain.SlideDescriptor{
			Kind:     domain.SlideStrategy,
			Heading:  s.Title,
			Body:     s.Summary,
			Image:    s.Image,
			Gradient: &gradient,
		})
	}
	return seq
}
