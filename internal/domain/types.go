package domain

// Strategy is a single teaching technique. HowTo and Research hold rich-text
// markup; heading blocks inside HowTo delimit the individual steps.
type Strategy struct {
	Title    string `json:"title"`
	HowTo    string `json:"howTo"`
	Research string `json:"research"`
}

// WeeklyStrategy is one entry of a weekly roundup set.
type WeeklyStrategy struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Image    string   `json:"image,omitempty"`
	Gradient Gradient `json:"gradient"`
}

// ArticleContent is the cover content of a weekly set.
type ArticleContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image,omitempty"`
}

// SlideKind enumerates the fixed slide taxonomy. It is intentionally not
// pluggable.
type SlideKind string

const (
	SlideTitle    SlideKind = "title"
	SlideHowTo    SlideKind = "howTo"
	SlideResearch SlideKind = "research"
	SlideArticle  SlideKind = "article"
	SlideIntro    SlideKind = "intro"
	SlideStrategy SlideKind = "strategy"
	SlideCta      SlideKind = "cta"
)

// SlideDescriptor is a pure projection of strategy content onto one visual
// panel. It is derived fresh on every build and never mutated.
type SlideDescriptor struct {
	Kind    SlideKind `json:"kind"`
	Heading string    `json:"heading"`
	Body    string    `json:"body"`

	// Populated for title/intro/strategy/article slides.
	Image    string    `json:"image,omitempty"`
	Gradient *Gradient `json:"gradient,omitempty"`
	Subtitle string    `json:"subtitle,omitempty"`
}

// StepFragment is one {heading, body} pair produced by splitting how-to
// markup. Both fields are rich-text fragments.
type StepFragment struct {
	Heading string
	Body    string
}

func (f StepFragment) Empty() bool {
	return f.Heading == "" && f.Body == ""
}
