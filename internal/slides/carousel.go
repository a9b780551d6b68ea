package slides

// NavPolicy fixes how a carousel instance behaves at its ends. The policy is
// set at construction and never changes for the life of the carousel.
type NavPolicy int

const (
	// Wrap cycles past the ends: next from the last slide lands on the
	// first. Used by the single-strategy post/story carousels and the
	// weekly post carousel.
	Wrap NavPolicy = iota
	// Clamp stops at the ends: next from the last slide is a no-op. Used
	// by the weekly story carousel.
	Clamp
)

// Carousel tracks the current position over a slide sequence of known
// length. A zero length puts the carousel in an inactive state where
// navigation is ignored until the sequence grows again.
type Carousel struct {
	policy NavPolicy
	index  int
	length int
}

func NewCarousel(policy NavPolicy, length int) *Carousel {
	c := &Carousel{policy: policy}
	c.Resize(length)
	return c
}

// Index returns the current position. Meaningless while Empty.
func (c *Carousel) Index() int { return c.index }

// Len returns the sequence length the carousel was last sized to.
func (c *Carousel) Len() int { return c.length }

// Empty reports the degenerate zero-length state.
func (c *Carousel) Empty() bool { return c.length == 0 }

// Next advances the cursor under the carousel's policy.
func (c *Carousel) Next() {
	if c.length == 0 {
		return
	}
	switch c.policy {
	case Wrap:
		c.index = (c.index + 1) % c.length
	case Clamp:
		if c.index < c.length-1 {
			c.index++
		}
	}
}

// Prev moves the cursor back under the carousel's policy.
func (c *Carousel) Prev() {
	if c.length == 0 {
		return
	}
	switch c.policy {
	case Wrap:
		c.index = (c.index - 1 + c.length) % c.length
	case Clamp:
		if c.index > 0 {
			c.index--
		}
	}
}

// Resize re-clamps the cursor after the underlying sequence changes length.
// Growing out of the empty state restarts at slide zero.
func (c *Carousel) Resize(length int) {
	if length < 0 {
		length = 0
	}
	c.length = length
	if length == 0 {
		c.index = 0
		return
	}
	if c.index > length-1 {
		c.index = length - 1
	}
	if c.index < 0 {
		c.index = 0
	}
}
