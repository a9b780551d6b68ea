package slides

import "testing"

func TestWrapNextCyclesBackToStart(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		for start := 0; start < n; start++ {
			c := NewCarousel(Wrap, n)
			for i := 0; i < start; i++ {
				c.Next()
			}
			begin := c.Index()
			for i := 0; i < n; i++ {
				c.Next()
			}
			if c.Index() != begin {
				t.Fatalf("n=%d start=%d: %d applications of next should return to %d, got %d", n, start, n, begin, c.Index())
			}
		}
	}
}

func TestWrapPrevInvertsNext(t *testing.T) {
	c := NewCarousel(Wrap, 4)
	for i := 0; i < 7; i++ {
		c.Next()
	}
	at := c.Index()
	c.Next()
	c.Prev()
	if c.Index() != at {
		t.Fatalf("prev did not invert next: want %d got %d", at, c.Index())
	}
	c.Prev()
	c.Next()
	if c.Index() != at {
		t.Fatalf("next did not invert prev: want %d got %d", at, c.Index())
	}
}

func TestWrapPrevFromZero(t *testing.T) {
	c := NewCarousel(Wrap, 3)
	c.Prev()
	if c.Index() != 2 {
		t.Fatalf("wrap prev from 0 should land on last slide, got %d", c.Index())
	}
}

func TestClampAtEnds(t *testing.T) {
	c := NewCarousel(Clamp, 3)
	c.Prev()
	if c.Index() != 0 {
		t.Fatalf("clamp prev from 0 must be a no-op, got %d", c.Index())
	}
	c.Next()
	c.Next()
	c.Next()
	c.Next()
	if c.Index() != 2 {
		t.Fatalf("clamp next from last must be a no-op, got %d", c.Index())
	}
}

func TestResizeClampsIndex(t *testing.T) {
	c := NewCarousel(Wrap, 6)
	for i := 0; i < 5; i++ {
		c.Next()
	}
	c.Resize(3)
	if c.Index() != 2 {
		t.Fatalf("index should clamp into [0,2] after shrink, got %d", c.Index())
	}
	c.Resize(10)
	if c.Index() != 2 {
		t.Fatalf("growing must not move the cursor, got %d", c.Index())
	}
}

func TestEmptyStateIgnoresNavigation(t *testing.T) {
	c := NewCarousel(Wrap, 0)
	if !c.Empty() {
		t.Fatal("zero-length carousel should be empty")
	}
	c.Next()
	c.Prev()
	if c.Index() != 0 {
		t.Fatalf("navigation in empty state must be ignored, got %d", c.Index())
	}
	c.Resize(4)
	if c.Empty() || c.Index() != 0 {
		t.Fatalf("leaving empty state should restart at slide 0, got %d", c.Index())
	}
	c.Next()
	if c.Index() != 1 {
		t.Fatalf("navigation should resume after resize, got %d", c.Index())
	}
}
