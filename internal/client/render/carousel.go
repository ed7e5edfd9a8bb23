package render

// Carousel tracks the current position in a listing's image list.
// Navigation wraps around in both directions; a Carousel over an empty list
// stays at index 0 and reports no current image.
type Carousel struct {
	index int
	count int
}

// NewCarousel returns a carousel over count images, positioned at the first.
func NewCarousel(count int) *Carousel {
	if count < 0 {
		count = 0
	}
	return &Carousel{count: count}
}

// Next advances to the following image, wrapping to the first after the last.
func (c *Carousel) Next() int {
	if c.count == 0 {
		return 0
	}
	c.index = (c.index + 1) % c.count
	return c.index
}

// Prev steps back to the previous image, wrapping to the last before the first.
func (c *Carousel) Prev() int {
	if c.count == 0 {
		return 0
	}
	c.index = (c.index - 1 + c.count) % c.count
	return c.index
}

// Index returns the current position.
func (c *Carousel) Index() int { return c.index }

// Count returns the number of images.
func (c *Carousel) Count() int { return c.count }

// HasImages reports whether there is anything to show; callers render a
// placeholder when false.
func (c *Carousel) HasImages() bool { return c.count > 0 }
