package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarouselWrapsForward(t *testing.T) {
	c := NewCarousel(3)

	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Next())
	// at the last image, next returns to the first
	assert.Equal(t, 0, c.Next())
}

func TestCarouselWrapsBackward(t *testing.T) {
	c := NewCarousel(3)

	// at the first image, prev wraps to the last
	assert.Equal(t, 2, c.Prev())
	assert.Equal(t, 1, c.Prev())
	assert.Equal(t, 0, c.Prev())
}

func TestCarouselSingleImage(t *testing.T) {
	c := NewCarousel(1)

	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 0, c.Prev())
}

func TestCarouselEmpty(t *testing.T) {
	c := NewCarousel(0)

	assert.False(t, c.HasImages())
	assert.Equal(t, 0, c.Next())
	assert.Equal(t, 0, c.Prev())
	assert.Equal(t, 0, c.Index())
}
