package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price    float64
		expected string
	}{
		{0, "Rs 0"},
		{5, "Rs 5"},
		{999, "Rs 999"},
		{1500, "Rs 1,500"},
		{150000, "Rs 150,000"},
		{1234567, "Rs 1,234,567"},
		{2500.75, "Rs 2,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatPrice(tt.price))
	}
}

func TestResolveImageURL(t *testing.T) {
	base := "http://localhost:8000"

	// absolute URLs pass through unchanged
	assert.Equal(t, "https://x/y.jpg", ResolveImageURL(base, "https://x/y.jpg"))
	assert.Equal(t, "http://x/y.jpg", ResolveImageURL(base, "http://x/y.jpg"))

	// idempotent: resolving a resolved URL changes nothing
	once := ResolveImageURL(base, "https://x/y.jpg")
	assert.Equal(t, once, ResolveImageURL(base, once))

	// relative paths get the base prepended
	assert.Equal(t, "http://localhost:8000/static/a.png", ResolveImageURL(base, "/static/a.png"))

	// empty stays empty
	assert.Equal(t, "", ResolveImageURL(base, ""))
}
