package render

import (
	"fmt"
	"strings"

	"github.com/nuwanw/lankalist/internal/client/models"
)

const (
	descriptionPreviewLen = 100
	cardTagLimit          = 3
	placeholderImage      = "(no image)"
)

// Card renders a short multi-line summary of a listing for list views.
// Listings without images get a placeholder instead of a broken reference.
func Card(base string, l models.Listing) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s — %s\n", l.Title, FormatPrice(l.Price))
	fmt.Fprintf(&b, "  id: %s\n", l.ID)

	if len(l.Images) > 0 {
		fmt.Fprintf(&b, "  image: %s\n", ResolveImageURL(base, l.Images[0]))
	} else {
		fmt.Fprintf(&b, "  image: %s\n", placeholderImage)
	}

	fmt.Fprintf(&b, "  %s\n", previewDescription(l.Description))
	fmt.Fprintf(&b, "  %s | %s\n", l.City, l.Category)

	if len(l.Tags) > 0 {
		shown := l.Tags
		if len(shown) > cardTagLimit {
			shown = shown[:cardTagLimit]
		}
		fmt.Fprintf(&b, "  tags: %s\n", strings.Join(shown, ", "))
	}

	if l.Score != nil {
		fmt.Fprintf(&b, "  relevance: %.0f%%\n", *l.Score*100)
	}

	return b.String()
}

// Detail renders the full listing view with the carousel's current image.
func Detail(base string, l models.Listing, c *Carousel) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", l.Title)
	fmt.Fprintf(&b, "%s | %s | %s\n", FormatPrice(l.Price), l.City, l.Category)

	if c.HasImages() {
		fmt.Fprintf(&b, "image %d/%d: %s\n", c.Index()+1, c.Count(), ResolveImageURL(base, l.Images[c.Index()]))
	} else {
		fmt.Fprintf(&b, "image: %s\n", placeholderImage)
	}

	fmt.Fprintf(&b, "\n%s\n", l.Description)

	if len(l.Tags) > 0 {
		fmt.Fprintf(&b, "\ntags: %s\n", strings.Join(l.Tags, ", "))
	}
	if l.PostedDate != "" {
		fmt.Fprintf(&b, "posted: %s\n", l.PostedDate)
	}
	if l.ExpiryDate != "" {
		fmt.Fprintf(&b, "expires: %s\n", l.ExpiryDate)
	}

	return b.String()
}

func previewDescription(s string) string {
	r := []rune(s)
	if len(r) <= descriptionPreviewLen {
		return s
	}
	return string(r[:descriptionPreviewLen]) + "..."
}
