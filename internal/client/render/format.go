// Package render contains stateless presentation helpers: price and URL
// formatting, image carousel index state, listing cards, and chart scaling
// for the analytics view. Nothing here talks to the network.
package render

import (
	"strconv"
	"strings"
)

// FormatPrice renders a price in rupees with thousands separators and no
// decimals: FormatPrice(0) == "Rs 0", FormatPrice(150000) == "Rs 150,000".
func FormatPrice(price float64) string {
	n := int64(price)
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := "Rs " + b.String()
	if neg {
		out = "Rs -" + b.String()
	}
	return out
}

// ResolveImageURL resolves an image path to a full URL. Absolute http/https
// URLs (from add-by-URL) pass through unchanged; server-relative paths (from
// file uploads, e.g. "/static/listings_images/x.png") get the API base URL
// prepended. Empty input stays empty.
func ResolveImageURL(base, imagePath string) string {
	if imagePath == "" {
		return ""
	}
	if strings.HasPrefix(imagePath, "http://") || strings.HasPrefix(imagePath, "https://") {
		return imagePath
	}
	return base + imagePath
}
