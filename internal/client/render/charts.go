package render

import (
	"fmt"
	"strings"

	"github.com/nuwanw/lankalist/internal/client/models"
)

// Chart scaling is derived purely from the fetched counts. Bars are scaled
// against the largest count in the series; the max is floored at 1 so an
// all-zero series does not divide by zero, and each bar width is floored at
// minBarPercent so zero-count rows remain visible.

const minBarPercent = 5

// barWidth is the number of terminal cells a 100% bar occupies.
const barWidth = 40

// MaxCount returns the largest count in the series, floored at 1.
func MaxCount(buckets []models.CountBucket) int {
	max := 1
	for _, b := range buckets {
		if b.Count > max {
			max = b.Count
		}
	}
	return max
}

// BarPercent converts a count into a 0–100 scale against max, flooring the
// result at minBarPercent.
func BarPercent(count, max int) int {
	if max < 1 {
		max = 1
	}
	p := count * 100 / max
	if p < minBarPercent {
		p = minBarPercent
	}
	return p
}

// Bar renders a labelled horizontal bar for one bucket.
func Bar(label string, count, max int) string {
	cells := BarPercent(count, max) * barWidth / 100
	return fmt.Sprintf("%-24s %s %d", label, strings.Repeat("█", cells), count)
}

// TagWeight maps a tag count to a display weight between 1.0 and 2.0,
// mirroring the tag-cloud font scaling of the dashboard (1 + count/10,
// capped at 2).
func TagWeight(count int) float64 {
	size := 1 + float64(count)/10
	if size > 2 {
		size = 2
	}
	return size
}

// TagBadge renders a tag with an emphasis marker derived from its weight so
// heavier tags stand out in plain text output.
func TagBadge(tag string, count int) string {
	switch w := TagWeight(count); {
	case w >= 2:
		return fmt.Sprintf("[%s (%d)]**", tag, count)
	case w >= 1.5:
		return fmt.Sprintf("[%s (%d)]*", tag, count)
	default:
		return fmt.Sprintf("[%s (%d)]", tag, count)
	}
}
