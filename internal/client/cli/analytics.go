package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/nuwanw/lankalist/internal/client/models"
	"github.com/nuwanw/lankalist/internal/client/render"
	"github.com/nuwanw/lankalist/internal/common"
)

// Analytics fetches a live dashboard snapshot and renders it. The server
// enforces the admin role; a 403 here means the local role flag lied.
func (a *App) Analytics(ctx context.Context) error {
	snap, err := a.analyticsService.Live(ctx)
	if err != nil {
		if errors.Is(err, common.ErrForbidden) {
			fmt.Println("Access denied: only administrators can view analytics.")
			return nil
		}
		// The materialized summary can outlive a failing live aggregation.
		summary, serr := a.analyticsService.Summary(ctx)
		if serr != nil {
			return err
		}
		fmt.Println("Live data unavailable, showing the last materialized summary.")
		snap = summary
	}

	printSnapshot(snap)
	return nil
}

func printSnapshot(s *models.AnalyticsSnapshot) {
	o := s.Overview
	fmt.Println("=== Marketplace analytics ===")
	if s.GeneratedAt != "" {
		fmt.Printf("generated: %s\n", s.GeneratedAt)
	}
	fmt.Printf("listings: %d total, %d active, %d expired\n",
		o.TotalListings, o.ActiveListings, o.ExpiredListings)
	fmt.Printf("users: %d\n", o.TotalUsers)
	fmt.Printf("images: %d with, %d without\n",
		o.ListingsWithImages, o.ListingsWithoutImages)

	printBars("Listings by city", s.ByCity)
	printBars("Listings by category", s.ByCategory)
	printBars("New listings per day", s.DailyListings)
	printBars("Price ranges", s.PriceRanges)
	printBars("User registrations", s.UserRegistrations)

	if len(s.TopTags) > 0 {
		fmt.Println("\nTop tags:")
		for _, t := range s.TopTags {
			fmt.Printf("  %s", render.TagBadge(t.ID, t.Count))
		}
		fmt.Println()
	}

	if len(s.PriceStatsByCategory) > 0 {
		fmt.Println("\nPrice stats by category:")
		for _, p := range s.PriceStatsByCategory {
			fmt.Printf("  %-16s avg %s (min %s, max %s, n=%d)\n",
				p.ID,
				render.FormatPrice(p.AvgPrice),
				render.FormatPrice(p.MinPrice),
				render.FormatPrice(p.MaxPrice),
				p.Count)
		}
	}

	if len(s.MostActiveUsers) > 0 {
		fmt.Println("\nMost active users:")
		for _, u := range s.MostActiveUsers {
			name := u.Email
			if name == "" {
				name = u.ID
			}
			fmt.Printf("  %-32s %d listing(s)\n", name, u.ListingCount)
		}
	}
}

func printBars(title string, buckets []models.CountBucket) {
	if len(buckets) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	max := render.MaxCount(buckets)
	for _, b := range buckets {
		fmt.Println("  " + render.Bar(b.ID, b.Count, max))
	}
}
