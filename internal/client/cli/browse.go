package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nuwanw/lankalist/internal/client/api"
	"github.com/nuwanw/lankalist/internal/client/cities"
	"github.com/nuwanw/lankalist/internal/client/models"
	"github.com/nuwanw/lankalist/internal/client/render"
	"github.com/nuwanw/lankalist/internal/common"
)

const browseLimit = 12

// Browse runs the home screen query for the current filter state: the
// latest listings when no filter is set, a filtered query otherwise, and a
// geo-radius query when a city+radius filter is active.
func (a *App) Browse(ctx context.Context) error {
	gen := a.nextGeneration()

	listings, err := a.fetchBrowse(ctx)
	if err != nil {
		return err
	}

	// A filter change issued while this request was in flight owns the
	// screen now; drop the stale response instead of overwriting.
	if gen != a.browse.generation {
		return nil
	}

	if len(listings) == 0 {
		fmt.Println("No listings found")
		return nil
	}

	for _, l := range listings {
		fmt.Println(render.Card(a.apiBase, l))
	}
	return nil
}

func (a *App) nextGeneration() uint64 {
	a.browse.generation++
	return a.browse.generation
}

func (a *App) fetchBrowse(ctx context.Context) ([]models.Listing, error) {
	b := a.browse

	if b.city != "" && b.radiusKm > 0 {
		coords, ok := cities.GetCoordinates(b.city)
		if !ok {
			return nil, fmt.Errorf("%w: %s", common.ErrUnknownCity, b.city)
		}
		radius := b.radiusKm * 1000
		return a.listingService.Nearby(ctx, api.ListingFilter{
			Category: b.category,
			MinPrice: b.minPrice,
			MaxPrice: b.maxPrice,
			Lat:      &coords.Lat,
			Lng:      &coords.Lng,
			Radius:   &radius,
			SortBy:   b.sortBy,
			Limit:    browseLimit,
		})
	}

	if b.category == "" && b.sortBy == "" && b.minPrice == nil && b.maxPrice == nil && b.city == "" {
		return a.listingService.Latest(ctx, browseLimit)
	}

	return a.listingService.Browse(ctx, api.ListingFilter{
		City:     b.city,
		Category: b.category,
		MinPrice: b.minPrice,
		MaxPrice: b.maxPrice,
		SortBy:   b.sortBy,
		Limit:    browseLimit,
	})
}

// Filter interactively updates the browse filter state and immediately
// re-queries. Empty answers keep the current values; "-" clears a value.
func (a *App) Filter(ctx context.Context) error {
	cats, err := a.loadCategories(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to load categories, using defaults", "err", err)
	}
	fmt.Printf("Categories: %s\n", strings.Join(cats, ", "))

	category, err := getSimpleText(a.reader, "Category (empty keeps, '-' clears)", os.Stdout)
	if err != nil {
		return err
	}
	applyText(&a.browse.category, category)

	city, err := getSimpleText(a.reader, "City (empty keeps, '-' clears)", os.Stdout)
	if err != nil {
		return err
	}
	applyText(&a.browse.city, city)

	if a.browse.city != "" {
		radius, err := GetFloat(a.reader, "Radius in km (0 disables)", a.browse.radiusKm, os.Stdout)
		if err != nil {
			return err
		}
		a.browse.radiusKm = radius
	} else {
		a.browse.radiusKm = 0
	}

	minPrice, err := getSimpleText(a.reader, "Min price (empty keeps, '-' clears)", os.Stdout)
	if err != nil {
		return err
	}
	if err := applyPrice(&a.browse.minPrice, minPrice); err != nil {
		return err
	}

	maxPrice, err := getSimpleText(a.reader, "Max price (empty keeps, '-' clears)", os.Stdout)
	if err != nil {
		return err
	}
	if err := applyPrice(&a.browse.maxPrice, maxPrice); err != nil {
		return err
	}

	sortBy, err := getSimpleText(a.reader, "Sort by [date|price] (empty keeps, '-' clears)", os.Stdout)
	if err != nil {
		return err
	}
	applyText(&a.browse.sortBy, sortBy)

	return a.Browse(ctx)
}

// loadCategories fetches the vocabulary once and caches it for the session.
func (a *App) loadCategories(ctx context.Context) ([]string, error) {
	if len(a.categories) > 0 {
		return a.categories, nil
	}
	cats, err := a.listingService.Categories(ctx)
	a.categories = cats
	return cats, err
}

func applyText(dst *string, input string) {
	switch input {
	case "":
	case "-":
		*dst = ""
	default:
		*dst = input
	}
}

func applyPrice(dst **float64, input string) error {
	switch input {
	case "":
		return nil
	case "-":
		*dst = nil
		return nil
	}
	var v float64
	if _, err := fmt.Sscanf(input, "%f", &v); err != nil {
		return fmt.Errorf("not a number: %q", input)
	}
	*dst = &v
	return nil
}
