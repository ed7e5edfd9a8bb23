package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/nuwanw/lankalist/internal/client/render"
	"github.com/nuwanw/lankalist/internal/client/services"
)

const searchLimit = 20

// Search runs a query through the search fallback chain, reusing the browse
// filter state so "filter then search" behaves like a refined browse. The
// query is taken from the command arguments or prompted when absent.
func (a *App) Search(ctx context.Context, query string) error {
	if query == "" {
		q, err := getSimpleText(a.reader, "Search for", os.Stdout)
		if err != nil {
			return err
		}
		query = q
	}
	if query == "" {
		fmt.Println("Nothing to search for.")
		return nil
	}

	results, mode, err := a.searchService.Search(ctx, services.SearchParams{
		Query:    query,
		City:     a.browse.city,
		Category: a.browse.category,
		MinPrice: a.browse.minPrice,
		MaxPrice: a.browse.maxPrice,
		RadiusKm: a.browse.radiusKm,
		SortBy:   a.browse.sortBy,
		Limit:    searchLimit,
	})
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Printf("No results for %q\n", query)
		return nil
	}

	fmt.Printf("%d result(s) [%s search]\n", len(results), mode)
	for _, l := range results {
		fmt.Println(render.Card(a.apiBase, l))
	}
	return nil
}
