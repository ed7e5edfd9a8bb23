package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nuwanw/lankalist/internal/client/api"
	"github.com/nuwanw/lankalist/internal/client/cities"
	"github.com/nuwanw/lankalist/internal/client/models"
	"github.com/nuwanw/lankalist/internal/common"
	"github.com/nuwanw/lankalist/internal/logging"
)

// SearchMode identifies which ranking endpoint served a result set.
type SearchMode string

const (
	ModeHybrid   SearchMode = "hybrid"
	ModeSemantic SearchMode = "semantic"
	ModeKeyword  SearchMode = "keyword"
)

// SearchParams is the user-facing search state before geo translation.
type SearchParams struct {
	Query    string
	City     string
	Category string
	Tags     []string
	MinPrice *float64
	MaxPrice *float64
	// RadiusKm, when positive together with City, turns the city filter into
	// a coordinate + radius-in-meters pair resolved from the static table.
	RadiusKm float64
	SortBy   string
	Limit    int
}

// SearchService runs queries through the smart-to-keyword fallback chain.
//
// Smart search starts at the hybrid endpoint, degrades to semantic, and
// finally to the exact-match keyword endpoint. A non-success status from a
// smart tier disables that tier for the remainder of the session view; the
// degrade is silent, the user sees results instead of an error. Transport
// failures are NOT part of the chain and surface as errors.
type SearchService interface {
	Search(ctx context.Context, p SearchParams) ([]models.Listing, SearchMode, error)
	// Mode reports the tier the next search will start from.
	Mode() SearchMode
}

type searchService struct {
	client api.Client
	log    logging.Logger

	hybridDisabled   bool
	semanticDisabled bool
}

func NewSearchService(client api.Client, log logging.Logger) SearchService {
	return &searchService{client: client, log: log}
}

func (s *searchService) Mode() SearchMode {
	switch {
	case !s.hybridDisabled:
		return ModeHybrid
	case !s.semanticDisabled:
		return ModeSemantic
	default:
		return ModeKeyword
	}
}

func (s *searchService) Search(ctx context.Context, p SearchParams) ([]models.Listing, SearchMode, error) {
	filter, err := p.toFilter()
	if err != nil {
		return nil, "", err
	}

	if !s.hybridDisabled {
		results, err := s.client.SearchHybrid(ctx, filter)
		if err == nil {
			return results, ModeHybrid, nil
		}
		if !degradable(err) {
			return nil, ModeHybrid, err
		}
		s.hybridDisabled = true
		s.log.Warn(ctx, "hybrid search unavailable, degrading", "err", err)
	}

	if !s.semanticDisabled {
		results, err := s.client.SearchSemantic(ctx, filter)
		if err == nil {
			return results, ModeSemantic, nil
		}
		if !degradable(err) {
			return nil, ModeSemantic, err
		}
		s.semanticDisabled = true
		s.log.Warn(ctx, "semantic search unavailable, degrading", "err", err)
	}

	results, err := s.client.SearchAdvanced(ctx, filter)
	return results, ModeKeyword, err
}

// degradable reports whether an error is a non-success HTTP status, the
// trigger for falling to the next search tier. Transport failures mean the
// server itself is unreachable; no tier would do better.
func degradable(err error) bool {
	return !errors.Is(err, common.ErrUnavailable)
}

// toFilter translates the params for the wire: when both a city and radius
// are present, the city name becomes a coordinate pair plus a radius in
// meters; otherwise the city rides along as a plain filter.
func (p SearchParams) toFilter() (api.ListingFilter, error) {
	f := api.ListingFilter{
		Query:    p.Query,
		Category: p.Category,
		Tags:     p.Tags,
		MinPrice: p.MinPrice,
		MaxPrice: p.MaxPrice,
		SortBy:   p.SortBy,
		Limit:    p.Limit,
	}

	if p.City != "" && p.RadiusKm > 0 {
		coords, ok := cities.GetCoordinates(p.City)
		if !ok {
			return api.ListingFilter{}, fmt.Errorf("%w: %s", common.ErrUnknownCity, p.City)
		}
		radius := p.RadiusKm * 1000
		f.Lat = &coords.Lat
		f.Lng = &coords.Lng
		f.Radius = &radius
		return f, nil
	}

	f.City = p.City
	return f, nil
}
