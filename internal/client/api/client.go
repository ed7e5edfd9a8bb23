// Package api implements the HTTP client for the marketplace API. It is the
// only place that issues network requests; services above it work against
// the Client interface so tests can substitute fakes.
package api

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/nuwanw/lankalist/internal/client/models"
)

// Client is the remote API surface consumed by the services layer.
//
// All methods honor context cancellation. No method retries automatically;
// a failed request surfaces as an error and recovery is user-initiated.
type Client interface {
	// Auth.
	LoginForm(ctx context.Context, email, password string) (models.TokenResponse, error)
	Register(ctx context.Context, email, password string) (models.TokenResponse, error)

	// Listings.
	Listings(ctx context.Context, f ListingFilter) ([]models.Listing, error)
	LatestListings(ctx context.Context, limit int) ([]models.Listing, error)
	Listing(ctx context.Context, id string) (*models.Listing, error)
	CreateListing(ctx context.Context, payload models.ListingCreate) (*models.Listing, error)
	UpdateListing(ctx context.Context, id string, payload models.ListingUpdate) (*models.Listing, error)
	DeleteListing(ctx context.Context, id string) error
	MyListings(ctx context.Context) ([]models.Listing, error)
	Categories(ctx context.Context) ([]string, error)

	// Images.
	UploadImage(ctx context.Context, id, filename string, content io.Reader) (models.ImageUploadResult, error)
	AddImageURL(ctx context.Context, id, imageURL string) (models.ImageUploadResult, error)

	// Search.
	SearchAdvanced(ctx context.Context, f ListingFilter) ([]models.Listing, error)
	SearchSemantic(ctx context.Context, f ListingFilter) ([]models.Listing, error)
	SearchHybrid(ctx context.Context, f ListingFilter) ([]models.Listing, error)
	Nearby(ctx context.Context, f ListingFilter) ([]models.Listing, error)

	// Analytics.
	AnalyticsSummary(ctx context.Context) (*models.AnalyticsSnapshot, error)
	AnalyticsLive(ctx context.Context) (*models.AnalyticsSnapshot, error)
}

// ListingFilter carries the query parameters shared by the listing and
// search endpoints. Zero values are omitted from the query string.
type ListingFilter struct {
	Query    string
	City     string
	Category string
	Tags     []string
	MinPrice *float64
	MaxPrice *float64
	Lat      *float64
	Lng      *float64
	// Radius is in meters.
	Radius *float64
	SortBy string
	Limit  int
}

// Values encodes the filter as url.Values in the server's parameter names.
func (f ListingFilter) Values() url.Values {
	v := url.Values{}
	if f.Query != "" {
		v.Set("q", f.Query)
	}
	if f.City != "" {
		v.Set("city", f.City)
	}
	if f.Category != "" {
		v.Set("category", f.Category)
	}
	if len(f.Tags) > 0 {
		v.Set("tags", strings.Join(f.Tags, ","))
	}
	if f.MinPrice != nil {
		v.Set("min_price", formatFloat(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		v.Set("max_price", formatFloat(*f.MaxPrice))
	}
	if f.Lat != nil {
		v.Set("lat", formatFloat(*f.Lat))
	}
	if f.Lng != nil {
		v.Set("lng", formatFloat(*f.Lng))
	}
	if f.Radius != nil {
		v.Set("radius", formatFloat(*f.Radius))
	}
	if f.SortBy != "" {
		v.Set("sort_by", f.SortBy)
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
