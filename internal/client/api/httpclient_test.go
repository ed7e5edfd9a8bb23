package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuwanw/lankalist/internal/client/models"
	"github.com/nuwanw/lankalist/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, func() string { return token })
}

func TestLoginFormEncoding(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "ann@example.com", r.PostFormValue("username"))
		assert.Equal(t, "s3cret", r.PostFormValue("password"))
		_ = json.NewEncoder(w).Encode(models.TokenResponse{AccessToken: "tok", Role: "user"})
	}, "")

	resp, err := c.LoginForm(context.Background(), "ann@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, "user", resp.Role)
}

func TestBearerAndRequestIDHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_ = json.NewEncoder(w).Encode([]models.Listing{})
	}, "tok123")

	_, err := c.MyListings(context.Background())
	require.NoError(t, err)
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]string{"electronics"})
	}, "")

	cats, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"electronics"}, cats)
}

func TestListingFilterValues(t *testing.T) {
	min, max := 100.0, 5000.0
	lat, lng, radius := 6.9271, 79.8612, 10000.0

	f := ListingFilter{
		Query:    "bike",
		City:     "Colombo",
		Category: "vehicles",
		Tags:     []string{"mountain", "used"},
		MinPrice: &min,
		MaxPrice: &max,
		Lat:      &lat,
		Lng:      &lng,
		Radius:   &radius,
		SortBy:   "price",
		Limit:    20,
	}

	v := f.Values()
	assert.Equal(t, "bike", v.Get("q"))
	assert.Equal(t, "Colombo", v.Get("city"))
	assert.Equal(t, "vehicles", v.Get("category"))
	assert.Equal(t, "mountain,used", v.Get("tags"))
	assert.Equal(t, "100", v.Get("min_price"))
	assert.Equal(t, "5000", v.Get("max_price"))
	assert.Equal(t, "6.9271", v.Get("lat"))
	assert.Equal(t, "79.8612", v.Get("lng"))
	assert.Equal(t, "10000", v.Get("radius"))
	assert.Equal(t, "price", v.Get("sort_by"))
	assert.Equal(t, "20", v.Get("limit"))

	// zero values stay out of the query
	empty := ListingFilter{}.Values()
	assert.Empty(t, empty)
}

func TestStatusSentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, common.ErrUnauthorized},
		{http.StatusForbidden, common.ErrForbidden},
		{http.StatusNotFound, common.ErrNotFound},
	}

	for _, tt := range tests {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}, "")
		_, err := c.Listing(context.Background(), "abc")
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
	}
}

func TestStringDetailShownVerbatim(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "title too short"}`))
	}, "")

	_, err := c.CreateListing(context.Background(), models.ListingCreate{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "title too short", apiErr.Detail)
}

func TestValidationDetailJoined(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": [
			{"loc": ["body", "title"], "msg": "field required"},
			{"loc": ["body", "price"], "msg": "ensure this value is greater than or equal to 0"}
		]}`))
	}, "")

	_, err := c.CreateListing(context.Background(), models.ListingCreate{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body.title: field required")
	assert.Contains(t, err.Error(), "body.price: ensure this value is greater than or equal to 0")
}

func TestUnparseableBodyFallsBack(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>oops</html>"))
	}, "")

	_, err := c.CreateListing(context.Background(), models.ListingCreate{})
	require.Error(t, err)
	assert.Equal(t, "Failed to create listing", err.Error())
}

func TestTransportFailureMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewHTTPClient(srv.URL, time.Second, nil)
	_, err := c.LatestListings(context.Background(), 12)
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestUploadImageMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listings/abc/images", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "bike.png", header.Filename)

		_ = json.NewEncoder(w).Encode(models.ImageUploadResult{URL: "/static/listings_images/bike.png"})
	}, "tok")

	res, err := c.UploadImage(context.Background(), "abc", "bike.png", strings.NewReader("fakepng"))
	require.NoError(t, err)
	assert.Equal(t, "/static/listings_images/bike.png", res.URL)
}

func TestAddImageURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listings/abc/images/url", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "https://cdn.example.com/a.jpg", payload["url"])

		_ = json.NewEncoder(w).Encode(models.ImageUploadResult{URL: "https://cdn.example.com/a.jpg"})
	}, "tok")

	res, err := c.AddImageURL(context.Background(), "abc", "https://cdn.example.com/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.jpg", res.URL)
}

func TestSearchEndpointsHitDistinctPaths(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.Listing{})
	}, "")

	ctx := context.Background()
	f := ListingFilter{Query: "phone"}
	_, _ = c.SearchAdvanced(ctx, f)
	_, _ = c.SearchSemantic(ctx, f)
	_, _ = c.SearchHybrid(ctx, f)
	_, _ = c.Nearby(ctx, f)

	assert.Equal(t, []string{
		"/listings/search/advanced",
		"/listings/search/semantic",
		"/listings/search/hybrid",
		"/listings/nearby",
	}, paths)
}

func TestAnalyticsEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.AnalyticsSnapshot{
			Overview: models.AnalyticsOverview{TotalListings: 42},
		})
	}, "tok")

	snap, err := c.AnalyticsLive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, snap.Overview.TotalListings)

	snap, err = c.AnalyticsSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, snap.Overview.TotalListings)
}
