package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nuwanw/lankalist/internal/client/models"
	"github.com/nuwanw/lankalist/internal/common"
)

// TokenProvider supplies the current bearer token, or "" when the session
// is unauthenticated. The session store satisfies this.
type TokenProvider func() string

// HTTPClient is the concrete Client over the marketplace REST API.
//
// Every request carries a fresh X-Request-ID and, when a token is available,
// an Authorization: Bearer header. There is no retry policy and no cache;
// each call is one request.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   TokenProvider
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient constructs a client for the API at baseURL (no trailing
// slash). timeout bounds every request; token may be nil for a client that
// never authenticates.
func NewHTTPClient(baseURL string, timeout time.Duration, token TokenProvider) *HTTPClient {
	if token == nil {
		token = func() string { return "" }
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}
}

// BaseURL returns the configured API root, used to resolve relative image
// paths in views.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// do issues one request and decodes a JSON response into out (when non-nil).
// Non-success statuses are mapped to sentinel errors for 401/403/404 and to
// *APIError otherwise; fallback is used when the body carries no detail.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any, fallback string) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}

	req.Header.Set("X-Request-ID", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapError(resp.StatusCode, data, fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// mapError converts a non-2xx response into the layered error taxonomy.
func (c *HTTPClient) mapError(status int, body []byte, fallback string) error {
	detail := extractDetail(body)

	switch status {
	case http.StatusUnauthorized:
		if detail != "" {
			return fmt.Errorf("%w: %s", common.ErrUnauthorized, detail)
		}
		return common.ErrUnauthorized
	case http.StatusForbidden:
		if detail != "" {
			return fmt.Errorf("%w: %s", common.ErrForbidden, detail)
		}
		return common.ErrForbidden
	case http.StatusNotFound:
		if detail != "" {
			return fmt.Errorf("%w: %s", common.ErrNotFound, detail)
		}
		return common.ErrNotFound
	}

	if detail == "" {
		detail = fallback
	}
	return &APIError{Status: status, Detail: detail}
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, out any, fallback string) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out, fallback)
}

func (c *HTTPClient) sendJSON(ctx context.Context, method, path string, payload any, out any, fallback string) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, method, path, nil, bytes.NewReader(b), "application/json", out, fallback)
}

// LoginForm exchanges credentials for a token. The endpoint takes a
// form-encoded body with the email in the "username" field.
func (c *HTTPClient) LoginForm(ctx context.Context, email, password string) (models.TokenResponse, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var resp models.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded",
		&resp, "Login failed")
	return resp, err
}

// Register creates an account and returns its token.
func (c *HTTPClient) Register(ctx context.Context, email, password string) (models.TokenResponse, error) {
	payload := map[string]string{"email": email, "password": password}

	var resp models.TokenResponse
	err := c.sendJSON(ctx, http.MethodPost, "/auth/register", payload, &resp, "Registration failed")
	return resp, err
}

// Listings fetches listings matching the filter.
func (c *HTTPClient) Listings(ctx context.Context, f ListingFilter) ([]models.Listing, error) {
	var out []models.Listing
	err := c.getJSON(ctx, "/listings", f.Values(), &out, "Failed to load listings")
	return out, err
}

// LatestListings fetches the newest listings.
func (c *HTTPClient) LatestListings(ctx context.Context, limit int) ([]models.Listing, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []models.Listing
	err := c.getJSON(ctx, "/listings/latest", q, &out, "Failed to load listings")
	return out, err
}

// Listing fetches a single listing by id.
func (c *HTTPClient) Listing(ctx context.Context, id string) (*models.Listing, error) {
	var out models.Listing
	if err := c.getJSON(ctx, "/listings/"+url.PathEscape(id), nil, &out, "Failed to load listing"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateListing creates a listing record and returns it with its new id.
func (c *HTTPClient) CreateListing(ctx context.Context, payload models.ListingCreate) (*models.Listing, error) {
	var out models.Listing
	if err := c.sendJSON(ctx, http.MethodPost, "/listings", payload, &out, "Failed to create listing"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateListing applies a partial update to an owned listing.
func (c *HTTPClient) UpdateListing(ctx context.Context, id string, payload models.ListingUpdate) (*models.Listing, error) {
	var out models.Listing
	if err := c.sendJSON(ctx, http.MethodPut, "/listings/"+url.PathEscape(id), payload, &out, "Failed to update listing"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteListing removes an owned listing.
func (c *HTTPClient) DeleteListing(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/listings/"+url.PathEscape(id), nil, nil, "", nil, "Failed to delete listing")
}

// MyListings fetches the caller's own listings.
func (c *HTTPClient) MyListings(ctx context.Context) ([]models.Listing, error) {
	var out []models.Listing
	err := c.getJSON(ctx, "/listings/me", nil, &out, "Failed to load your listings")
	return out, err
}

// Categories fetches the server's category vocabulary.
func (c *HTTPClient) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := c.getJSON(ctx, "/listings/categories", nil, &out, "Failed to load categories")
	return out, err
}

// UploadImage attaches an image file to a listing via multipart upload.
func (c *HTTPClient) UploadImage(ctx context.Context, id, filename string, content io.Reader) (models.ImageUploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return models.ImageUploadResult{}, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return models.ImageUploadResult{}, err
	}
	if err := mw.Close(); err != nil {
		return models.ImageUploadResult{}, err
	}

	var out models.ImageUploadResult
	err = c.do(ctx, http.MethodPost, "/listings/"+url.PathEscape(id)+"/images", nil,
		&buf, mw.FormDataContentType(), &out, "Failed to upload image")
	return out, err
}

// AddImageURL attaches an externally hosted image to a listing by URL.
func (c *HTTPClient) AddImageURL(ctx context.Context, id, imageURL string) (models.ImageUploadResult, error) {
	payload := map[string]string{"url": imageURL}

	var out models.ImageUploadResult
	err := c.sendJSON(ctx, http.MethodPost, "/listings/"+url.PathEscape(id)+"/images/url", payload, &out, "Failed to add image")
	return out, err
}

// SearchAdvanced runs the exact-match keyword search.
func (c *HTTPClient) SearchAdvanced(ctx context.Context, f ListingFilter) ([]models.Listing, error) {
	var out []models.Listing
	err := c.getJSON(ctx, "/listings/search/advanced", f.Values(), &out, "Search failed")
	return out, err
}

// SearchSemantic runs the typo-tolerant semantic search.
func (c *HTTPClient) SearchSemantic(ctx context.Context, f ListingFilter) ([]models.Listing, error) {
	var out []models.Listing
	err := c.getJSON(ctx, "/listings/search/semantic", f.Values(), &out, "Search failed")
	return out, err
}

// SearchHybrid runs the hybrid-ranked search.
func (c *HTTPClient) SearchHybrid(ctx context.Context, f ListingFilter) ([]models.Listing, error) {
	var out []models.Listing
	err := c.getJSON(ctx, "/listings/search/hybrid", f.Values(), &out, "Search failed")
	return out, err
}

// Nearby runs a geo-radius query. The filter must carry Lat, Lng and Radius.
func (c *HTTPClient) Nearby(ctx context.Context, f ListingFilter) ([]models.Listing, error) {
	var out []models.Listing
	err := c.getJSON(ctx, "/listings/nearby", f.Values(), &out, "Failed to load nearby listings")
	return out, err
}

// AnalyticsSummary fetches the periodically materialized dashboard snapshot.
func (c *HTTPClient) AnalyticsSummary(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	var out models.AnalyticsSnapshot
	if err := c.getJSON(ctx, "/analytics/summary", nil, &out, "Failed to load analytics"); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyticsLive fetches a freshly computed dashboard snapshot.
func (c *HTTPClient) AnalyticsLive(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	var out models.AnalyticsSnapshot
	if err := c.getJSON(ctx, "/analytics/live", nil, &out, "Failed to load analytics"); err != nil {
		return nil, err
	}
	return &out, nil
}
