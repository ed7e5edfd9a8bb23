package services

import (
	"context"
	"io"

	"github.com/nuwanw/lankalist/internal/client/api"
	"github.com/nuwanw/lankalist/internal/client/models"
)

// fakeClient implements api.Client for unit tests. Each call records its
// input and returns the configured result.
type fakeClient struct {
	LoginResp models.TokenResponse
	LoginErr  error

	RegisterResp models.TokenResponse
	RegisterErr  error

	ListingsResp []models.Listing
	ListingsErr  error
	LastFilter   api.ListingFilter

	LatestResp []models.Listing
	LatestErr  error

	ListingResp *models.Listing
	ListingErr  error

	CreateResp *models.Listing
	CreateErr  error
	Created    []models.ListingCreate

	UpdateResp *models.Listing
	UpdateErr  error
	Updated    map[string]models.ListingUpdate

	DeleteErr error
	Deleted   []string

	MineResp []models.Listing
	MineErr  error

	CategoriesResp []string
	CategoriesErr  error

	UploadResp models.ImageUploadResult
	UploadErr  error
	Uploads    []string

	AddURLResp models.ImageUploadResult
	AddURLErr  error
	AddedURLs  []string

	AdvancedResp []models.Listing
	AdvancedErr  error
	SemanticResp []models.Listing
	SemanticErr  error
	HybridResp   []models.Listing
	HybridErr    error
	NearbyResp   []models.Listing
	NearbyErr    error

	Calls []string

	SummaryResp *models.AnalyticsSnapshot
	SummaryErr  error
	LiveResp    *models.AnalyticsSnapshot
	LiveErr     error
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) LoginForm(ctx context.Context, email, password string) (models.TokenResponse, error) {
	f.record("login")
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, email, password string) (models.TokenResponse, error) {
	f.record("register")
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) Listings(ctx context.Context, filter api.ListingFilter) ([]models.Listing, error) {
	f.record("listings")
	f.LastFilter = filter
	return f.ListingsResp, f.ListingsErr
}

func (f *fakeClient) LatestListings(ctx context.Context, limit int) ([]models.Listing, error) {
	f.record("latest")
	return f.LatestResp, f.LatestErr
}

func (f *fakeClient) Listing(ctx context.Context, id string) (*models.Listing, error) {
	f.record("listing")
	return f.ListingResp, f.ListingErr
}

func (f *fakeClient) CreateListing(ctx context.Context, payload models.ListingCreate) (*models.Listing, error) {
	f.record("create")
	f.Created = append(f.Created, payload)
	return f.CreateResp, f.CreateErr
}

func (f *fakeClient) UpdateListing(ctx context.Context, id string, payload models.ListingUpdate) (*models.Listing, error) {
	f.record("update")
	if f.Updated == nil {
		f.Updated = make(map[string]models.ListingUpdate)
	}
	f.Updated[id] = payload
	return f.UpdateResp, f.UpdateErr
}

func (f *fakeClient) DeleteListing(ctx context.Context, id string) error {
	f.record("delete")
	f.Deleted = append(f.Deleted, id)
	return f.DeleteErr
}

func (f *fakeClient) MyListings(ctx context.Context) ([]models.Listing, error) {
	f.record("mine")
	return f.MineResp, f.MineErr
}

func (f *fakeClient) Categories(ctx context.Context) ([]string, error) {
	f.record("categories")
	return f.CategoriesResp, f.CategoriesErr
}

func (f *fakeClient) UploadImage(ctx context.Context, id, filename string, content io.Reader) (models.ImageUploadResult, error) {
	f.record("upload")
	f.Uploads = append(f.Uploads, id+"/"+filename)
	return f.UploadResp, f.UploadErr
}

func (f *fakeClient) AddImageURL(ctx context.Context, id, imageURL string) (models.ImageUploadResult, error) {
	f.record("addurl")
	f.AddedURLs = append(f.AddedURLs, imageURL)
	return f.AddURLResp, f.AddURLErr
}

func (f *fakeClient) SearchAdvanced(ctx context.Context, filter api.ListingFilter) ([]models.Listing, error) {
	f.record("advanced")
	f.LastFilter = filter
	return f.AdvancedResp, f.AdvancedErr
}

func (f *fakeClient) SearchSemantic(ctx context.Context, filter api.ListingFilter) ([]models.Listing, error) {
	f.record("semantic")
	f.LastFilter = filter
	return f.SemanticResp, f.SemanticErr
}

func (f *fakeClient) SearchHybrid(ctx context.Context, filter api.ListingFilter) ([]models.Listing, error) {
	f.record("hybrid")
	f.LastFilter = filter
	return f.HybridResp, f.HybridErr
}

func (f *fakeClient) Nearby(ctx context.Context, filter api.ListingFilter) ([]models.Listing, error) {
	f.record("nearby")
	f.LastFilter = filter
	return f.NearbyResp, f.NearbyErr
}

func (f *fakeClient) AnalyticsSummary(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	f.record("summary")
	return f.SummaryResp, f.SummaryErr
}

func (f *fakeClient) AnalyticsLive(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	f.record("live")
	return f.LiveResp, f.LiveErr
}
