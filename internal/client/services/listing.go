package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nuwanw/lankalist/internal/client/api"
	"github.com/nuwanw/lankalist/internal/client/cities"
	"github.com/nuwanw/lankalist/internal/client/models"
	"github.com/nuwanw/lankalist/internal/common"
)

// CreateForm carries the create-listing form fields before validation and
// city resolution.
type CreateForm struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Price       float64
	City        string `validate:"required"`
	Category    string `validate:"required"`
	Tags        []string
	ExpiryDays  int
	// ImagePath is the local file uploaded after the record is created.
	ImagePath string `validate:"required"`
}

// ImageUploadError reports a failed image attachment after the listing
// record itself was created. The listing is NOT rolled back; it exists
// without its image and the caller should say so.
type ImageUploadError struct {
	ListingID string
	Err       error
}

func (e *ImageUploadError) Error() string {
	return fmt.Sprintf("listing %s created, but image upload failed: %v", e.ListingID, e.Err)
}

func (e *ImageUploadError) Unwrap() error { return e.Err }

// ListingService covers browse, detail, create and the my-listings
// operations (edit, delete, image management).
type ListingService interface {
	Latest(ctx context.Context, limit int) ([]models.Listing, error)
	Browse(ctx context.Context, f api.ListingFilter) ([]models.Listing, error)
	Nearby(ctx context.Context, f api.ListingFilter) ([]models.Listing, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*models.Listing, error)
	Create(ctx context.Context, form CreateForm) (*models.Listing, error)
	Mine(ctx context.Context) ([]models.Listing, error)
	Update(ctx context.Context, id string, update models.ListingUpdate) (*models.Listing, error)
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id, path string) (models.ImageUploadResult, error)
	AddImageURL(ctx context.Context, id, imageURL string) (models.ImageUploadResult, error)
}

type listingService struct {
	client   api.Client
	validate *validator.Validate
}

func NewListingService(client api.Client) ListingService {
	return &listingService{client: client, validate: validator.New()}
}

func (s *listingService) Latest(ctx context.Context, limit int) ([]models.Listing, error) {
	return s.client.LatestListings(ctx, limit)
}

func (s *listingService) Browse(ctx context.Context, f api.ListingFilter) ([]models.Listing, error) {
	return s.client.Listings(ctx, f)
}

func (s *listingService) Nearby(ctx context.Context, f api.ListingFilter) ([]models.Listing, error) {
	return s.client.Nearby(ctx, f)
}

// Categories returns the server vocabulary, falling back to the built-in
// default list when the fetch fails or comes back empty. Unknown values in
// server data are tolerated everywhere else.
func (s *listingService) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.client.Categories(ctx)
	if err != nil || len(cats) == 0 {
		return models.DefaultCategories, err
	}
	return cats, nil
}

func (s *listingService) Get(ctx context.Context, id string) (*models.Listing, error) {
	return s.client.Listing(ctx, id)
}

// Create validates the form, resolves the city to coordinates, and performs
// the two-step commit: create the record, then upload the image against the
// returned id. A step-2 failure returns *ImageUploadError with the created
// listing; step 1 is never rolled back.
func (s *listingService) Create(ctx context.Context, form CreateForm) (*models.Listing, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("please fill in all required fields: %w", err)
	}

	coords, ok := cities.GetCoordinates(form.City)
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownCity, form.City)
	}

	expiryDays := form.ExpiryDays
	if expiryDays <= 0 {
		expiryDays = 30
	}

	payload := models.ListingCreate{
		Title:       form.Title,
		Description: form.Description,
		Price:       form.Price,
		City:        form.City,
		Category:    form.Category,
		Lat:         coords.Lat,
		Lng:         coords.Lng,
		Tags:        cleanTags(form.Tags),
		Features:    []string{},
		ExpiryDays:  expiryDays,
	}

	created, err := s.client.CreateListing(ctx, payload)
	if err != nil {
		return nil, err
	}

	if _, err := s.UploadImage(ctx, created.ID, form.ImagePath); err != nil {
		return created, &ImageUploadError{ListingID: created.ID, Err: err}
	}

	return created, nil
}

func (s *listingService) Mine(ctx context.Context) ([]models.Listing, error) {
	return s.client.MyListings(ctx)
}

// Update sends a partial update. When the city changes, its coordinates are
// re-resolved and sent along so the server's geo index stays consistent.
func (s *listingService) Update(ctx context.Context, id string, update models.ListingUpdate) (*models.Listing, error) {
	if update.City != nil {
		coords, ok := cities.GetCoordinates(*update.City)
		if !ok {
			return nil, fmt.Errorf("%w: %s", common.ErrUnknownCity, *update.City)
		}
		update.Lat = &coords.Lat
		update.Lng = &coords.Lng
	}
	return s.client.UpdateListing(ctx, id, update)
}

func (s *listingService) Delete(ctx context.Context, id string) error {
	return s.client.DeleteListing(ctx, id)
}

// UploadImage streams a local file to the multipart endpoint.
func (s *listingService) UploadImage(ctx context.Context, id, path string) (models.ImageUploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.ImageUploadResult{}, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	return s.client.UploadImage(ctx, id, filepath.Base(path), f)
}

// AddImageURL attaches an externally hosted image. The URL is checked only
// for an http/https prefix; anything further is the server's problem.
func (s *listingService) AddImageURL(ctx context.Context, id, imageURL string) (models.ImageUploadResult, error) {
	if !strings.HasPrefix(imageURL, "http://") && !strings.HasPrefix(imageURL, "https://") {
		return models.ImageUploadResult{}, fmt.Errorf("image URL must start with http:// or https://")
	}
	return s.client.AddImageURL(ctx, id, imageURL)
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
