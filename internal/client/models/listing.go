// Package models defines the client-side view of the marketplace API types.
// Authoritative shapes live server-side; these structs only need to be wide
// enough for what the client renders and sends.
package models

// GeoPoint mirrors the server's GeoJSON point. Coordinates are [lng, lat].
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Listing is a single marketplace item as returned by the API.
// Score is only populated in search responses.
type Listing struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags"`
	City        string   `json:"city"`
	Category    string   `json:"category"`
	Features    []string `json:"features"`
	UserID      string   `json:"userId"`
	Location    GeoPoint `json:"location"`
	Images      []string `json:"images"`
	PostedDate  string   `json:"posted_date,omitempty"`
	ExpiryDate  string   `json:"expiry_date,omitempty"`
	Score       *float64 `json:"score,omitempty"`
}

// ListingCreate is the request body for POST /listings.
// Validation tags mirror what the create form requires before submitting.
type ListingCreate struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	City        string   `json:"city" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Lat         float64  `json:"lat" validate:"gte=-90,lte=90"`
	Lng         float64  `json:"lng" validate:"gte=-180,lte=180"`
	Tags        []string `json:"tags"`
	Features    []string `json:"features"`
	ExpiryDays  int      `json:"expiry_days" validate:"gt=0"`
}

// ListingUpdate is the request body for PUT /listings/{id}.
// Nil fields are omitted so the server only touches what changed.
type ListingUpdate struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	City        *string  `json:"city,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Features    []string `json:"features,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
}

// ImageUploadResult is the response of both image attachment endpoints.
type ImageUploadResult struct {
	URL string `json:"url"`
}

// DefaultCategories is the built-in category vocabulary used when the
// categories endpoint is unreachable or returns nothing.
var DefaultCategories = []string{
	"electronics",
	"vehicles",
	"real_estate",
	"jobs",
	"services",
	"furniture",
	"clothing",
	"books",
	"sports",
	"pets",
	"toys",
	"home_garden",
	"health_beauty",
	"food_beverages",
	"other",
}
