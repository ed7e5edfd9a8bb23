package models

// Analytics types mirror the pre-aggregated snapshot served by
// /analytics/live and /analytics/summary. The client performs no computation
// on these beyond chart scaling.

type AnalyticsOverview struct {
	TotalListings         int `json:"totalListings"`
	ActiveListings        int `json:"activeListings"`
	ExpiredListings       int `json:"expiredListings"`
	TotalUsers            int `json:"totalUsers"`
	ListingsWithImages    int `json:"listingsWithImages"`
	ListingsWithoutImages int `json:"listingsWithoutImages"`
}

// CountBucket is a generic (label, count) aggregate row; the label rides in
// the Mongo-style "_id" field.
type CountBucket struct {
	ID    string `json:"_id"`
	Count int    `json:"count"`
}

type PriceStats struct {
	ID       string  `json:"_id"`
	AvgPrice float64 `json:"avgPrice"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
	Count    int     `json:"count"`
}

type ActiveUser struct {
	ID           string `json:"_id"`
	ListingCount int    `json:"listingCount"`
	Email        string `json:"email,omitempty"`
}

// AnalyticsSnapshot is the wholesale aggregate fetched from the server.
type AnalyticsSnapshot struct {
	GeneratedAt         string        `json:"generatedAt"`
	Overview            AnalyticsOverview `json:"overview"`
	ByCity              []CountBucket `json:"byCity"`
	ByCategory          []CountBucket `json:"byCategory"`
	PriceStatsByCategory []PriceStats `json:"priceStatsByCategory"`
	DailyListings       []CountBucket `json:"dailyListings"`
	TopTags             []CountBucket `json:"topTags"`
	PriceRanges         []CountBucket `json:"priceRanges"`
	UserRegistrations   []CountBucket `json:"userRegistrations"`
	MostActiveUsers     []ActiveUser  `json:"mostActiveUsers"`
}
