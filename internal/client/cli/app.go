// Package cli implements the interactive terminal client: a REPL whose
// commands correspond to the marketplace screens (browse, search, detail,
// create, my listings, analytics, auth).
package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/nuwanw/lankalist/internal/client/api"
	"github.com/nuwanw/lankalist/internal/client/config"
	"github.com/nuwanw/lankalist/internal/client/models"
	"github.com/nuwanw/lankalist/internal/client/repositories/metadata"
	"github.com/nuwanw/lankalist/internal/client/session"
	"github.com/nuwanw/lankalist/internal/client/services"
	"github.com/nuwanw/lankalist/internal/logging"
)

// browseState is the home screen's filter state. Any change triggers a
// fresh query; the generation counter discards stale responses.
type browseState struct {
	category string
	sortBy   string
	minPrice *float64
	maxPrice *float64
	city     string
	radiusKm float64

	generation uint64
}

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Store

	authService      services.AuthService
	listingService   services.ListingService
	searchService    services.SearchService
	analyticsService services.AnalyticsService

	// apiBase resolves server-relative image paths for display.
	apiBase string
	reader  *bufio.Reader

	browse browseState
	// categories is fetched once and cached for the session.
	categories []string
	// mine mirrors the last my-listings fetch so edits and deletes can
	// update the view without another round trip.
	mine []models.Listing
}

var _ execIface = (*App)(nil)

// NewApp wires the client together: local state store, restored session,
// HTTP client, services. The session is rehydrated before the app is
// returned; nothing renders against a half-restored session.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	db, err := metadata.Open(ctx, c.StateDir)
	if err != nil {
		log.Error(ctx, "error initializing state store", "err", err)
		return nil, err
	}

	sess := session.NewStore(db, log)
	if err := sess.Restore(ctx); err != nil {
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, sess.Token)

	return &App{
		config:           c,
		log:              log,
		session:          sess,
		authService:      services.NewAuthService(apiClient, sess),
		listingService:   services.NewListingService(apiClient),
		searchService:    services.NewSearchService(apiClient, log),
		analyticsService: services.NewAnalyticsService(apiClient),
		apiBase:          c.APIBaseURL,
		reader:           bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) isAdmin() bool {
	return a.session.IsAdmin()
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		if u.Role == "admin" {
			return u.Email + " (admin)"
		}
		return u.Email
	}
	return "guest"
}
