package services

import (
	"context"

	"github.com/nuwanw/lankalist/internal/client/api"
	"github.com/nuwanw/lankalist/internal/client/models"
)

// AnalyticsService fetches the pre-aggregated dashboard snapshot. The client
// does no computation on it beyond chart scaling in the render layer.
// Refresh is always a re-fetch; nothing is cached across calls except the
// last snapshot kept for re-rendering.
type AnalyticsService interface {
	// Live fetches a freshly computed snapshot.
	Live(ctx context.Context) (*models.AnalyticsSnapshot, error)
	// Summary fetches the periodically materialized snapshot.
	Summary(ctx context.Context) (*models.AnalyticsSnapshot, error)
	// Last returns the most recently fetched snapshot, or nil.
	Last() *models.AnalyticsSnapshot
}

type analyticsService struct {
	client api.Client
	last   *models.AnalyticsSnapshot
}

func NewAnalyticsService(client api.Client) AnalyticsService {
	return &analyticsService{client: client}
}

func (s *analyticsService) Live(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	snap, err := s.client.AnalyticsLive(ctx)
	if err != nil {
		return nil, err
	}
	s.last = snap
	return snap, nil
}

func (s *analyticsService) Summary(ctx context.Context) (*models.AnalyticsSnapshot, error) {
	snap, err := s.client.AnalyticsSummary(ctx)
	if err != nil {
		return nil, err
	}
	s.last = snap
	return snap, nil
}

func (s *analyticsService) Last() *models.AnalyticsSnapshot {
	return s.last
}
