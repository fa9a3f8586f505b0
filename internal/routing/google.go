// Package routing wraps the Google Distance Matrix API behind the
// RouteEstimator port.
package routing

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"
	"googlemaps.github.io/maps"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/geo"
)

type GoogleRouter struct {
	client *maps.Client
	logger logger.Logger
}

// NewGoogleRouter builds the routing gateway. With an empty API key the
// router stays up but answers every request with ErrRouteUnavailable, so the
// ETA feature degrades instead of blocking startup.
func NewGoogleRouter(apiKey string, logger logger.Logger) (*GoogleRouter, error) {
	if apiKey == "" {
		logger.Warn("google maps api key is empty, ETA estimates disabled")
		return &GoogleRouter{client: nil, logger: logger}, nil
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}

	return &GoogleRouter{client: client, logger: logger}, nil
}

// WalkingRoute asks for a single walking-mode origin/destination pair. Every
// non-OK per-element status maps to ErrRouteUnavailable; callers treat all
// failures uniformly.
func (r *GoogleRouter) WalkingRoute(ctx context.Context, origin, destination geo.Coordinates) (*domain.WalkingRoute, error) {
	if r.client == nil {
		return nil, domain.ErrRouteUnavailable
	}

	resp, err := r.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{coordParam(origin)},
		Destinations: []string{coordParam(destination)},
		Mode:         maps.TravelModeWalking,
		Units:        maps.UnitsMetric,
	})
	if err != nil {
		return nil, fmt.Errorf("distance matrix: %w", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, fmt.Errorf("%w: empty response", domain.ErrRouteUnavailable)
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return nil, fmt.Errorf("%w: element status %s", domain.ErrRouteUnavailable, element.Status)
	}

	return &domain.WalkingRoute{
		Duration: element.Duration,
		Distance: element.Distance.HumanReadable,
	}, nil
}

func coordParam(c geo.Coordinates) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}
