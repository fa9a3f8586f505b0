package ports

import (
	"context"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/geo"
)

// RouteEstimator is the routing gateway. Every non-OK upstream answer comes
// back as an error; the estimator maps all of them to the single
// "unavailable" result.
type RouteEstimator interface {
	WalkingRoute(ctx context.Context, origin, destination geo.Coordinates) (*domain.WalkingRoute, error)
}
