package service

import (
	"context"
	"math"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/geo"
	"github.com/05ryt31/No-more-FOMO/internal/service/ports"
)

// ETAService answers "can I still walk there in time". The feature is
// advisory: every upstream failure degrades to the single "unavailable"
// result so the event listing itself is never blocked by it.
type ETAService struct {
	eventRepo ports.EventRepo
	uniRepo   ports.UniversityRepo
	router    ports.RouteEstimator
	buffer    time.Duration
	timeout   time.Duration
	maxWalkKm float64
	logger    logger.Logger
}

func NewETAService(
	eventRepo ports.EventRepo,
	uniRepo ports.UniversityRepo,
	router ports.RouteEstimator,
	buffer time.Duration,
	timeout time.Duration,
	maxWalkKm float64,
	logger logger.Logger,
) *ETAService {
	return &ETAService{
		eventRepo: eventRepo,
		uniRepo:   uniRepo,
		router:    router,
		buffer:    buffer,
		timeout:   timeout,
		maxWalkKm: maxWalkKm,
		logger:    logger,
	}
}

// Estimate computes the walking ETA for one event. A nil or invalid origin
// falls back to the event's campus center. A missing destination, a
// straight-line distance beyond the walking cap, and every routing failure
// all yield the "unavailable" result, not an error.
func (s *ETAService) Estimate(ctx context.Context, eventID string, origin *geo.Coordinates, buffer *time.Duration) (*domain.ETAResult, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.HasCoords() {
		return domain.ETAUnavailable(), nil
	}
	destination := geo.Coordinates{Lat: *event.CoordsLat, Lng: *event.CoordsLng}

	from, ok := s.resolveOrigin(ctx, event, origin)
	if !ok {
		return domain.ETAUnavailable(), nil
	}

	// Walking across half the state is not a route worth asking for.
	if geo.Haversine(from, destination) > s.maxWalkKm {
		return domain.ETAUnavailable(), nil
	}

	buf := s.buffer
	if buffer != nil && *buffer > 0 {
		buf = *buffer
	}

	routeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	route, err := s.router.WalkingRoute(routeCtx, from, destination)
	if err != nil {
		s.logger.Warn("walking route unavailable",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return domain.ETAUnavailable(), nil
	}

	minutes := int(math.Ceil(route.Duration.Seconds() / 60))
	leaveBy := event.StartAt.Add(-(time.Duration(minutes)*time.Minute + buf))

	// Evaluated at call time on purpose: a stale result should err toward
	// "cannot make it".
	return &domain.ETAResult{
		Available:       true,
		DurationMinutes: minutes,
		Distance:        route.Distance,
		LeaveBy:         leaveBy,
		CanMakeIt:       !time.Now().After(leaveBy),
	}, nil
}

func (s *ETAService) resolveOrigin(ctx context.Context, event *domain.Event, origin *geo.Coordinates) (geo.Coordinates, bool) {
	if origin != nil && origin.Valid() {
		return *origin, true
	}

	uni, err := s.uniRepo.GetByID(ctx, event.UniversityID)
	if err != nil {
		s.logger.Warn("campus center fallback unavailable",
			logger.String("university_id", event.UniversityID),
			logger.String("error", err.Error()),
		)
		return geo.Coordinates{}, false
	}

	return geo.Coordinates{Lat: uni.CenterLat, Lng: uni.CenterLng}, true
}
