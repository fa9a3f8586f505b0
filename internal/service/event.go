package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/service/ports"
)

const (
	defaultEventLimit = 20
	maxEventLimit     = 100
	happeningSoonSpan = 24 * time.Hour
)

type EventService struct {
	repo      ports.EventRepo
	regRepo   ports.RegistrationRepo
	authn     ports.Authenticator
	extractor ports.EventExtractor
	logger    logger.Logger
}

func NewEventService(
	repo ports.EventRepo,
	regRepo ports.RegistrationRepo,
	authn ports.Authenticator,
	extractor ports.EventExtractor,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:      repo,
		regRepo:   regRepo,
		authn:     authn,
		extractor: extractor,
		logger:    logger,
	}
}

type ListEventsInput struct {
	UniversityID string
	Interests    []string
	TimeFilter   domain.TimeFilter
	Limit        int
	Offset       int
	// Token is optional. A token that fails verification degrades to an
	// anonymous listing instead of failing the query.
	Token string
}

// List returns upcoming events ordered by start time ascending, ties broken
// by popularity descending. When a token resolves to an active user, each
// event is annotated with that user's registration status.
func (s *EventService) List(ctx context.Context, input ListEventsInput) ([]*domain.AnnotatedEvent, error) {
	if input.UniversityID == "" {
		return nil, fmt.Errorf("%w: university_id is required", domain.ErrValidation)
	}
	if input.TimeFilter == "" {
		input.TimeFilter = domain.TimeFilterAll
	}
	if !input.TimeFilter.Valid() {
		return nil, fmt.Errorf("%w: unknown time_filter %q", domain.ErrValidation, input.TimeFilter)
	}
	if input.Limit == 0 {
		input.Limit = defaultEventLimit
	}
	if input.Limit < 1 || input.Limit > maxEventLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", domain.ErrValidation, maxEventLimit)
	}
	if input.Offset < 0 {
		return nil, fmt.Errorf("%w: offset must not be negative", domain.ErrValidation)
	}

	now := time.Now().UTC()
	filter := domain.EventFilter{
		UniversityID: input.UniversityID,
		Interests:    input.Interests,
		From:         now,
		Limit:        input.Limit,
		Offset:       input.Offset,
	}
	// "make-it-in-time" has no upper bound here; the caller applies the ETA
	// predicate on the returned page.
	if input.TimeFilter == domain.TimeFilterHappeningSoon {
		until := now.Add(happeningSoonSpan)
		filter.Until = &until
	}

	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	statuses := s.registrationStatuses(ctx, input.Token, events)

	res := make([]*domain.AnnotatedEvent, 0, len(events))
	for _, e := range events {
		annotated := &domain.AnnotatedEvent{Event: *e}
		if st, ok := statuses[e.ID]; ok {
			annotated.RegistrationStatus = &st
		}
		res = append(res, annotated)
	}

	return res, nil
}

// registrationStatuses is deliberately fail-open: anonymous browsing must
// never be blocked by a stale or malformed token.
func (s *EventService) registrationStatuses(ctx context.Context, token string, events []*domain.Event) map[string]domain.RegistrationStatus {
	if token == "" || len(events) == 0 {
		return nil
	}

	user, err := s.authn.Authenticate(ctx, token)
	if err != nil {
		s.logger.Debug("event listing continues anonymously",
			logger.String("reason", err.Error()),
		)
		return nil
	}

	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}

	statuses, err := s.regRepo.StatusMap(ctx, user.ID, ids)
	if err != nil {
		s.logger.Error("failed to load registration statuses",
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	return statuses
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) Categories(ctx context.Context, universityID string) ([]string, error) {
	if universityID == "" {
		return nil, fmt.Errorf("%w: university_id is required", domain.ErrValidation)
	}
	return s.repo.Categories(ctx, universityID)
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.UniversityID == "" {
		return nil, fmt.Errorf("%w: university_id is required", domain.ErrValidation)
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.StartAt.IsZero() {
		return nil, fmt.Errorf("%w: start is required", domain.ErrValidation)
	}

	categories := input.Categories
	if categories == nil {
		categories = []string{}
	}

	event := &domain.Event{
		ID:           uuid.New().String(),
		UniversityID: input.UniversityID,
		Title:        input.Title,
		Description:  input.Description,
		StartAt:      input.StartAt,
		EndAt:        input.EndAt,
		Location:     input.Location,
		CoordsLat:    input.CoordsLat,
		CoordsLng:    input.CoordsLng,
		Categories:   categories,
		Image:        input.Image,
		SourceIDs:    []string{},
		DedupeKey:    dedupeKey(input.Title, input.StartAt, input.Location),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("university_id", event.UniversityID),
	)

	return event, nil
}

// Extract asks the LLM to pull structured event fields out of a free-text
// announcement. Extraction is advisory: any upstream failure surfaces as
// ErrExtractFailed, never as a partial result.
func (s *EventService) Extract(ctx context.Context, text string) (*domain.ExtractedEvent, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrValidation)
	}

	extracted, err := s.extractor.Extract(ctx, text)
	if err != nil {
		s.logger.Error("event extraction failed",
			logger.String("error", err.Error()),
		)
		return nil, domain.ErrExtractFailed
	}

	return extracted, nil
}

// RefreshPopularity is the periodic ranking pass; the register/cancel path
// never mutates popularity directly.
func (s *EventService) RefreshPopularity(ctx context.Context) (int64, error) {
	return s.repo.RefreshPopularity(ctx)
}

// dedupeKey merges duplicate ingests of the same announcement: slugified
// title, start date, and location.
func dedupeKey(title string, start time.Time, location *string) string {
	loc := "no-location"
	if location != nil && *location != "" {
		loc = slugify(*location)
	}
	return slugify(title) + "-" + start.Format("2006-01-02") + "-" + loc
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
