package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockRegistrationRepo, *mocks.MockAuthenticator, *mocks.MockEventExtractor) {
	t.Helper()
	repo := mocks.NewMockEventRepo(t)
	regRepo := mocks.NewMockRegistrationRepo(t)
	authn := mocks.NewMockAuthenticator(t)
	extractor := mocks.NewMockEventExtractor(t)
	svc := NewEventService(repo, regRepo, authn, extractor, newTestLogger(t))
	return svc, repo, regRepo, authn, extractor
}

func TestEventService_List_Defaults(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	events := []*domain.Event{
		{ID: "e1", UniversityID: "ucla"},
		{ID: "e2", UniversityID: "ucla"},
	}

	repo.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.EventFilter) bool {
		return f.UniversityID == "ucla" &&
			f.Limit == defaultEventLimit &&
			f.Offset == 0 &&
			f.Until == nil &&
			!f.From.IsZero()
	})).Return(events, nil)

	got, err := svc.List(context.Background(), ListEventsInput{UniversityID: "ucla"})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e1", got[0].ID)
	assert.Nil(t, got[0].RegistrationStatus)
}

func TestEventService_List_Validation(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	tests := []struct {
		name  string
		input ListEventsInput
	}{
		{"missing university", ListEventsInput{}},
		{"unknown time filter", ListEventsInput{UniversityID: "ucla", TimeFilter: "next-week"}},
		{"limit too large", ListEventsInput{UniversityID: "ucla", Limit: 101}},
		{"negative limit", ListEventsInput{UniversityID: "ucla", Limit: -1}},
		{"negative offset", ListEventsInput{UniversityID: "ucla", Offset: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.List(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_List_HappeningSoonWindow(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	repo.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.EventFilter) bool {
		if f.Until == nil {
			return false
		}
		span := f.Until.Sub(f.From)
		return span > 23*time.Hour && span <= 24*time.Hour
	})).Return(nil, nil)

	_, err := svc.List(context.Background(), ListEventsInput{
		UniversityID: "ucla",
		TimeFilter:   domain.TimeFilterHappeningSoon,
	})

	require.NoError(t, err)
}

func TestEventService_List_AnnotatesRegistrations(t *testing.T) {
	svc, repo, regRepo, authn, _ := newEventService(t)

	events := []*domain.Event{{ID: "e1"}, {ID: "e2"}}
	user := &domain.User{ID: "u1", IsActive: true}

	repo.EXPECT().List(mock.Anything, mock.Anything).Return(events, nil)
	authn.EXPECT().Authenticate(mock.Anything, "good-token").Return(user, nil)
	regRepo.EXPECT().StatusMap(mock.Anything, "u1", []string{"e1", "e2"}).
		Return(map[string]domain.RegistrationStatus{"e1": domain.RegistrationStatusGoing}, nil)

	got, err := svc.List(context.Background(), ListEventsInput{
		UniversityID: "ucla",
		Token:        "good-token",
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].RegistrationStatus)
	assert.Equal(t, domain.RegistrationStatusGoing, *got[0].RegistrationStatus)
	assert.Nil(t, got[1].RegistrationStatus)
}

func TestEventService_List_BadTokenFailsOpen(t *testing.T) {
	svc, repo, _, authn, _ := newEventService(t)

	events := []*domain.Event{{ID: "e1"}}

	repo.EXPECT().List(mock.Anything, mock.Anything).Return(events, nil)
	authn.EXPECT().Authenticate(mock.Anything, "stale-token").Return(nil, domain.ErrUnauthorized)

	got, err := svc.List(context.Background(), ListEventsInput{
		UniversityID: "ucla",
		Token:        "stale-token",
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].RegistrationStatus)
}

func TestEventService_Create(t *testing.T) {
	svc, repo, _, _, _ := newEventService(t)

	location := "De Neve Plaza"
	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
		return e.ID != "" &&
			e.Title == "Welcome Mixer" &&
			e.DedupeKey == "welcome-mixer-2026-09-12-de-neve-plaza"
	})).Return(nil)

	event, err := svc.Create(context.Background(), domain.CreateEventInput{
		UniversityID: "ucla",
		Title:        "Welcome Mixer",
		StartAt:      start,
		Location:     &location,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, []string{}, event.Categories)
}

func TestEventService_Create_Validation(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{"missing university", domain.CreateEventInput{Title: "x", StartAt: start}},
		{"missing title", domain.CreateEventInput{UniversityID: "ucla", StartAt: start}},
		{"missing start", domain.CreateEventInput{UniversityID: "ucla", Title: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Extract(t *testing.T) {
	svc, _, _, _, extractor := newEventService(t)

	extracted := &domain.ExtractedEvent{Title: "Career Fair", StartDate: "2026-10-01", StartTime: "10:00"}
	extractor.EXPECT().Extract(mock.Anything, "Career fair on Oct 1 at 10am").Return(extracted, nil)

	got, err := svc.Extract(context.Background(), "Career fair on Oct 1 at 10am")

	require.NoError(t, err)
	assert.Equal(t, "Career Fair", got.Title)
}

func TestEventService_Extract_UpstreamFailure(t *testing.T) {
	svc, _, _, _, extractor := newEventService(t)

	extractor.EXPECT().Extract(mock.Anything, mock.Anything).Return(nil, errors.New("rate limited"))

	_, err := svc.Extract(context.Background(), "some announcement")

	assert.ErrorIs(t, err, domain.ErrExtractFailed)
}

func TestEventService_Extract_EmptyText(t *testing.T) {
	svc, _, _, _, _ := newEventService(t)

	_, err := svc.Extract(context.Background(), "   \n ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDedupeKey(t *testing.T) {
	start := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	location := "Royce Hall, Room 190"

	assert.Equal(t, "welcome-mixer-2026-09-12-royce-hall--room-190", dedupeKey("Welcome Mixer", start, &location))
	assert.Equal(t, "welcome-mixer-2026-09-12-no-location", dedupeKey("Welcome Mixer", start, nil))

	empty := ""
	assert.Equal(t, "welcome-mixer-2026-09-12-no-location", dedupeKey("Welcome Mixer", start, &empty))
}
