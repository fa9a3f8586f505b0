package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/service/ports/mocks"
)

func newRegistrationService(t *testing.T) (*RegistrationService, *mocks.MockRegistrationRepo, *mocks.MockEventRepo, *mocks.MockAuthenticator, *mocks.MockReminderNotifier) {
	t.Helper()
	regRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	authn := mocks.NewMockAuthenticator(t)
	notifier := mocks.NewMockReminderNotifier(t)
	svc := NewRegistrationService(regRepo, eventRepo, authn, notifier, time.Hour, newTestLogger(t))
	return svc, regRepo, eventRepo, authn, notifier
}

func TestRegistrationService_Register(t *testing.T) {
	svc, regRepo, eventRepo, authn, _ := newRegistrationService(t)

	user := &domain.User{ID: "u1", IsActive: true}
	fields := map[string]any{"dietary": "vegetarian"}

	authn.EXPECT().Authenticate(mock.Anything, "good-token").Return(user, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	regRepo.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(r *domain.Registration) bool {
		return r.UserID == "u1" &&
			r.EventID == "e1" &&
			r.Status == domain.RegistrationStatusGoing &&
			r.CustomFields["dietary"] == "vegetarian"
	})).RunAndReturn(func(_ context.Context, r *domain.Registration) (*domain.Registration, error) {
		return r, nil
	})

	reg, err := svc.Register(context.Background(), "good-token", "e1", fields)

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusGoing, reg.Status)
}

func TestRegistrationService_Register_Unauthorized(t *testing.T) {
	svc, _, _, authn, _ := newRegistrationService(t)

	authn.EXPECT().Authenticate(mock.Anything, "").Return(nil, domain.ErrUnauthorized)

	_, err := svc.Register(context.Background(), "", "e1", nil)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegistrationService_Register_EventNotFound(t *testing.T) {
	svc, _, eventRepo, authn, _ := newRegistrationService(t)

	authn.EXPECT().Authenticate(mock.Anything, "good-token").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Register(context.Background(), "good-token", "ghost", nil)

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_MarkInterested(t *testing.T) {
	svc, regRepo, eventRepo, authn, _ := newRegistrationService(t)

	authn.EXPECT().Authenticate(mock.Anything, "good-token").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	regRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.Registration) bool {
		return r.Status == domain.RegistrationStatusInterested
	})).Return(nil)

	reg, err := svc.MarkInterested(context.Background(), "good-token", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusInterested, reg.Status)
}

func TestRegistrationService_MarkInterested_AlreadyRegistered(t *testing.T) {
	svc, regRepo, eventRepo, authn, _ := newRegistrationService(t)

	authn.EXPECT().Authenticate(mock.Anything, "good-token").Return(&domain.User{ID: "u1"}, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	regRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyRegistered)

	_, err := svc.MarkInterested(context.Background(), "good-token", "e1")

	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationService_Cancel(t *testing.T) {
	svc, regRepo, _, authn, _ := newRegistrationService(t)

	authn.EXPECT().Authenticate(mock.Anything, "good-token").Return(&domain.User{ID: "u1"}, nil)
	regRepo.EXPECT().UpdateStatus(mock.Anything, "u1", "e1", domain.RegistrationStatusCancelled).
		Return(&domain.Registration{ID: "r1", Status: domain.RegistrationStatusCancelled}, nil)

	reg, err := svc.Cancel(context.Background(), "good-token", "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusCancelled, reg.Status)
}

func TestRegistrationService_Cancel_NoRegistration(t *testing.T) {
	svc, regRepo, _, authn, _ := newRegistrationService(t)

	authn.EXPECT().Authenticate(mock.Anything, "good-token").Return(&domain.User{ID: "u1"}, nil)
	regRepo.EXPECT().UpdateStatus(mock.Anything, "u1", "e1", domain.RegistrationStatusCancelled).
		Return(nil, domain.ErrRegistrationNotFound)

	_, err := svc.Cancel(context.Background(), "good-token", "e1")

	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestRegistrationService_StatusMap_Empty(t *testing.T) {
	svc, _, _, authn, _ := newRegistrationService(t)

	authn.EXPECT().Authenticate(mock.Anything, "good-token").Return(&domain.User{ID: "u1"}, nil)

	got, err := svc.StatusMap(context.Background(), "good-token", nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRegistrationService_ListByUser_UnknownStatus(t *testing.T) {
	svc, _, _, authn, _ := newRegistrationService(t)

	authn.EXPECT().Authenticate(mock.Anything, "good-token").Return(&domain.User{ID: "u1"}, nil)

	bad := domain.RegistrationStatus("maybe")
	_, err := svc.ListByUser(context.Background(), "good-token", &bad)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_SendUpcomingReminders(t *testing.T) {
	svc, regRepo, _, _, notifier := newRegistrationService(t)

	due := []*domain.Reminder{
		{RegistrationID: "r1", User: domain.User{ID: "u1"}, Event: domain.Event{ID: "e1"}},
		{RegistrationID: "r2", User: domain.User{ID: "u2"}, Event: domain.Event{ID: "e2"}},
	}

	regRepo.EXPECT().DueReminders(mock.Anything, time.Hour).Return(due, nil)
	notifier.EXPECT().NotifyEventSoon(mock.Anything, mock.Anything, mock.Anything).Return()
	regRepo.EXPECT().MarkReminded(mock.Anything, "r1").Return(nil)
	regRepo.EXPECT().MarkReminded(mock.Anything, "r2").Return(nil)

	sent, err := svc.SendUpcomingReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
}

func TestRegistrationService_SendUpcomingReminders_MarkFailure(t *testing.T) {
	svc, regRepo, _, _, notifier := newRegistrationService(t)

	due := []*domain.Reminder{
		{RegistrationID: "r1"},
		{RegistrationID: "r2"},
	}

	regRepo.EXPECT().DueReminders(mock.Anything, time.Hour).Return(due, nil)
	notifier.EXPECT().NotifyEventSoon(mock.Anything, mock.Anything, mock.Anything).Return()
	regRepo.EXPECT().MarkReminded(mock.Anything, "r1").Return(errors.New("db error"))
	regRepo.EXPECT().MarkReminded(mock.Anything, "r2").Return(nil)

	sent, err := svc.SendUpcomingReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}
