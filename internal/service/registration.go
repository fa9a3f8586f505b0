package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/service/ports"
)

// RegistrationService drives the per-(user, event) state machine:
// none -> going -> cancelled -> going, with "interested" reachable only from
// none. Every operation here fails closed on the credential.
type RegistrationService struct {
	regRepo        ports.RegistrationRepo
	eventRepo      ports.EventRepo
	authn          ports.Authenticator
	notifier       ports.ReminderNotifier
	reminderWindow time.Duration
	logger         logger.Logger
}

func NewRegistrationService(
	regRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	authn ports.Authenticator,
	notifier ports.ReminderNotifier,
	reminderWindow time.Duration,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		regRepo:        regRepo,
		eventRepo:      eventRepo,
		authn:          authn,
		notifier:       notifier,
		reminderWindow: reminderWindow,
		logger:         logger,
	}
}

// Register moves the pair to "going" from any state. Custom fields are
// replaced wholesale, not merged.
func (s *RegistrationService) Register(ctx context.Context, token, eventID string, customFields map[string]any) (*domain.Registration, error) {
	user, err := s.authn.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if _, err = s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	reg, err := s.regRepo.Upsert(ctx, &domain.Registration{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		EventID:      eventID,
		Status:       domain.RegistrationStatusGoing,
		CustomFields: customFields,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert registration: %w", err)
	}

	s.logger.Info("registration saved",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", user.ID),
	)

	return reg, nil
}

// MarkInterested records a one-way "interested" signal. It only succeeds
// when no record exists yet; any prior state wins.
func (s *RegistrationService) MarkInterested(ctx context.Context, token, eventID string) (*domain.Registration, error) {
	user, err := s.authn.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if _, err = s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	reg := &domain.Registration{
		ID:      uuid.New().String(),
		UserID:  user.ID,
		EventID: eventID,
		Status:  domain.RegistrationStatusInterested,
	}
	if err = s.regRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	return reg, nil
}

// Cancel marks an existing registration cancelled. The record is kept for
// history, never deleted.
func (s *RegistrationService) Cancel(ctx context.Context, token, eventID string) (*domain.Registration, error) {
	user, err := s.authn.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	reg, err := s.regRepo.UpdateStatus(ctx, user.ID, eventID, domain.RegistrationStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel registration: %w", err)
	}

	s.logger.Info("registration cancelled",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", user.ID),
	)

	return reg, nil
}

// StatusMap returns eventID -> status for the events that have a record;
// events without one are absent from the map.
func (s *RegistrationService) StatusMap(ctx context.Context, token string, eventIDs []string) (map[string]domain.RegistrationStatus, error) {
	user, err := s.authn.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if len(eventIDs) == 0 {
		return map[string]domain.RegistrationStatus{}, nil
	}

	return s.regRepo.StatusMap(ctx, user.ID, eventIDs)
}

// ListByUser returns the caller's registrations joined with their events,
// newest first.
func (s *RegistrationService) ListByUser(ctx context.Context, token string, status *domain.RegistrationStatus) ([]*domain.RegistrationWithEvent, error) {
	user, err := s.authn.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *status)
	}

	return s.regRepo.ListByUser(ctx, user.ID, status)
}

// SendUpcomingReminders notifies users about their "going" events starting
// inside the reminder window. Each registration is reminded at most once.
func (s *RegistrationService) SendUpcomingReminders(ctx context.Context) (int, error) {
	due, err := s.regRepo.DueReminders(ctx, s.reminderWindow)
	if err != nil {
		return 0, fmt.Errorf("due reminders: %w", err)
	}

	sent := 0
	for _, rem := range due {
		s.notifier.NotifyEventSoon(ctx, &rem.User, &rem.Event)
		if err := s.regRepo.MarkReminded(ctx, rem.RegistrationID); err != nil {
			s.logger.Error("failed to mark registration reminded",
				logger.String("registration_id", rem.RegistrationID),
				logger.String("error", err.Error()),
			)
			continue
		}
		sent++
	}

	return sent, nil
}
