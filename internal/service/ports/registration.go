package ports

import (
	"context"
	"time"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
)

type RegistrationRepo interface {
	// Upsert creates the registration or, when the (user, event) pair already
	// exists, overwrites its status and custom fields in place.
	Upsert(ctx context.Context, r *domain.Registration) (*domain.Registration, error)
	// Create inserts a new registration and fails with ErrAlreadyRegistered
	// when the pair exists.
	Create(ctx context.Context, r *domain.Registration) error
	// UpdateStatus mutates an existing record and fails with
	// ErrRegistrationNotFound when there is none.
	UpdateStatus(ctx context.Context, userID, eventID string, status domain.RegistrationStatus) (*domain.Registration, error)
	StatusMap(ctx context.Context, userID string, eventIDs []string) (map[string]domain.RegistrationStatus, error)
	ListByUser(ctx context.Context, userID string, status *domain.RegistrationStatus) ([]*domain.RegistrationWithEvent, error)
	DueReminders(ctx context.Context, window time.Duration) ([]*domain.Reminder, error)
	MarkReminded(ctx context.Context, registrationID string) error
}
