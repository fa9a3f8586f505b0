package ports

import (
	"context"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
)

type ReminderNotifier interface {
	NotifyEventSoon(ctx context.Context, user *domain.User, event *domain.Event)
}
