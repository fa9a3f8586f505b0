package ports

import (
	"context"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	Categories(ctx context.Context, universityID string) ([]string, error)
	RefreshPopularity(ctx context.Context) (int64, error)
}
