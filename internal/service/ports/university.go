package ports

import (
	"context"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
)

type UniversityRepo interface {
	GetByID(ctx context.Context, id string) (*domain.University, error)
	List(ctx context.Context) ([]*domain.University, error)
}
