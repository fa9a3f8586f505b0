package service

import (
	"context"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/service/ports"
)

type UniversityService struct {
	repo      ports.UniversityRepo
	defaultID string
}

func NewUniversityService(repo ports.UniversityRepo, defaultID string) *UniversityService {
	return &UniversityService{
		repo:      repo,
		defaultID: defaultID,
	}
}

func (s *UniversityService) List(ctx context.Context) ([]*domain.University, error) {
	return s.repo.List(ctx)
}

func (s *UniversityService) GetByID(ctx context.Context, id string) (*domain.University, error) {
	return s.repo.GetByID(ctx, id)
}

// Default returns the pilot campus served to clients with no selection.
func (s *UniversityService) Default(ctx context.Context) (*domain.University, error) {
	return s.repo.GetByID(ctx, s.defaultID)
}
