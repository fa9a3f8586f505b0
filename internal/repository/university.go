package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
)

type UniversityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUniversityRepo(db *dbpg.DB) *UniversityRepository {
	return &UniversityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UniversityRepository) GetByID(ctx context.Context, id string) (*domain.University, error) {
	query := `SELECT id, name, tz, center_lat, center_lng
			  FROM universities
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get university: %w", err)
	}

	var u domain.University
	if err = row.Scan(&u.ID, &u.Name, &u.Timezone, &u.CenterLat, &u.CenterLng); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUniversityNotFound
		}
		return nil, fmt.Errorf("scan university: %w", err)
	}

	return &u, nil
}

func (r *UniversityRepository) List(ctx context.Context) ([]*domain.University, error) {
	query := `SELECT id, name, tz, center_lat, center_lng
			  FROM universities
			  ORDER BY name ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list universities: %w", err)
	}
	defer rows.Close()

	var res []*domain.University
	for rows.Next() {
		var u domain.University
		if err = rows.Scan(&u.ID, &u.Name, &u.Timezone, &u.CenterLat, &u.CenterLng); err != nil {
			return nil, fmt.Errorf("scan university: %w", err)
		}
		res = append(res, &u)
	}

	return res, rows.Err()
}
