package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
)

const eventColumns = `id, university_id, title, description, start_at, end_at, location,
				coords_lat, coords_lng, categories, image, popularity, source_ids, dedupe_key,
				created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, university_id, title, description, start_at, end_at, location,
				coords_lat, coords_lng, categories, image, popularity, source_ids, dedupe_key,
				created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.UniversityID, e.Title, e.Description, e.StartAt, e.EndAt, e.Location,
		e.CoordsLat, e.CoordsLng, pq.Array(e.Categories), e.Image, e.Popularity,
		pq.Array(e.SourceIDs), e.DedupeKey, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// List returns events ordered by start time ascending, ties broken by
// popularity descending.
func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	var b strings.Builder
	b.WriteString(`SELECT ` + eventColumns + ` FROM events WHERE university_id = $1 AND start_at >= $2`)
	args := []any{f.UniversityID, f.From}

	if f.Until != nil {
		args = append(args, *f.Until)
		b.WriteString(` AND start_at <= $` + strconv.Itoa(len(args)))
	}
	if len(f.Interests) > 0 {
		args = append(args, pq.Array(f.Interests))
		b.WriteString(` AND categories && $` + strconv.Itoa(len(args)))
	}

	args = append(args, f.Limit)
	b.WriteString(` ORDER BY start_at ASC, popularity DESC LIMIT $` + strconv.Itoa(len(args)))
	args = append(args, f.Offset)
	b.WriteString(` OFFSET $` + strconv.Itoa(len(args)))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// Categories returns the sorted unique category tags across one university's
// events.
func (r *EventRepository) Categories(ctx context.Context, universityID string) ([]string, error) {
	query := `SELECT DISTINCT unnest(categories)
			  FROM events
			  WHERE university_id = $1
			  ORDER BY 1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, universityID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var c string
		if err = rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

// RefreshPopularity recomputes the popularity counter from non-cancelled
// registrations. The core register/cancel path never touches popularity; this
// is the separate ranking pass driven by the scheduler.
func (r *EventRepository) RefreshPopularity(ctx context.Context) (int64, error) {
	query := `
		UPDATE events e
		SET popularity = COALESCE(sub.cnt, 0), updated_at = NOW()
		FROM events e2
		LEFT JOIN (
			SELECT event_id, COUNT(*)::int AS cnt
			FROM user_events
			WHERE status <> 'cancelled'
			GROUP BY event_id
		) sub ON sub.event_id = e2.id
		WHERE e.id = e2.id AND e.popularity <> COALESCE(sub.cnt, 0)`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query)
	if err != nil {
		return 0, fmt.Errorf("refresh popularity: %w", err)
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("popularity rows affected: %w", err)
	}

	return updated, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var e domain.Event
	if err := row.Scan(
		&e.ID, &e.UniversityID, &e.Title, &e.Description, &e.StartAt, &e.EndAt, &e.Location,
		&e.CoordsLat, &e.CoordsLng, pq.Array(&e.Categories), &e.Image, &e.Popularity,
		pq.Array(&e.SourceIDs), &e.DedupeKey, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
