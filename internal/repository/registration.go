package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Upsert relies on the unique (user_id, event_id) constraint: concurrent
// registers for the same pair serialize to a single row, last writer wins on
// status and custom fields.
func (r *RegistrationRepository) Upsert(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	query := `INSERT INTO user_events (id, user_id, event_id, status, custom_fields, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $6)
			  ON CONFLICT (user_id, event_id) DO UPDATE
			  SET status = EXCLUDED.status,
			      custom_fields = EXCLUDED.custom_fields,
			      updated_at = NOW()
			  RETURNING id, user_id, event_id, status, custom_fields, created_at, updated_at`

	fields, err := marshalCustomFields(reg.CustomFields)
	if err != nil {
		return nil, err
	}

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		reg.ID, reg.UserID, reg.EventID, reg.Status, fields, time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("upsert registration: %w", err)
	}

	return scanRegistration(row)
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `INSERT INTO user_events (id, user_id, event_id, status, custom_fields, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $6)`

	fields, err := marshalCustomFields(reg.CustomFields)
	if err != nil {
		return err
	}

	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		reg.ID, reg.UserID, reg.EventID, reg.Status, fields, time.Now().UTC(),
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return nil
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, userID, eventID string, status domain.RegistrationStatus) (*domain.Registration, error) {
	query := `UPDATE user_events
			  SET status = $3, updated_at = NOW()
			  WHERE user_id = $1 AND event_id = $2
			  RETURNING id, user_id, event_id, status, custom_fields, created_at, updated_at`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, eventID, status)
	if err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}

	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}

	return reg, nil
}

// StatusMap returns eventID -> status for only the events that have a record.
func (r *RegistrationRepository) StatusMap(ctx context.Context, userID string, eventIDs []string) (map[string]domain.RegistrationStatus, error) {
	query := `SELECT event_id, status
			  FROM user_events
			  WHERE user_id = $1 AND event_id = ANY($2)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID, pq.Array(eventIDs))
	if err != nil {
		return nil, fmt.Errorf("registration status map: %w", err)
	}
	defer rows.Close()

	res := make(map[string]domain.RegistrationStatus)
	for rows.Next() {
		var eventID string
		var status domain.RegistrationStatus
		if err = rows.Scan(&eventID, &status); err != nil {
			return nil, fmt.Errorf("scan registration status: %w", err)
		}
		res[eventID] = status
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string, status *domain.RegistrationStatus) ([]*domain.RegistrationWithEvent, error) {
	var b = `SELECT ue.id, ue.user_id, ue.event_id, ue.status, ue.custom_fields, ue.created_at, ue.updated_at,
				e.id, e.university_id, e.title, e.description, e.start_at, e.end_at, e.location,
				e.coords_lat, e.coords_lng, e.categories, e.image, e.popularity, e.source_ids, e.dedupe_key,
				e.created_at, e.updated_at
			  FROM user_events ue
			  JOIN events e ON e.id = ue.event_id
			  WHERE ue.user_id = $1`
	args := []any{userID}
	if status != nil {
		b += ` AND ue.status = $2`
		args = append(args, *status)
	}
	b += ` ORDER BY ue.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, b, args...)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.RegistrationWithEvent
	for rows.Next() {
		var rw domain.RegistrationWithEvent
		var fields []byte
		if err = rows.Scan(
			&rw.ID, &rw.UserID, &rw.EventID, &rw.Status, &fields, &rw.CreatedAt, &rw.UpdatedAt,
			&rw.Event.ID, &rw.Event.UniversityID, &rw.Event.Title, &rw.Event.Description,
			&rw.Event.StartAt, &rw.Event.EndAt, &rw.Event.Location,
			&rw.Event.CoordsLat, &rw.Event.CoordsLng, pq.Array(&rw.Event.Categories),
			&rw.Event.Image, &rw.Event.Popularity, pq.Array(&rw.Event.SourceIDs),
			&rw.Event.DedupeKey, &rw.Event.CreatedAt, &rw.Event.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan registration with event: %w", err)
		}
		if rw.CustomFields, err = unmarshalCustomFields(fields); err != nil {
			return nil, err
		}
		res = append(res, &rw)
	}

	return res, rows.Err()
}

// DueReminders lists "going" registrations for events starting inside the
// window whose user linked a telegram chat and was not reminded yet.
func (r *RegistrationRepository) DueReminders(ctx context.Context, window time.Duration) ([]*domain.Reminder, error) {
	query := `SELECT ue.id,
				u.id, u.email, u.university_id, u.is_active, u.telegram_chat_id,
				e.id, e.university_id, e.title, e.start_at, e.location
			  FROM user_events ue
			  JOIN users u ON u.id = ue.user_id
			  JOIN events e ON e.id = ue.event_id
			  WHERE ue.status = 'going'
			    AND ue.reminded_at IS NULL
			    AND u.telegram_chat_id IS NOT NULL
			    AND u.is_active
			    AND e.start_at BETWEEN NOW() AND NOW() + make_interval(secs => $1)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, window.Seconds())
	if err != nil {
		return nil, fmt.Errorf("due reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reminder
	for rows.Next() {
		var rem domain.Reminder
		if err = rows.Scan(
			&rem.RegistrationID,
			&rem.User.ID, &rem.User.Email, &rem.User.UniversityID, &rem.User.IsActive, &rem.User.TelegramChatID,
			&rem.Event.ID, &rem.Event.UniversityID, &rem.Event.Title, &rem.Event.StartAt, &rem.Event.Location,
		); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		res = append(res, &rem)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) MarkReminded(ctx context.Context, registrationID string) error {
	query := `UPDATE user_events SET reminded_at = NOW() WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, registrationID); err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}
	return nil
}

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	var reg domain.Registration
	var fields []byte
	if err := row.Scan(
		&reg.ID, &reg.UserID, &reg.EventID, &reg.Status, &fields, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		return nil, err
	}

	var err error
	if reg.CustomFields, err = unmarshalCustomFields(fields); err != nil {
		return nil, err
	}

	return &reg, nil
}

func marshalCustomFields(fields map[string]any) (any, error) {
	if fields == nil {
		return nil, nil
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal custom fields: %w", err)
	}
	return raw, nil
}

func unmarshalCustomFields(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("unmarshal custom fields: %w", err)
	}
	return fields, nil
}
