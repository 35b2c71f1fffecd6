package postgres

import (
	"context"
	"errors"
	"fmt"

	"crm-service/internal/domain/activity"
	xerrors "crm-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepository struct {
	db *pgxpool.Pool
}

func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activityColumns = `id, contact_id, deal_id, type, subject, description,
       date, completed, created_at`

func scanActivity(row pgx.Row, a *activity.Activity) error {
	return row.Scan(
		&a.ID, &a.ContactID, &a.DealID, &a.Type, &a.Subject, &a.Description,
		&a.Date, &a.Completed, &a.CreatedAt,
	)
}

// Create inserts a new activity.
func (r *ActivityRepository) Create(ctx context.Context, a *activity.Activity) error {
	query := `
		INSERT INTO activities (contact_id, deal_id, type, subject, description, date, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		a.ContactID, a.DealID, a.Type, a.Subject, a.Description, a.Date, a.Completed,
	).Scan(&a.ID, &a.CreatedAt)

	if err != nil {
		return fmt.Errorf("%w: failed to create activity: %v", xerrors.ErrStoreUnavailable, err)
	}

	return nil
}

// List retrieves all activities, most recently created first.
func (r *ActivityRepository) List(ctx context.Context) ([]activity.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities ORDER BY created_at DESC, id`)
}

// ListByContact retrieves a contact's activities in insertion order.
func (r *ActivityRepository) ListByContact(ctx context.Context, contactID int64) ([]activity.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities WHERE contact_id = $1 ORDER BY id`, contactID)
}

// ListRecent retrieves the limit most recently created activities. Ties on
// created_at fall back to insertion order.
func (r *ActivityRepository) ListRecent(ctx context.Context, limit int) ([]activity.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities ORDER BY created_at DESC, id LIMIT $1`, limit)
}

// ListUpcoming retrieves the limit incomplete activities with the earliest
// dates first, regardless of type.
func (r *ActivityRepository) ListUpcoming(ctx context.Context, limit int) ([]activity.Activity, error) {
	return r.list(ctx, `SELECT `+activityColumns+` FROM activities WHERE completed = FALSE ORDER BY date, id LIMIT $1`, limit)
}

func (r *ActivityRepository) list(ctx context.Context, query string, args ...interface{}) ([]activity.Activity, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list activities: %v", xerrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var activities []activity.Activity
	for rows.Next() {
		var a activity.Activity
		if err := scanActivity(rows, &a); err != nil {
			return nil, fmt.Errorf("%w: failed to scan activity: %v", xerrors.ErrStoreUnavailable, err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to list activities: %v", xerrors.ErrStoreUnavailable, err)
	}

	return activities, nil
}

// MarkCompleted flags an activity as done and returns the updated row.
func (r *ActivityRepository) MarkCompleted(ctx context.Context, id int64) (*activity.Activity, error) {
	query := `
		UPDATE activities
		SET completed = TRUE
		WHERE id = $1
		RETURNING ` + activityColumns

	var a activity.Activity
	err := scanActivity(r.db.QueryRow(ctx, query, id), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to complete activity: %v", xerrors.ErrStoreUnavailable, err)
	}

	return &a, nil
}
