package postgres

import (
	"context"
	"errors"
	"fmt"

	"crm-service/internal/domain/deal"
	xerrors "crm-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DealRepository struct {
	db  *pgxpool.Pool
	txm *DB
}

func NewDealRepository(db *pgxpool.Pool, txm *DB) *DealRepository {
	return &DealRepository{db: db, txm: txm}
}

const dealColumns = `id, contact_id, title, value, currency, stage, probability,
       expected_close, notes, created_at, updated_at`

func scanDeal(row pgx.Row, d *deal.Deal) error {
	return row.Scan(
		&d.ID, &d.ContactID, &d.Title, &d.Value, &d.Currency, &d.Stage,
		&d.Probability, &d.ExpectedClose, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
}

// Create inserts a new deal. The contact reference is validated by the
// pipeline service before this is called; the FK is the backstop.
func (r *DealRepository) Create(ctx context.Context, d *deal.Deal) error {
	query := `
		INSERT INTO deals (
			contact_id, title, value, currency, stage, probability,
			expected_close, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		d.ContactID, d.Title, d.Value, d.Currency, d.Stage, d.Probability,
		d.ExpectedClose, d.Notes,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)

	if err != nil {
		return fmt.Errorf("%w: failed to create deal: %v", xerrors.ErrStoreUnavailable, err)
	}

	return nil
}

// FindByID retrieves a deal by ID
func (r *DealRepository) FindByID(ctx context.Context, id int64) (*deal.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`

	var d deal.Deal
	err := scanDeal(r.db.QueryRow(ctx, query, id), &d)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find deal: %v", xerrors.ErrStoreUnavailable, err)
	}

	return &d, nil
}

// List retrieves all deals in insertion order.
func (r *DealRepository) List(ctx context.Context) ([]deal.Deal, error) {
	return r.list(ctx, `SELECT `+dealColumns+` FROM deals ORDER BY id`)
}

// ListByContact retrieves the deals owned by a contact in insertion order.
func (r *DealRepository) ListByContact(ctx context.Context, contactID int64) ([]deal.Deal, error) {
	return r.list(ctx, `SELECT `+dealColumns+` FROM deals WHERE contact_id = $1 ORDER BY id`, contactID)
}

func (r *DealRepository) list(ctx context.Context, query string, args ...interface{}) ([]deal.Deal, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list deals: %v", xerrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var deals []deal.Deal
	for rows.Next() {
		var d deal.Deal
		if err := scanDeal(rows, &d); err != nil {
			return nil, fmt.Errorf("%w: failed to scan deal: %v", xerrors.ErrStoreUnavailable, err)
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to list deals: %v", xerrors.ErrStoreUnavailable, err)
	}

	return deals, nil
}

// UpdateStage sets a deal's stage unconditionally and returns the updated
// row. The stage string is persisted as-is, canonical or not.
func (r *DealRepository) UpdateStage(ctx context.Context, id int64, stage string) (*deal.Deal, error) {
	query := `
		UPDATE deals
		SET stage = $1, updated_at = now()
		WHERE id = $2
		RETURNING ` + dealColumns

	var d deal.Deal
	err := scanDeal(r.db.QueryRow(ctx, query, stage, id), &d)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update deal stage: %v", xerrors.ErrStoreUnavailable, err)
	}

	return &d, nil
}

// DeleteCascade removes a deal together with its activities in one
// transaction.
func (r *DealRepository) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.txm.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", xerrors.ErrStoreUnavailable, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM activities WHERE deal_id = $1`, id); err != nil {
		return fmt.Errorf("%w: failed to delete deal activities: %v", xerrors.ErrStoreUnavailable, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: failed to delete deal: %v", xerrors.ErrStoreUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit deal delete: %v", xerrors.ErrStoreUnavailable, err)
	}

	return nil
}
