package postgres

import (
	"context"
	"errors"
	"fmt"

	"crm-service/internal/domain/intel"
	xerrors "crm-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IntelRepository struct {
	db *pgxpool.Pool
}

func NewIntelRepository(db *pgxpool.Pool) *IntelRepository {
	return &IntelRepository{db: db}
}

const intelColumns = `id, company_name, analysis_type, content, model_used, generated_at, requested_by`

// Create inserts a generated analysis.
func (r *IntelRepository) Create(ctx context.Context, rec *intel.CompanyIntel) error {
	query := `
		INSERT INTO company_intel (company_name, analysis_type, content, model_used, requested_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, generated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		rec.CompanyName, rec.AnalysisType, rec.Content, rec.ModelUsed, rec.RequestedBy,
	).Scan(&rec.ID, &rec.GeneratedAt)

	if err != nil {
		return fmt.Errorf("%w: failed to create company intel: %v", xerrors.ErrStoreUnavailable, err)
	}

	return nil
}

// FindByID retrieves an analysis by ID
func (r *IntelRepository) FindByID(ctx context.Context, id int64) (*intel.CompanyIntel, error) {
	query := `SELECT ` + intelColumns + ` FROM company_intel WHERE id = $1`

	var rec intel.CompanyIntel
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.CompanyName, &rec.AnalysisType, &rec.Content,
		&rec.ModelUsed, &rec.GeneratedAt, &rec.RequestedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find company intel: %v", xerrors.ErrStoreUnavailable, err)
	}

	return &rec, nil
}

// List retrieves all analyses, most recently generated first.
func (r *IntelRepository) List(ctx context.Context) ([]intel.CompanyIntel, error) {
	query := `SELECT ` + intelColumns + ` FROM company_intel ORDER BY generated_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list company intel: %v", xerrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var records []intel.CompanyIntel
	for rows.Next() {
		var rec intel.CompanyIntel
		if err := rows.Scan(
			&rec.ID, &rec.CompanyName, &rec.AnalysisType, &rec.Content,
			&rec.ModelUsed, &rec.GeneratedAt, &rec.RequestedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan company intel: %v", xerrors.ErrStoreUnavailable, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to list company intel: %v", xerrors.ErrStoreUnavailable, err)
	}

	return records, nil
}
