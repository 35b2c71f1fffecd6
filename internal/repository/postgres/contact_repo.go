package postgres

import (
	"context"
	"errors"
	"fmt"

	"crm-service/internal/domain/contact"
	xerrors "crm-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	db  *pgxpool.Pool
	txm *DB
}

func NewContactRepository(db *pgxpool.Pool, txm *DB) *ContactRepository {
	return &ContactRepository{db: db, txm: txm}
}

const contactColumns = `id, user_id, name, email, phone, company, title, status,
       source, notes, assigned_to, tags, created_at, updated_at`

func scanContact(row pgx.Row, c *contact.Contact) error {
	return row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Title,
		&c.Status, &c.Source, &c.Notes, &c.AssignedTo, &c.Tags,
		&c.CreatedAt, &c.UpdatedAt,
	)
}

// Create inserts a new contact. ID and timestamps are store-assigned.
func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	query := `
		INSERT INTO contacts (
			user_id, name, email, phone, company, title, status,
			source, notes, assigned_to, tags
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		c.UserID, c.Name, c.Email, c.Phone, c.Company, c.Title, c.Status,
		c.Source, c.Notes, c.AssignedTo, c.Tags,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("%w: failed to create contact: %v", xerrors.ErrStoreUnavailable, err)
	}

	return nil
}

// FindByID retrieves a contact by ID
func (r *ContactRepository) FindByID(ctx context.Context, id int64) (*contact.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	var c contact.Contact
	err := scanContact(r.db.QueryRow(ctx, query, id), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find contact: %v", xerrors.ErrStoreUnavailable, err)
	}

	return &c, nil
}

// List retrieves all contacts in insertion order.
func (r *ContactRepository) List(ctx context.Context) ([]contact.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list contacts: %v", xerrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var contacts []contact.Contact
	for rows.Next() {
		var c contact.Contact
		if err := scanContact(rows, &c); err != nil {
			return nil, fmt.Errorf("%w: failed to scan contact: %v", xerrors.ErrStoreUnavailable, err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to list contacts: %v", xerrors.ErrStoreUnavailable, err)
	}

	return contacts, nil
}

// Count returns the number of contact rows.
func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: failed to count contacts: %v", xerrors.ErrStoreUnavailable, err)
	}
	return count, nil
}

// Update replaces the mutable contact fields and refreshes updated_at.
func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	query := `
		UPDATE contacts
		SET name = $1, email = $2, phone = $3, company = $4, title = $5,
		    status = $6, source = $7, notes = $8, assigned_to = $9, tags = $10,
		    updated_at = now()
		WHERE id = $11
		RETURNING updated_at
	`

	err := r.db.QueryRow(
		ctx, query,
		c.Name, c.Email, c.Phone, c.Company, c.Title,
		c.Status, c.Source, c.Notes, c.AssignedTo, c.Tags,
		c.ID,
	).Scan(&c.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return xerrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: failed to update contact: %v", xerrors.ErrStoreUnavailable, err)
	}

	return nil
}

// DeleteCascade removes a contact together with its deals and activities in
// one transaction. The contact and everything it owns disappear together or
// not at all.
func (r *ContactRepository) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.txm.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", xerrors.ErrStoreUnavailable, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM activities WHERE contact_id = $1`, id); err != nil {
		return fmt.Errorf("%w: failed to delete contact activities: %v", xerrors.ErrStoreUnavailable, err)
	}
	// Other contacts' activities may reference this contact's deals; those
	// rows go with the deals or the deals DELETE trips the FK.
	if _, err := tx.Exec(ctx,
		`DELETE FROM activities WHERE deal_id IN (SELECT id FROM deals WHERE contact_id = $1)`, id); err != nil {
		return fmt.Errorf("%w: failed to delete deal activities: %v", xerrors.ErrStoreUnavailable, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM deals WHERE contact_id = $1`, id); err != nil {
		return fmt.Errorf("%w: failed to delete contact deals: %v", xerrors.ErrStoreUnavailable, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: failed to delete contact: %v", xerrors.ErrStoreUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: failed to commit contact delete: %v", xerrors.ErrStoreUnavailable, err)
	}

	return nil
}
