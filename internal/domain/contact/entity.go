package contact

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// Contact statuses mirror the pipeline stages but describe the person,
// not an individual deal.
const (
	StatusLead        = "lead"
	StatusContacted   = "contacted"
	StatusProposal    = "proposal"
	StatusNegotiation = "negotiation"
	StatusClosedWon   = "closed_won"
	StatusClosedLost  = "closed_lost"
)

type Contact struct {
	ID     int64  `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`

	Name    string         `json:"name" db:"name"`
	Email   string         `json:"email" db:"email"`
	Phone   sql.NullString `json:"phone,omitempty" db:"phone"`
	Company sql.NullString `json:"company,omitempty" db:"company"`
	Title   sql.NullString `json:"title,omitempty" db:"title"`

	Status     string         `json:"status" db:"status"`
	Source     sql.NullString `json:"source,omitempty" db:"source"`
	Notes      sql.NullString `json:"notes,omitempty" db:"notes"`
	AssignedTo sql.NullString `json:"assigned_to,omitempty" db:"assigned_to"`
	Tags       pq.StringArray `json:"tags,omitempty" db:"tags"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
