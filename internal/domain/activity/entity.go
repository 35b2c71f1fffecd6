package activity

import (
	"database/sql"
	"time"
)

// Activity types
const (
	TypeCall    = "call"
	TypeEmail   = "email"
	TypeMeeting = "meeting"
	TypeNote    = "note"
	TypeTask    = "task"
)

type Activity struct {
	ID        int64         `json:"id" db:"id"`
	ContactID int64         `json:"contact_id" db:"contact_id"`
	DealID    sql.NullInt64 `json:"deal_id,omitempty" db:"deal_id"`

	Type        string         `json:"type" db:"type"`
	Subject     string         `json:"subject" db:"subject"`
	Description sql.NullString `json:"description,omitempty" db:"description"`

	// Date is when the interaction happened or is due. It may be in the
	// future (tasks) or the past (logged calls).
	Date      time.Time `json:"date" db:"date"`
	Completed bool      `json:"completed" db:"completed"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
