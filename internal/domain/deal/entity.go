package deal

import (
	"database/sql"
	"time"
)

// Canonical pipeline stages. The store accepts arbitrary stage strings;
// these five are the ones the board and the dashboard know about.
const (
	StageQualified   = "qualified"
	StageProposal    = "proposal"
	StageNegotiation = "negotiation"
	StageClosedWon   = "closed_won"
	StageClosedLost  = "closed_lost"
)

// Stages returns the canonical stages in board order.
func Stages() []string {
	return []string{StageQualified, StageProposal, StageNegotiation, StageClosedWon, StageClosedLost}
}

// IsCanonical reports whether stage is one of the five known stages.
func IsCanonical(stage string) bool {
	switch stage {
	case StageQualified, StageProposal, StageNegotiation, StageClosedWon, StageClosedLost:
		return true
	}
	return false
}

// IsClosed reports whether stage counts as a closed deal. Closed stages are
// not terminal: a deal may be moved back into an active stage.
func IsClosed(stage string) bool {
	return stage == StageClosedWon || stage == StageClosedLost
}

type Deal struct {
	ID        int64 `json:"id" db:"id"`
	ContactID int64 `json:"contact_id" db:"contact_id"`

	Title       string  `json:"title" db:"title"`
	Value       float64 `json:"value" db:"value"`
	Currency    string  `json:"currency" db:"currency"`
	Stage       string  `json:"stage" db:"stage"`
	Probability int     `json:"probability" db:"probability"`

	ExpectedClose sql.NullTime   `json:"expected_close,omitempty" db:"expected_close"`
	Notes         sql.NullString `json:"notes,omitempty" db:"notes"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
