package intel

import (
	"database/sql"
	"time"
)

// Analysis types
const (
	AnalysisSWOT       = "swot"
	AnalysisCompetitor = "competitor"
	AnalysisMarket     = "market"
)

// CompanyIntel is a generated company analysis. It is keyed only by the
// free-text company name and has no link to contacts or deals.
type CompanyIntel struct {
	ID           int64          `json:"id" db:"id"`
	CompanyName  string         `json:"company_name" db:"company_name"`
	AnalysisType string         `json:"analysis_type" db:"analysis_type"`
	Content      string         `json:"content" db:"content"`
	ModelUsed    sql.NullString `json:"model_used,omitempty" db:"model_used"`
	GeneratedAt  time.Time      `json:"generated_at" db:"generated_at"`
	RequestedBy  sql.NullString `json:"requested_by,omitempty" db:"requested_by"`
}
