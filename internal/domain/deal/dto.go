package deal

type CreateDealRequest struct {
	Title     string  `json:"title" binding:"required,max=200"`
	Value     float64 `json:"value"`
	ContactID int64   `json:"contact_id" binding:"required"`

	// Stage defaults to "qualified" when empty.
	Stage       string `json:"stage"`
	Probability int    `json:"probability"`

	// ExpectedClose is an ISO date (2006-01-02). A value that fails to
	// parse is treated as absent, not rejected.
	ExpectedClose string `json:"expected_close"`
	Notes         string `json:"notes"`
}

type MoveDealRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// Board maps each canonical stage to the ordered deals currently in it.
type Board struct {
	Stages       []string          `json:"stages"`
	DealsByStage map[string][]Deal `json:"deals_by_stage"`
}
