package activity

type CreateActivityRequest struct {
	ContactID int64  `json:"contact_id" binding:"required"`
	DealID    *int64 `json:"deal_id"`

	Type        string `json:"type" binding:"required,oneof=call email meeting note task"`
	Subject     string `json:"subject" binding:"required,max=200"`
	Description string `json:"description"`

	// Date is an ISO timestamp (2006-01-02T15:04 or RFC3339).
	// A value that fails to parse falls back to the current time.
	Date string `json:"date" binding:"required"`
}
