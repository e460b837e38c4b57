package entities

import "time"

// QuoteStatus represents the lifecycle of a commercial quote.
//
// Domain notes:
//   - The project lifecycle reads quote state as transition prerequisites
//     (draft quote exists, quote sent, quote accepted).
//   - Quote content/rendering lives outside this service; only the state and
//     the priced total are tracked here.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Quote is the commercial quote persisted per project.
//
// Storage model (DynamoDB):
//   - PK: id (equals project id; one active quote per project)
type Quote struct {
	ID           string      `json:"id"`
	ProjectID    string      `json:"project_id"`
	TotalExclVAT float64     `json:"total_excl_vat"`
	Status       QuoteStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
