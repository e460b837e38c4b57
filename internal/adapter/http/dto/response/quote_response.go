package response

import (
	"time"

	"boatworks/internal/domain/entities"
)

type QuoteResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	TotalExclVAT float64   `json:"total_excl_vat"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		ProjectID:    q.ProjectID,
		TotalExclVAT: q.TotalExclVAT,
		Status:       string(q.Status),
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}
