package request

import "strings"

// QuoteRequest creates a draft quote for a project, or targets an existing
// quote in the status-change endpoints.
type QuoteRequest struct {
	ProjectID    string  `json:"project_id" binding:"required"`
	TotalExclVAT float64 `json:"total_excl_vat"`
}

func (r QuoteRequest) ResolveProjectID() string {
	return strings.TrimSpace(r.ProjectID)
}
