package interfaces

import (
	"context"

	"boatworks/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote.
//
// One active quote per project; the repository resolves quotes by project id.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Quote, error)
	UpdateStatusByProjectID(ctx context.Context, projectID string, status entities.QuoteStatus) (entities.Quote, error)
	UpdateTotalByProjectID(ctx context.Context, projectID string, totalExclVAT float64) (entities.Quote, error)
}
