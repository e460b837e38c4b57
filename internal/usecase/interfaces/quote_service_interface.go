package interfaces

import "context"

// IQuoteService is the read side the lifecycle orchestrator needs from the
// quoting subsystem: boolean prerequisite flags per project.
type IQuoteService interface {
	HasDraftQuote(ctx context.Context, projectID string) (bool, error)
	HasSentQuote(ctx context.Context, projectID string) (bool, error)
	HasAcceptedQuote(ctx context.Context, projectID string) (bool, error)
}
