package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"boatworks/internal/domain/entities"
	"boatworks/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrQuoteAlreadyExists = errors.New("quote already exists for this project")
	ErrInvalidQuoteTotal  = errors.New("invalid quote total")
	ErrQuoteLocked        = errors.New("quote is no longer a draft and cannot be re-priced")
)

// IQuoteUseCase exposes the quote lifecycle the governance core depends on:
// a quote is drafted from the priced configuration, sent to the client and
// accepted or rejected. The boolean queries feed transition prerequisites.
type IQuoteUseCase interface {
	interfaces.IQuoteService

	CreateDraft(ctx context.Context, projectID string, totalExclVAT float64) (entities.Quote, error)
	UpdateTotalByProjectID(ctx context.Context, projectID string, totalExclVAT float64) (entities.Quote, error)
	SendByProjectID(ctx context.Context, projectID string) (entities.Quote, error)
	AcceptByProjectID(ctx context.Context, projectID string) (entities.Quote, error)
	RejectByProjectID(ctx context.Context, projectID string) (entities.Quote, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) CreateDraft(ctx context.Context, projectID string, totalExclVAT float64) (entities.Quote, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Quote{}, ErrInvalidProjectID
	}
	if totalExclVAT < 0 {
		return entities.Quote{}, ErrInvalidQuoteTotal
	}

	// Enforce: 1 active quote per project.
	if existing, err := u.repo.GetByProjectID(ctx, projectID); err != nil {
		return entities.Quote{}, err
	} else if existing.ID != "" {
		return entities.Quote{}, ErrQuoteAlreadyExists
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:           projectID,
		ProjectID:    projectID,
		TotalExclVAT: totalExclVAT,
		Status:       entities.QuoteStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, q)
}

// UpdateTotalByProjectID re-prices the draft quote after the configuration
// changed. Once the quote left draft it reflects what the client saw, so the
// total is immutable from then on.
func (u *QuoteUseCase) UpdateTotalByProjectID(ctx context.Context, projectID string, totalExclVAT float64) (entities.Quote, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Quote{}, ErrInvalidProjectID
	}
	if totalExclVAT < 0 {
		return entities.Quote{}, ErrInvalidQuoteTotal
	}

	q, err := u.repo.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusDraft {
		return entities.Quote{}, ErrQuoteLocked
	}

	updated, err := u.repo.UpdateTotalByProjectID(ctx, projectID, totalExclVAT)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) SendByProjectID(ctx context.Context, projectID string) (entities.Quote, error) {
	return u.updateStatusByProjectID(ctx, projectID, entities.QuoteStatusSent)
}

func (u *QuoteUseCase) AcceptByProjectID(ctx context.Context, projectID string) (entities.Quote, error) {
	return u.updateStatusByProjectID(ctx, projectID, entities.QuoteStatusAccepted)
}

func (u *QuoteUseCase) RejectByProjectID(ctx context.Context, projectID string) (entities.Quote, error) {
	return u.updateStatusByProjectID(ctx, projectID, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) updateStatusByProjectID(ctx context.Context, projectID string, status entities.QuoteStatus) (entities.Quote, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Quote{}, ErrInvalidProjectID
	}

	updated, err := u.repo.UpdateStatusByProjectID(ctx, projectID, status)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

func (u *QuoteUseCase) GetByProjectID(ctx context.Context, projectID string) (entities.Quote, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Quote{}, ErrInvalidProjectID
	}

	q, err := u.repo.GetByProjectID(ctx, projectID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) HasDraftQuote(ctx context.Context, projectID string) (bool, error) {
	q, err := u.repo.GetByProjectID(ctx, strings.TrimSpace(projectID))
	if err != nil {
		return false, err
	}
	return q.ID != "" && q.Status != entities.QuoteStatusRejected, nil
}

func (u *QuoteUseCase) HasSentQuote(ctx context.Context, projectID string) (bool, error) {
	q, err := u.repo.GetByProjectID(ctx, strings.TrimSpace(projectID))
	if err != nil {
		return false, err
	}
	return q.Status == entities.QuoteStatusSent || q.Status == entities.QuoteStatusAccepted, nil
}

func (u *QuoteUseCase) HasAcceptedQuote(ctx context.Context, projectID string) (bool, error) {
	q, err := u.repo.GetByProjectID(ctx, strings.TrimSpace(projectID))
	if err != nil {
		return false, err
	}
	return q.Status == entities.QuoteStatusAccepted, nil
}
