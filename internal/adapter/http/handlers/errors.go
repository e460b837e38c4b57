package handlers

import (
	"errors"
	"net/http"

	"boatworks/internal/usecase"
	"boatworks/pkg"
)

// mapDomainError translates use case sentinels into the HTTP error shape.
// Lifecycle-guard violations are conflicts: the request was well-formed but
// the project state forbids it.
func mapDomainError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	if errors.As(err, &ve) {
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", ve.Error(), http.StatusBadRequest)
	}

	switch {
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidQuoteTotal),
		errors.Is(err, usecase.ErrReasonRequired),
		errors.Is(err, usecase.ErrEmptyAmendment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnauthorizedApprover):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED_APPROVER", err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrConfigFrozen),
		errors.Is(err, usecase.ErrStatusNotEditable),
		errors.Is(err, usecase.ErrAlreadyFrozen),
		errors.Is(err, usecase.ErrNotFrozen),
		errors.Is(err, usecase.ErrProjectLocked),
		errors.Is(err, usecase.ErrBoatModelPinned),
		errors.Is(err, usecase.ErrArchiveNotAllowed),
		errors.Is(err, usecase.ErrProjectArchived),
		errors.Is(err, usecase.ErrQuoteAlreadyExists),
		errors.Is(err, usecase.ErrQuoteLocked):
		return pkg.NewDomainErrorSimple("LIFECYCLE_CONFLICT", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
