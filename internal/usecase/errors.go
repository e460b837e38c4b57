package usecase

import (
	"errors"
	"strings"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectID     = errors.New("invalid project id")
	ErrItemNotFound         = errors.New("configuration item not found")
	ErrConfigFrozen         = errors.New("configuration is frozen; changes require an amendment")
	ErrStatusNotEditable    = errors.New("project status does not allow configuration edits")
	ErrAlreadyFrozen        = errors.New("configuration is already frozen")
	ErrNotFrozen            = errors.New("configuration is not frozen; edit it directly instead")
	ErrProjectLocked        = errors.New("project is locked; no further changes are possible")
	ErrBoatModelPinned      = errors.New("boat model version is pinned at project creation; request an amendment")
	ErrUnauthorizedApprover = errors.New("user is not authorized to approve amendments")
	ErrReasonRequired       = errors.New("a reason is required")
	ErrEmptyAmendment       = errors.New("amendment contains no changes")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrArchiveNotAllowed    = errors.New("project can only be archived from draft or closed")
	ErrProjectArchived      = errors.New("project is archived")
	ErrConcurrentUpdate     = errors.New("project was modified concurrently; retry the operation")
)

// ValidationError carries field-level input failures as a list so callers can
// render them individually; Error joins them for single-line display.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}
