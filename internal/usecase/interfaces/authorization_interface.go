package interfaces

import "context"

// IAuthorizationService answers permission checks the governance core needs.
// Full authentication/authorization lives outside this service.
type IAuthorizationService interface {
	CanApproveAmendment(ctx context.Context, userID string) bool
}
