package authz

import (
	"context"
	"os"
	"strings"

	"boatworks/internal/usecase/interfaces"
)

// EnvAuthorizer answers amendment-approval checks from an env-configured
// allow list. Real identity management lives outside this service.
//
// Supported env vars (local-friendly):
//   - AMENDMENT_APPROVERS: comma-separated user ids; empty means any
//     non-empty user may approve (local/dev mode)
type EnvAuthorizer struct {
	approvers map[string]struct{}
}

var _ interfaces.IAuthorizationService = (*EnvAuthorizer)(nil)

func NewEnvAuthorizer() *EnvAuthorizer {
	a := &EnvAuthorizer{approvers: map[string]struct{}{}}
	for _, id := range strings.Split(os.Getenv("AMENDMENT_APPROVERS"), ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			a.approvers[id] = struct{}{}
		}
	}
	return a
}

func (a *EnvAuthorizer) CanApproveAmendment(ctx context.Context, userID string) bool {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return false
	}
	if len(a.approvers) == 0 {
		return true
	}
	_, ok := a.approvers[userID]
	return ok
}
