package request

import (
	"strings"

	"boatworks/internal/domain/entities"
	"boatworks/internal/usecase"
)

// CreateProjectRequest seeds a new project. The boat model version supplied
// here becomes the immutable pin for the project's lifetime.
type CreateProjectRequest struct {
	Name               string   `json:"name" binding:"required"`
	ClientID           string   `json:"client_id"`
	BoatModelID        string   `json:"boat_model_id"`
	BoatModelVersionID string   `json:"boat_model_version_id" binding:"required"`
	VATRatePercent     *float64 `json:"vat_rate_percent"`
	CreatedBy          string   `json:"created_by"`
}

func (r CreateProjectRequest) ToInput() usecase.CreateProjectInput {
	return usecase.CreateProjectInput{
		Name:               r.Name,
		ClientID:           r.ClientID,
		BoatModelID:        r.BoatModelID,
		BoatModelVersionID: r.BoatModelVersionID,
		VATRatePercent:     r.VATRatePercent,
		CreatedBy:          r.CreatedBy,
	}
}

// TransitionRequest asks the orchestrator to move a project to a new status.
type TransitionRequest struct {
	NewStatus string `json:"new_status" binding:"required"`
	Force     bool   `json:"force"`
	Reason    string `json:"reason"`
	Actor     string `json:"actor"`
}

func (r TransitionRequest) ResolveStatus() entities.ProjectStatus {
	return entities.ProjectStatus(strings.TrimSpace(strings.ToLower(r.NewStatus)))
}

// UnlockRequest is the emergency-unlock payload. The reason is mandatory
// because the operation breaks the tamper-evidence guarantee.
type UnlockRequest struct {
	Actor  string `json:"actor"`
	Reason string `json:"reason" binding:"required"`
}

type ArchiveRequest struct {
	Actor string `json:"actor"`
}
