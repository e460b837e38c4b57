package response

import (
	"time"

	"boatworks/internal/domain/entities"
	"boatworks/internal/usecase"
)

// ProjectResponse is the full aggregate view returned by project endpoints.
type ProjectResponse struct {
	ID               string                        `json:"id"`
	Name             string                        `json:"name"`
	ClientID         string                        `json:"client_id,omitempty"`
	Status           string                        `json:"status"`
	Configuration    entities.ConfigurationState   `json:"configuration"`
	SnapshotCount    int                           `json:"snapshot_count"`
	AmendmentCount   int                           `json:"amendment_count"`
	BOMSnapshotCount int                           `json:"bom_snapshot_count"`
	LibraryPins      *entities.LibraryPins         `json:"library_pins,omitempty"`
	ProductionStages []entities.ProductionStage    `json:"production_stages,omitempty"`
	Archived         bool                          `json:"archived"`
	Version          int64                         `json:"version"`
	CreatedAt        time.Time                     `json:"created_at"`
	UpdatedAt        time.Time                     `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:               p.ID,
		Name:             p.Name,
		ClientID:         p.ClientID,
		Status:           string(p.Status),
		Configuration:    p.Configuration,
		SnapshotCount:    len(p.ConfigurationSnapshots),
		AmendmentCount:   len(p.Amendments),
		BOMSnapshotCount: len(p.BOMSnapshots),
		LibraryPins:      p.LibraryPins,
		ProductionStages: p.ProductionStages,
		Archived:         p.Archived,
		Version:          p.Version,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// TransitionResponse reports a completed status transition plus the
// non-blocking outcomes (warnings, confirmation flag) for the caller's UI.
type TransitionResponse struct {
	Project              ProjectResponse `json:"project"`
	OldStatus            string          `json:"old_status"`
	NewStatus            string          `json:"new_status"`
	Warnings             []string        `json:"warnings,omitempty"`
	RequiresConfirmation bool            `json:"requires_confirmation"`
}

func FromTransitionResult(res usecase.TransitionResult) TransitionResponse {
	return TransitionResponse{
		Project:              FromProject(res.Project),
		OldStatus:            string(res.OldStatus),
		NewStatus:            string(res.NewStatus),
		Warnings:             res.Warnings,
		RequiresConfirmation: res.RequiresConfirmation,
	}
}
