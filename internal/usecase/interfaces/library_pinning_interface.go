package interfaces

import (
	"context"

	"boatworks/internal/domain/entities"
)

// ILibraryPinningService captures the ids of the currently approved
// template/procedure/boat-model catalog versions. The orchestrator writes the
// result onto the aggregate exactly once per project (first pin wins).
type ILibraryPinningService interface {
	PinLibraryVersions(ctx context.Context, p entities.Project) (entities.LibraryPins, error)
}
