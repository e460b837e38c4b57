package interfaces

import (
	"context"

	"boatworks/internal/domain/entities"
)

// IBOMGenerator expands the latest configuration snapshot of a project into a
// cost snapshot. Pure with respect to the aggregate: the caller appends the
// returned snapshot and persists it. Callable multiple times; each call
// yields an independent, sequentially numbered snapshot.
type IBOMGenerator interface {
	GenerateBOM(ctx context.Context, p entities.Project, trigger entities.SnapshotTrigger) (entities.BOMSnapshot, error)
}
