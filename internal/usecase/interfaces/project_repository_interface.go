package interfaces

import (
	"context"
	"errors"

	"boatworks/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the stored aggregate version
// no longer matches the version the caller read. Use cases reload and retry.
var ErrVersionConflict = errors.New("project version conflict")

// IProjectRepository abstracts persistence for the Project aggregate.
//
// The aggregate is read and written as one unit; Update performs a
// compare-and-swap on the Version field so concurrent writers cannot silently
// overwrite each other. Not-found is reported as a zero-value Project with a
// nil error, not as an error.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	// Update writes the whole aggregate, expecting the stored version to equal
	// p.Version. On success the returned aggregate carries the incremented
	// version. Returns ErrVersionConflict when the check fails.
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
}
