package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"boatworks/internal/domain/entities"
	"boatworks/internal/usecase/interfaces"
)

// maxUpdateAttempts bounds the reload-and-retry loop around version-guarded
// aggregate writes.
const maxUpdateAttempts = 3

// loadProject resolves an aggregate or the usecase-level not-found sentinel.
func loadProject(ctx context.Context, repo interfaces.IProjectRepository, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

// updateProject runs mutate against a freshly loaded aggregate and writes it
// back under the repository's version guard. On a version conflict the whole
// load-mutate-write cycle is retried, so mutate must be side-effect free
// outside the aggregate it is handed. Either every change mutate made is
// persisted in one write, or nothing is.
func updateProject(
	ctx context.Context,
	repo interfaces.IProjectRepository,
	id string,
	mutate func(p *entities.Project) error,
) (entities.Project, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		p, err := loadProject(ctx, repo, id)
		if err != nil {
			return entities.Project{}, err
		}
		if err := mutate(&p); err != nil {
			return entities.Project{}, err
		}
		p.UpdatedAt = time.Now().UTC()

		updated, err := repo.Update(ctx, p)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return entities.Project{}, err
		}
		// The repository reports a vanished aggregate as zero value + nil.
		if updated.ID == "" {
			return entities.Project{}, ErrProjectNotFound
		}
		return updated, nil
	}
	return entities.Project{}, ErrConcurrentUpdate
}
