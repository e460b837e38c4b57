package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"boatworks/internal/domain/entities"
	"boatworks/internal/domain/lifecycle"
	"boatworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const defaultVATRatePercent = 21.0

// CreateProjectInput seeds a new project. The boat model version becomes the
// immutable pin the configuration is validated against from then on.
type CreateProjectInput struct {
	Name               string
	ClientID           string
	BoatModelID        string
	BoatModelVersionID string
	VATRatePercent     *float64
	CreatedBy          string
}

// TransitionOptions tune a status transition. Force skips prerequisite
// errors (administrative override); it never skips milestone effects.
type TransitionOptions struct {
	Force  bool
	Reason string
	Actor  string
}

// TransitionResult reports a completed transition plus the non-blocking
// outcomes the caller should surface.
type TransitionResult struct {
	Project              entities.Project
	OldStatus            entities.ProjectStatus
	NewStatus            entities.ProjectStatus
	Warnings             []string
	RequiresConfirmation bool
}

// IProjectUseCase drives the project lifecycle: creation, status transitions
// with their milestone effects, and the administrative escapes.
type IProjectUseCase interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	ValidateTransition(ctx context.Context, id string, to entities.ProjectStatus) (lifecycle.ValidationResult, error)
	TransitionStatus(ctx context.Context, id string, to entities.ProjectStatus, opts TransitionOptions) (TransitionResult, error)
	RegenerateBOM(ctx context.Context, id, actor string) (entities.Project, error)
	Archive(ctx context.Context, id, actor string) (entities.Project, error)
	EmergencyUnlock(ctx context.Context, id, actor, reason string) (entities.Project, error)
}

type ProjectUseCase struct {
	repo    interfaces.IProjectRepository
	quotes  interfaces.IQuoteService
	bom     interfaces.IBOMGenerator
	library interfaces.ILibraryPinningService
	audit   interfaces.IAuditLogger
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(
	repo interfaces.IProjectRepository,
	quotes interfaces.IQuoteService,
	bom interfaces.IBOMGenerator,
	library interfaces.ILibraryPinningService,
	audit interfaces.IAuditLogger,
) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, quotes: quotes, bom: bom, library: library, audit: audit}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, input CreateProjectInput) (entities.Project, error) {
	var fields []string
	if strings.TrimSpace(input.Name) == "" {
		fields = append(fields, "name is required")
	}
	if strings.TrimSpace(input.BoatModelVersionID) == "" {
		fields = append(fields, "boat model version is required")
	}
	if input.VATRatePercent != nil && *input.VATRatePercent < 0 {
		fields = append(fields, "vat rate cannot be negative")
	}
	if len(fields) > 0 {
		return entities.Project{}, &ValidationError{Fields: fields}
	}

	vatRate := defaultVATRatePercent
	if input.VATRatePercent != nil {
		vatRate = *input.VATRatePercent
	}

	now := time.Now().UTC()
	p := entities.Project{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(input.Name),
		ClientID: strings.TrimSpace(input.ClientID),
		Status:   entities.ProjectStatusDraft,
		Configuration: entities.ConfigurationState{
			BoatModelID:        strings.TrimSpace(input.BoatModelID),
			BoatModelVersionID: strings.TrimSpace(input.BoatModelVersionID),
			VATRatePercent:     vatRate,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Configuration.Recalculate()

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	log.Printf("[project][usecase] created project_id=%s boat_model_version=%s", created.ID, created.Configuration.BoatModelVersionID)
	return created, nil
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	return loadProject(ctx, u.repo, id)
}

// gatherContext collects the prerequisite flags the state machine validates
// against. The machine itself stays pure; this is the only place that knows
// where the flags come from.
func (u *ProjectUseCase) gatherContext(ctx context.Context, p *entities.Project) (lifecycle.Context, error) {
	hasDraft, err := u.quotes.HasDraftQuote(ctx, p.ID)
	if err != nil {
		return lifecycle.Context{}, err
	}
	hasSent, err := u.quotes.HasSentQuote(ctx, p.ID)
	if err != nil {
		return lifecycle.Context{}, err
	}
	hasAccepted, err := u.quotes.HasAcceptedQuote(ctx, p.ID)
	if err != nil {
		return lifecycle.Context{}, err
	}
	return lifecycle.Context{
		HasDraftQuote:    hasDraft,
		HasSentQuote:     hasSent,
		HasAcceptedQuote: hasAccepted,
		// Delivery checklist tracking lives with production; not wired yet.
		DeliveryChecklistComplete: false,
		ItemCount:                 len(p.Configuration.Items),
	}, nil
}

func (u *ProjectUseCase) ValidateTransition(ctx context.Context, id string, to entities.ProjectStatus) (lifecycle.ValidationResult, error) {
	p, err := loadProject(ctx, u.repo, id)
	if err != nil {
		return lifecycle.ValidationResult{}, err
	}
	tctx, err := u.gatherContext(ctx, &p)
	if err != nil {
		return lifecycle.ValidationResult{}, err
	}
	return lifecycle.ValidateTransition(p.Status, to, tctx), nil
}

// TransitionStatus validates and executes a status transition.
//
// Milestone effects are two-phase: every effect is applied to the in-memory
// aggregate first and the new status is committed together with all effect
// results in a single version-guarded write. A failing effect therefore
// aborts the whole transition with nothing persisted.
func (u *ProjectUseCase) TransitionStatus(ctx context.Context, id string, to entities.ProjectStatus, opts TransitionOptions) (TransitionResult, error) {
	if !lifecycle.IsKnown(to) {
		return TransitionResult{}, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, to)
	}

	var result TransitionResult
	updated, err := updateProject(ctx, u.repo, id, func(p *entities.Project) error {
		if p.Archived {
			return ErrProjectArchived
		}
		tctx, err := u.gatherContext(ctx, p)
		if err != nil {
			return err
		}

		res := lifecycle.ValidateTransition(p.Status, to, tctx)
		result.Warnings = res.Warnings
		result.RequiresConfirmation = res.RequiresConfirmation
		if !res.IsValid && !opts.Force {
			return fmt.Errorf("%w: %s", ErrInvalidTransition, strings.Join(res.Errors, "; "))
		}

		result.OldStatus = p.Status
		for _, eff := range lifecycle.MilestoneEffects(to) {
			if err := u.applyMilestoneEffect(ctx, p, eff, opts); err != nil {
				return fmt.Errorf("milestone effect %s failed: %w", eff.Type, err)
			}
		}
		p.Status = to
		result.NewStatus = to
		return nil
	})
	if err != nil {
		return TransitionResult{}, err
	}
	result.Project = updated

	log.Printf("[project][usecase] transition project_id=%s from=%s to=%s forced=%t", updated.ID, result.OldStatus, result.NewStatus, opts.Force)
	if u.audit != nil {
		u.audit.Log(interfaces.AuditEvent{
			Actor:       opts.Actor,
			Action:      "project.status_transition",
			EntityType:  "project",
			EntityID:    updated.ID,
			Description: transitionDescription(result.OldStatus, result.NewStatus, opts),
			Severity:    interfaces.AuditSeverityNormal,
			Before:      string(result.OldStatus),
			After:       string(result.NewStatus),
		})
	}
	return result, nil
}

func transitionDescription(from, to entities.ProjectStatus, opts TransitionOptions) string {
	desc := fmt.Sprintf("status changed from %s to %s", from, to)
	if opts.Force {
		desc += " (forced)"
	}
	if opts.Reason != "" {
		desc += ": " + opts.Reason
	}
	return desc
}

func (u *ProjectUseCase) applyMilestoneEffect(ctx context.Context, p *entities.Project, eff lifecycle.MilestoneEffect, opts TransitionOptions) error {
	switch eff.Type {
	case lifecycle.EffectLockQuote:
		// Quote immutability is enforced by the quote's own state.
		return nil
	case lifecycle.EffectFreezeConfiguration:
		_, err := freezeConfiguration(p, entities.SnapshotTriggerOrderConfirmed, opts.Actor, opts.Reason)
		return err
	case lifecycle.EffectGenerateBOM:
		snap, err := u.bom.GenerateBOM(ctx, *p, entities.SnapshotTriggerOrderConfirmed)
		if err != nil {
			return err
		}
		p.BOMSnapshots = append(p.BOMSnapshots, snap)
		return nil
	case lifecycle.EffectPinLibraryVersions:
		// First pin wins; a later confirmation can never silently replace the
		// versions compliance documents were built from.
		if p.LibraryPins != nil {
			return nil
		}
		pins, err := u.library.PinLibraryVersions(ctx, *p)
		if err != nil {
			return err
		}
		p.LibraryPins = &pins
		return nil
	case lifecycle.EffectInitializeProduction:
		if len(p.ProductionStages) > 0 {
			return nil
		}
		p.ProductionStages = defaultProductionStages()
		return nil
	case lifecycle.EffectFinalizeDocuments:
		// Document rendering is the document service's responsibility.
		return nil
	default:
		return fmt.Errorf("unknown milestone effect %q", eff.Type)
	}
}

func defaultProductionStages() []entities.ProductionStage {
	names := []string{
		"Hull lamination",
		"Deck and superstructure",
		"Engine installation",
		"Electrical and systems",
		"Interior outfitting",
		"Finishing and sea trial",
	}
	stages := make([]entities.ProductionStage, 0, len(names))
	for i, name := range names {
		stages = append(stages, entities.ProductionStage{
			ID:       uuid.NewString(),
			Name:     name,
			Sequence: i + 1,
			Status:   "pending",
		})
	}
	return stages
}

// RegenerateBOM produces an additional, manually triggered BOM snapshot from
// the latest configuration snapshot.
func (u *ProjectUseCase) RegenerateBOM(ctx context.Context, id, actor string) (entities.Project, error) {
	updated, err := updateProject(ctx, u.repo, id, func(p *entities.Project) error {
		snap, err := u.bom.GenerateBOM(ctx, *p, entities.SnapshotTriggerManual)
		if err != nil {
			return err
		}
		p.BOMSnapshots = append(p.BOMSnapshots, snap)
		return nil
	})
	if err != nil {
		return entities.Project{}, err
	}
	if u.audit != nil {
		u.audit.Log(interfaces.AuditEvent{
			Actor:       actor,
			Action:      "project.bom_regenerated",
			EntityType:  "project",
			EntityID:    updated.ID,
			Description: fmt.Sprintf("BOM snapshot #%d generated manually", len(updated.BOMSnapshots)),
			Severity:    interfaces.AuditSeverityNormal,
		})
	}
	return updated, nil
}

// Archive retires a project. Only draft projects (never sold) and closed
// projects (fully delivered) can be archived.
func (u *ProjectUseCase) Archive(ctx context.Context, id, actor string) (entities.Project, error) {
	updated, err := updateProject(ctx, u.repo, id, func(p *entities.Project) error {
		if p.Status != entities.ProjectStatusDraft && p.Status != entities.ProjectStatusClosed {
			return ErrArchiveNotAllowed
		}
		now := time.Now().UTC()
		p.Archived = true
		p.ArchivedAt = &now
		return nil
	})
	if err != nil {
		return entities.Project{}, err
	}
	if u.audit != nil {
		u.audit.Log(interfaces.AuditEvent{
			Actor:       actor,
			Action:      "project.archived",
			EntityType:  "project",
			EntityID:    updated.ID,
			Severity:    interfaces.AuditSeverityNormal,
			Description: "project archived",
		})
	}
	return updated, nil
}

// EmergencyUnlock clears the frozen flag without an amendment. It breaks the
// tamper-evidence guarantee, so it demands a reason and is logged with
// elevated severity.
func (u *ProjectUseCase) EmergencyUnlock(ctx context.Context, id, actor, reason string) (entities.Project, error) {
	if strings.TrimSpace(reason) == "" {
		return entities.Project{}, ErrReasonRequired
	}
	updated, err := updateProject(ctx, u.repo, id, func(p *entities.Project) error {
		if !p.Configuration.IsFrozen {
			return ErrNotFrozen
		}
		p.Configuration.IsFrozen = false
		p.Configuration.FrozenAt = nil
		p.Configuration.FrozenBy = ""
		return nil
	})
	if err != nil {
		return entities.Project{}, err
	}

	log.Printf("[project][usecase] EMERGENCY UNLOCK project_id=%s actor=%s reason=%q", updated.ID, actor, reason)
	if u.audit != nil {
		u.audit.Log(interfaces.AuditEvent{
			Actor:       actor,
			Action:      "project.emergency_unlock",
			EntityType:  "project",
			EntityID:    updated.ID,
			Description: "configuration unfrozen without amendment: " + reason,
			Severity:    interfaces.AuditSeverityElevated,
		})
	}
	return updated, nil
}
