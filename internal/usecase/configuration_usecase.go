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

// ConfigurationItemInput is the payload for adding a configuration line.
type ConfigurationItemInput struct {
	Name             string
	Category         string
	Quantity         float64
	UnitPriceExclVAT float64
	Included         *bool // nil defaults to true
	CERelevant       bool
	SafetyCritical   bool
}

func (in ConfigurationItemInput) validate() error {
	var fields []string
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, "name is required")
	}
	if in.Quantity <= 0 {
		fields = append(fields, "quantity must be positive")
	}
	if in.UnitPriceExclVAT < 0 {
		fields = append(fields, "unit price cannot be negative")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ConfigurationItemUpdate is a partial update; nil fields are left untouched.
type ConfigurationItemUpdate struct {
	Name             *string
	Category         *string
	Quantity         *float64
	UnitPriceExclVAT *float64
	Included         *bool
	CERelevant       *bool
	SafetyCritical   *bool
}

func (upd ConfigurationItemUpdate) validate() error {
	var fields []string
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		fields = append(fields, "name cannot be empty")
	}
	if upd.Quantity != nil && *upd.Quantity <= 0 {
		fields = append(fields, "quantity must be positive")
	}
	if upd.UnitPriceExclVAT != nil && *upd.UnitPriceExclVAT < 0 {
		fields = append(fields, "unit price cannot be negative")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (upd ConfigurationItemUpdate) empty() bool {
	return upd.Name == nil && upd.Category == nil && upd.Quantity == nil &&
		upd.UnitPriceExclVAT == nil && upd.Included == nil && upd.CERelevant == nil &&
		upd.SafetyCritical == nil
}

// ConfigurationUpdateInput updates configuration-level settings. A boat model
// version differing from the pinned one is rejected regardless of freeze
// state; that field is append-only from project creation on.
type ConfigurationUpdateInput struct {
	DiscountPercent    *float64
	VATRatePercent     *float64
	BoatModelVersionID *string
}

// IConfigurationUseCase owns the priced line-item list of a project: item
// mutations, discount, reordering, freezing and snapshot reads.
type IConfigurationUseCase interface {
	AddItem(ctx context.Context, projectID string, input ConfigurationItemInput) (entities.Project, error)
	UpdateItem(ctx context.Context, projectID, itemID string, upd ConfigurationItemUpdate) (entities.Project, error)
	RemoveItem(ctx context.Context, projectID, itemID string) (entities.Project, error)
	MoveItem(ctx context.Context, projectID, itemID string, newIndex int) (entities.Project, error)
	SetDiscount(ctx context.Context, projectID string, percent float64) (entities.Project, error)
	UpdateConfiguration(ctx context.Context, projectID string, input ConfigurationUpdateInput) (entities.Project, error)
	Freeze(ctx context.Context, projectID string, trigger entities.SnapshotTrigger, frozenBy, reason string) (entities.Project, error)
	Snapshots(ctx context.Context, projectID string) ([]entities.ConfigurationSnapshot, error)
}

type ConfigurationUseCase struct {
	repo  interfaces.IProjectRepository
	audit interfaces.IAuditLogger
}

var _ IConfigurationUseCase = (*ConfigurationUseCase)(nil)

func NewConfigurationUseCase(repo interfaces.IProjectRepository, audit interfaces.IAuditLogger) *ConfigurationUseCase {
	return &ConfigurationUseCase{repo: repo, audit: audit}
}

// editableGuard enforces the two independent preconditions of every direct
// configuration mutation: the configuration itself is not frozen, and the
// project status is in the editable partition.
func editableGuard(p *entities.Project) error {
	if p.Configuration.IsFrozen {
		return ErrConfigFrozen
	}
	if !lifecycle.IsEditable(p.Status) {
		return ErrStatusNotEditable
	}
	return nil
}

// newConfigurationSnapshot appends nothing; it builds the next snapshot from
// a deep copy of the live configuration with IsFrozen forced true.
func newConfigurationSnapshot(p *entities.Project, trigger entities.SnapshotTrigger, createdBy, reason string) entities.ConfigurationSnapshot {
	data := p.Configuration.DeepCopy()
	data.IsFrozen = true
	return entities.ConfigurationSnapshot{
		ID:             uuid.NewString(),
		SnapshotNumber: len(p.ConfigurationSnapshots) + 1,
		Trigger:        trigger,
		Reason:         reason,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now().UTC(),
		Data:           data,
	}
}

// freezeConfiguration freezes the live configuration in memory and appends
// the freeze snapshot. An order-confirmed or manual freeze on an already
// frozen configuration fails; an amendment-triggered freeze re-freezes after
// the amendment edit. The caller persists the aggregate, so both writes
// (snapshot append + frozen flag) commit together or not at all.
func freezeConfiguration(p *entities.Project, trigger entities.SnapshotTrigger, frozenBy, reason string) (entities.ConfigurationSnapshot, error) {
	if p.Configuration.IsFrozen && trigger != entities.SnapshotTriggerAmendment {
		return entities.ConfigurationSnapshot{}, ErrAlreadyFrozen
	}
	now := time.Now().UTC()
	p.Configuration.IsFrozen = true
	p.Configuration.FrozenAt = &now
	p.Configuration.FrozenBy = frozenBy

	snap := newConfigurationSnapshot(p, trigger, frozenBy, reason)
	p.ConfigurationSnapshots = append(p.ConfigurationSnapshots, snap)
	return snap, nil
}

func (u *ConfigurationUseCase) AddItem(ctx context.Context, projectID string, input ConfigurationItemInput) (entities.Project, error) {
	if err := input.validate(); err != nil {
		return entities.Project{}, err
	}
	return updateProject(ctx, u.repo, projectID, func(p *entities.Project) error {
		if err := editableGuard(p); err != nil {
			return err
		}
		included := true
		if input.Included != nil {
			included = *input.Included
		}
		p.Configuration.Items = append(p.Configuration.Items, entities.ConfigurationItem{
			ID:               uuid.NewString(),
			Name:             strings.TrimSpace(input.Name),
			Category:         strings.TrimSpace(input.Category),
			Quantity:         input.Quantity,
			UnitPriceExclVAT: input.UnitPriceExclVAT,
			Included:         included,
			CERelevant:       input.CERelevant,
			SafetyCritical:   input.SafetyCritical,
		})
		p.Configuration.Recalculate()
		return nil
	})
}

func (u *ConfigurationUseCase) UpdateItem(ctx context.Context, projectID, itemID string, upd ConfigurationItemUpdate) (entities.Project, error) {
	if err := upd.validate(); err != nil {
		return entities.Project{}, err
	}
	return updateProject(ctx, u.repo, projectID, func(p *entities.Project) error {
		if err := editableGuard(p); err != nil {
			return err
		}
		idx := p.Configuration.ItemByID(itemID)
		if idx < 0 {
			return ErrItemNotFound
		}
		applyItemUpdate(&p.Configuration.Items[idx], upd)
		p.Configuration.Recalculate()
		return nil
	})
}

func (u *ConfigurationUseCase) RemoveItem(ctx context.Context, projectID, itemID string) (entities.Project, error) {
	return updateProject(ctx, u.repo, projectID, func(p *entities.Project) error {
		if err := editableGuard(p); err != nil {
			return err
		}
		idx := p.Configuration.ItemByID(itemID)
		if idx < 0 {
			return ErrItemNotFound
		}
		p.Configuration.Items = append(p.Configuration.Items[:idx], p.Configuration.Items[idx+1:]...)
		p.Configuration.Recalculate()
		return nil
	})
}

func (u *ConfigurationUseCase) MoveItem(ctx context.Context, projectID, itemID string, newIndex int) (entities.Project, error) {
	return updateProject(ctx, u.repo, projectID, func(p *entities.Project) error {
		if err := editableGuard(p); err != nil {
			return err
		}
		idx := p.Configuration.ItemByID(itemID)
		if idx < 0 {
			return ErrItemNotFound
		}
		if newIndex < 0 || newIndex >= len(p.Configuration.Items) {
			return &ValidationError{Fields: []string{fmt.Sprintf("position %d is out of range", newIndex)}}
		}
		items := p.Configuration.Items
		it := items[idx]
		items = append(items[:idx], items[idx+1:]...)
		items = append(items[:newIndex], append([]entities.ConfigurationItem{it}, items[newIndex:]...)...)
		p.Configuration.Items = items
		return nil
	})
}

func (u *ConfigurationUseCase) SetDiscount(ctx context.Context, projectID string, percent float64) (entities.Project, error) {
	return u.UpdateConfiguration(ctx, projectID, ConfigurationUpdateInput{DiscountPercent: &percent})
}

func (u *ConfigurationUseCase) UpdateConfiguration(ctx context.Context, projectID string, input ConfigurationUpdateInput) (entities.Project, error) {
	if input.DiscountPercent != nil && (*input.DiscountPercent < 0 || *input.DiscountPercent > 100) {
		return entities.Project{}, &ValidationError{Fields: []string{"discount percent must be between 0 and 100"}}
	}
	if input.VATRatePercent != nil && *input.VATRatePercent < 0 {
		return entities.Project{}, &ValidationError{Fields: []string{"vat rate cannot be negative"}}
	}
	return updateProject(ctx, u.repo, projectID, func(p *entities.Project) error {
		// The boat model pin is append-only from creation; this check applies
		// even to configurations that were never frozen.
		if input.BoatModelVersionID != nil && *input.BoatModelVersionID != p.Configuration.BoatModelVersionID {
			return ErrBoatModelPinned
		}
		if input.DiscountPercent == nil && input.VATRatePercent == nil {
			return nil
		}
		if err := editableGuard(p); err != nil {
			return err
		}
		if input.DiscountPercent != nil {
			p.Configuration.DiscountPercent = *input.DiscountPercent
		}
		if input.VATRatePercent != nil {
			p.Configuration.VATRatePercent = *input.VATRatePercent
		}
		p.Configuration.Recalculate()
		return nil
	})
}

func (u *ConfigurationUseCase) Freeze(ctx context.Context, projectID string, trigger entities.SnapshotTrigger, frozenBy, reason string) (entities.Project, error) {
	switch trigger {
	case entities.SnapshotTriggerOrderConfirmed, entities.SnapshotTriggerAmendment, entities.SnapshotTriggerManual:
	default:
		return entities.Project{}, &ValidationError{Fields: []string{fmt.Sprintf("unknown freeze trigger %q", trigger)}}
	}

	updated, err := updateProject(ctx, u.repo, projectID, func(p *entities.Project) error {
		_, err := freezeConfiguration(p, trigger, frozenBy, reason)
		return err
	})
	if err != nil {
		return entities.Project{}, err
	}

	log.Printf("[configuration][usecase] frozen project_id=%s trigger=%s snapshots=%d", updated.ID, trigger, len(updated.ConfigurationSnapshots))
	if u.audit != nil {
		u.audit.Log(interfaces.AuditEvent{
			Actor:       frozenBy,
			Action:      "configuration.freeze",
			EntityType:  "project",
			EntityID:    updated.ID,
			Description: fmt.Sprintf("configuration frozen (trigger %s)", trigger),
			Severity:    interfaces.AuditSeverityNormal,
		})
	}
	return updated, nil
}

func (u *ConfigurationUseCase) Snapshots(ctx context.Context, projectID string) ([]entities.ConfigurationSnapshot, error) {
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return nil, err
	}
	return p.ConfigurationSnapshots, nil
}

func applyItemUpdate(it *entities.ConfigurationItem, upd ConfigurationItemUpdate) {
	if upd.Name != nil {
		it.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Category != nil {
		it.Category = strings.TrimSpace(*upd.Category)
	}
	if upd.Quantity != nil {
		it.Quantity = *upd.Quantity
	}
	if upd.UnitPriceExclVAT != nil {
		it.UnitPriceExclVAT = *upd.UnitPriceExclVAT
	}
	if upd.Included != nil {
		it.Included = *upd.Included
	}
	if upd.CERelevant != nil {
		it.CERelevant = *upd.CERelevant
	}
	if upd.SafetyCritical != nil {
		it.SafetyCritical = *upd.SafetyCritical
	}
}
