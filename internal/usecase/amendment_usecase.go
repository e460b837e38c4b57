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

// AmendmentItemUpdate targets one existing configuration item.
type AmendmentItemUpdate struct {
	ItemID string
	ConfigurationItemUpdate
}

// AmendmentRequest describes a post-freeze configuration change. Removals are
// applied before updates, updates before additions, so an id appearing in
// both the remove and update lists is unambiguous (it is removed).
type AmendmentRequest struct {
	Type            entities.AmendmentType
	Reason          string
	RequestedBy     string
	ApprovedBy      string
	ItemsToRemove   []string
	ItemsToUpdate   []AmendmentItemUpdate
	ItemsToAdd      []ConfigurationItemInput
	DiscountPercent *float64
}

func (r AmendmentRequest) isEmpty() bool {
	return len(r.ItemsToRemove) == 0 && len(r.ItemsToUpdate) == 0 &&
		len(r.ItemsToAdd) == 0 && r.DiscountPercent == nil
}

// IAmendmentUseCase is the only sanctioned way to change a frozen
// configuration.
type IAmendmentUseCase interface {
	RequestAmendment(ctx context.Context, projectID string, req AmendmentRequest) (entities.Project, error)
	ListAmendments(ctx context.Context, projectID string) ([]entities.ProjectAmendment, error)
}

type AmendmentUseCase struct {
	repo  interfaces.IProjectRepository
	authz interfaces.IAuthorizationService
	audit interfaces.IAuditLogger
}

var _ IAmendmentUseCase = (*AmendmentUseCase)(nil)

func NewAmendmentUseCase(repo interfaces.IProjectRepository, authz interfaces.IAuthorizationService, audit interfaces.IAuditLogger) *AmendmentUseCase {
	return &AmendmentUseCase{repo: repo, authz: authz, audit: audit}
}

// RequestAmendment wraps a configuration delta in a before/after snapshot
// pair plus an approval record. The configuration, both snapshots and the
// amendment record are committed as one aggregate write; every precondition
// failure aborts before any snapshot exists.
func (u *AmendmentUseCase) RequestAmendment(ctx context.Context, projectID string, req AmendmentRequest) (entities.Project, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return entities.Project{}, ErrReasonRequired
	}
	if strings.TrimSpace(req.ApprovedBy) == "" || !u.authz.CanApproveAmendment(ctx, req.ApprovedBy) {
		return entities.Project{}, ErrUnauthorizedApprover
	}
	if req.isEmpty() {
		return entities.Project{}, ErrEmptyAmendment
	}
	for _, in := range req.ItemsToAdd {
		if err := in.validate(); err != nil {
			return entities.Project{}, err
		}
	}
	for _, upd := range req.ItemsToUpdate {
		if err := upd.validate(); err != nil {
			return entities.Project{}, err
		}
	}
	if req.DiscountPercent != nil && (*req.DiscountPercent < 0 || *req.DiscountPercent > 100) {
		return entities.Project{}, &ValidationError{Fields: []string{"discount percent must be between 0 and 100"}}
	}
	amendmentType := req.Type
	if amendmentType == "" {
		amendmentType = entities.AmendmentTypeItemChange
	}

	var amendment entities.ProjectAmendment
	updated, err := updateProject(ctx, u.repo, projectID, func(p *entities.Project) error {
		if lifecycle.IsLocked(p.Status) {
			return ErrProjectLocked
		}
		if !lifecycle.IsFrozen(p.Status) || !p.Configuration.IsFrozen {
			return ErrNotFrozen
		}

		// Resolve every referenced item before the first snapshot is taken.
		for _, id := range req.ItemsToRemove {
			if p.Configuration.ItemByID(id) < 0 {
				return fmt.Errorf("%w: %s", ErrItemNotFound, id)
			}
		}
		for _, upd := range req.ItemsToUpdate {
			if !containsID(req.ItemsToRemove, upd.ItemID) && p.Configuration.ItemByID(upd.ItemID) < 0 {
				return fmt.Errorf("%w: %s", ErrItemNotFound, upd.ItemID)
			}
		}

		before := newConfigurationSnapshot(p, entities.SnapshotTriggerAmendment, req.RequestedBy, req.Reason)
		p.ConfigurationSnapshots = append(p.ConfigurationSnapshots, before)

		priceImpact := 0.0
		var affected []string

		for _, id := range req.ItemsToRemove {
			idx := p.Configuration.ItemByID(id)
			it := p.Configuration.Items[idx]
			if it.Included {
				priceImpact -= it.LineTotalExclVAT
			}
			affected = append(affected, it.Name)
			p.Configuration.Items = append(p.Configuration.Items[:idx], p.Configuration.Items[idx+1:]...)
		}
		for _, upd := range req.ItemsToUpdate {
			idx := p.Configuration.ItemByID(upd.ItemID)
			if idx < 0 {
				continue // removed above
			}
			it := &p.Configuration.Items[idx]
			oldContribution := 0.0
			if it.Included {
				oldContribution = it.LineTotalExclVAT
			}
			applyItemUpdate(it, upd.ConfigurationItemUpdate)
			it.LineTotalExclVAT = entities.Round2(it.Quantity * it.UnitPriceExclVAT)
			newContribution := 0.0
			if it.Included {
				newContribution = it.LineTotalExclVAT
			}
			priceImpact += newContribution - oldContribution
			affected = append(affected, it.Name)
		}
		for _, in := range req.ItemsToAdd {
			included := true
			if in.Included != nil {
				included = *in.Included
			}
			it := entities.ConfigurationItem{
				ID:               uuid.NewString(),
				Name:             strings.TrimSpace(in.Name),
				Category:         strings.TrimSpace(in.Category),
				Quantity:         in.Quantity,
				UnitPriceExclVAT: in.UnitPriceExclVAT,
				LineTotalExclVAT: entities.Round2(in.Quantity * in.UnitPriceExclVAT),
				Included:         included,
				CERelevant:       in.CERelevant,
				SafetyCritical:   in.SafetyCritical,
			}
			if it.Included {
				priceImpact += it.LineTotalExclVAT
			}
			affected = append(affected, it.Name)
			p.Configuration.Items = append(p.Configuration.Items, it)
		}

		// The discount carries over unchanged unless the amendment changes it.
		if req.DiscountPercent != nil {
			p.Configuration.DiscountPercent = *req.DiscountPercent
		}
		p.Configuration.Recalculate()

		after, err := freezeConfiguration(p, entities.SnapshotTriggerAmendment, req.ApprovedBy, req.Reason)
		if err != nil {
			return err
		}

		amendment = entities.ProjectAmendment{
			ID:                 uuid.NewString(),
			AmendmentNumber:    len(p.Amendments) + 1,
			Type:               amendmentType,
			Reason:             strings.TrimSpace(req.Reason),
			RequestedBy:        req.RequestedBy,
			ApprovedBy:         req.ApprovedBy,
			BeforeSnapshotID:   before.ID,
			AfterSnapshotID:    after.ID,
			PriceImpactExclVAT: entities.Round2(priceImpact),
			AffectedItems:      affected,
			CreatedAt:          time.Now().UTC(),
		}
		p.Amendments = append(p.Amendments, amendment)
		return nil
	})
	if err != nil {
		return entities.Project{}, err
	}

	log.Printf("[amendment][usecase] recorded project_id=%s amendment_number=%d price_impact=%.2f", updated.ID, amendment.AmendmentNumber, amendment.PriceImpactExclVAT)
	if u.audit != nil {
		u.audit.Log(interfaces.AuditEvent{
			Actor:       req.ApprovedBy,
			Action:      "amendment.recorded",
			EntityType:  "project",
			EntityID:    updated.ID,
			Description: fmt.Sprintf("amendment #%d: %s", amendment.AmendmentNumber, amendment.Reason),
			Severity:    interfaces.AuditSeverityNormal,
			Before:      amendment.BeforeSnapshotID,
			After:       amendment.AfterSnapshotID,
		})
	}
	return updated, nil
}

func (u *AmendmentUseCase) ListAmendments(ctx context.Context, projectID string) ([]entities.ProjectAmendment, error) {
	p, err := loadProject(ctx, u.repo, projectID)
	if err != nil {
		return nil, err
	}
	return p.Amendments, nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
