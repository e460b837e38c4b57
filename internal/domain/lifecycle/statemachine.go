// Package lifecycle defines the project status state machine: legal
// transitions, per-transition prerequisites and the milestone effects a
// transition triggers. Pure functions only; the orchestrator gathers the
// context flags and executes the effects.
package lifecycle

import (
	"fmt"

	"boatworks/internal/domain/entities"
)

// EffectType identifies a milestone side effect triggered by a transition.
type EffectType string

const (
	EffectLockQuote            EffectType = "lock_quote"
	EffectFreezeConfiguration  EffectType = "freeze_configuration"
	EffectGenerateBOM          EffectType = "generate_bom"
	EffectPinLibraryVersions   EffectType = "pin_library_versions"
	EffectInitializeProduction EffectType = "initialize_production"
	EffectFinalizeDocuments    EffectType = "finalize_documents"
)

// MilestoneEffect is a declarative effect descriptor. Not persisted; consumed
// once by the orchestrator during the transition that produced it.
type MilestoneEffect struct {
	Type        EffectType
	Description string
}

// capabilities is the single source of truth for what a status allows.
// The editable/frozen/locked partitions are derived from this table so the
// three views cannot drift apart. editable and frozen are disjoint; locked
// implies frozen.
type capabilities struct {
	editable bool
	frozen   bool
	locked   bool
}

var stateCapabilities = map[entities.ProjectStatus]capabilities{
	entities.ProjectStatusDraft:            {editable: true},
	entities.ProjectStatusQuoted:           {editable: true},
	entities.ProjectStatusOfferSent:        {editable: true},
	entities.ProjectStatusOrderConfirmed:   {frozen: true},
	entities.ProjectStatusInProduction:     {frozen: true},
	entities.ProjectStatusReadyForDelivery: {frozen: true},
	entities.ProjectStatusDelivered:        {frozen: true, locked: true},
	entities.ProjectStatusClosed:           {frozen: true, locked: true},
}

// allowedTransitions is the happy path plus three permitted backward edges.
// closed is terminal.
var allowedTransitions = map[entities.ProjectStatus]map[entities.ProjectStatus]struct{}{
	entities.ProjectStatusDraft: {
		entities.ProjectStatusQuoted: {},
	},
	entities.ProjectStatusQuoted: {
		entities.ProjectStatusOfferSent: {},
		entities.ProjectStatusDraft:     {},
	},
	entities.ProjectStatusOfferSent: {
		entities.ProjectStatusOrderConfirmed: {},
		entities.ProjectStatusQuoted:         {},
	},
	entities.ProjectStatusOrderConfirmed: {
		entities.ProjectStatusInProduction: {},
	},
	entities.ProjectStatusInProduction: {
		entities.ProjectStatusReadyForDelivery: {},
	},
	entities.ProjectStatusReadyForDelivery: {
		entities.ProjectStatusDelivered:    {},
		entities.ProjectStatusInProduction: {},
	},
	entities.ProjectStatusDelivered: {
		entities.ProjectStatusClosed: {},
	},
	entities.ProjectStatusClosed: {},
}

var milestoneEffects = map[entities.ProjectStatus][]MilestoneEffect{
	entities.ProjectStatusOfferSent: {
		{Type: EffectLockQuote, Description: "Lock the sent quote against further edits"},
	},
	entities.ProjectStatusOrderConfirmed: {
		{Type: EffectFreezeConfiguration, Description: "Freeze the priced configuration and snapshot it"},
		{Type: EffectGenerateBOM, Description: "Generate the bill of materials from the frozen configuration"},
		{Type: EffectPinLibraryVersions, Description: "Pin the approved template/procedure/boat model versions"},
	},
	entities.ProjectStatusInProduction: {
		{Type: EffectInitializeProduction, Description: "Initialize the production stage list"},
	},
	entities.ProjectStatusDelivered: {
		{Type: EffectFinalizeDocuments, Description: "Finalize delivery and compliance documents"},
	},
}

// Statuses lists every known status in happy-path order.
func Statuses() []entities.ProjectStatus {
	return []entities.ProjectStatus{
		entities.ProjectStatusDraft,
		entities.ProjectStatusQuoted,
		entities.ProjectStatusOfferSent,
		entities.ProjectStatusOrderConfirmed,
		entities.ProjectStatusInProduction,
		entities.ProjectStatusReadyForDelivery,
		entities.ProjectStatusDelivered,
		entities.ProjectStatusClosed,
	}
}

// IsKnown reports whether s is a recognized project status.
func IsKnown(s entities.ProjectStatus) bool {
	_, ok := stateCapabilities[s]
	return ok
}

// IsEditable reports whether the configuration may be edited directly.
func IsEditable(s entities.ProjectStatus) bool {
	return stateCapabilities[s].editable
}

// IsFrozen reports whether the status belongs to the post-commitment
// partition where the configuration is immutable except via amendments.
func IsFrozen(s entities.ProjectStatus) bool {
	return stateCapabilities[s].frozen
}

// IsLocked reports whether even amendments are no longer permitted.
func IsLocked(s entities.ProjectStatus) bool {
	return stateCapabilities[s].locked
}

// CanTransition reports whether the lifecycle allows the requested change.
// Pure table lookup, no side effects.
func CanTransition(from, to entities.ProjectStatus) bool {
	if from == "" || to == "" {
		return false
	}
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

// MilestoneEffects returns the fixed, ordered effect list for a target
// status. The caller must execute them in the returned order.
func MilestoneEffects(to entities.ProjectStatus) []MilestoneEffect {
	src := milestoneEffects[to]
	if len(src) == 0 {
		return nil
	}
	out := make([]MilestoneEffect, len(src))
	copy(out, src)
	return out
}

// Context carries the prerequisite flags a transition is validated against.
// The machine never queries other aggregates itself; the orchestrator gathers
// these from the quote collaborator and the project's configuration.
type Context struct {
	HasDraftQuote             bool
	HasSentQuote              bool
	HasAcceptedQuote          bool
	DeliveryChecklistComplete bool
	ItemCount                 int
}

// ValidationResult is the full outcome of validating a transition.
//
// Errors block the transition (unless forced); Warnings do not block but
// force RequiresConfirmation. Effects is only populated for legal
// transitions.
type ValidationResult struct {
	IsValid              bool
	Errors               []string
	Warnings             []string
	RequiresConfirmation bool
	Effects              []MilestoneEffect
}

// ValidateTransition checks transition legality first and short-circuits with
// a single error when the edge does not exist. For legal edges it evaluates
// the per-target prerequisites from ctx.
func ValidateTransition(from, to entities.ProjectStatus, ctx Context) ValidationResult {
	if !CanTransition(from, to) {
		return ValidationResult{
			IsValid: false,
			Errors:  []string{fmt.Sprintf("cannot transition project from %q to %q", from, to)},
		}
	}

	res := ValidationResult{IsValid: true, Effects: MilestoneEffects(to)}

	switch to {
	case entities.ProjectStatusQuoted:
		if !ctx.HasDraftQuote {
			res.Errors = append(res.Errors, "project has no draft quote")
		}
	case entities.ProjectStatusOfferSent:
		if !ctx.HasSentQuote {
			res.Errors = append(res.Errors, "quote has not been sent to the client")
		}
	case entities.ProjectStatusOrderConfirmed:
		if !ctx.HasAcceptedQuote {
			res.Errors = append(res.Errors, "quote has not been accepted by the client")
		}
		if ctx.ItemCount == 0 {
			res.Warnings = append(res.Warnings, "configuration has no items; an empty scope will be frozen")
		}
	case entities.ProjectStatusDelivered:
		if !ctx.DeliveryChecklistComplete {
			res.Warnings = append(res.Warnings, "delivery checklist is not complete")
		}
	}

	if len(res.Errors) > 0 {
		res.IsValid = false
	}

	// Order confirmation and delivery are always confirmed explicitly;
	// any warning also forces confirmation.
	if to == entities.ProjectStatusOrderConfirmed || to == entities.ProjectStatusDelivered || len(res.Warnings) > 0 {
		res.RequiresConfirmation = true
	}

	return res
}
