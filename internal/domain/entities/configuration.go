package entities

import (
	"math"
	"time"
)

// SnapshotTrigger records why a configuration snapshot was taken.
type SnapshotTrigger string

const (
	SnapshotTriggerOrderConfirmed SnapshotTrigger = "order_confirmed"
	SnapshotTriggerAmendment      SnapshotTrigger = "amendment"
	SnapshotTriggerManual         SnapshotTrigger = "manual"
)

// ConfigurationItem is one priced line of a project configuration.
type ConfigurationItem struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Quantity         float64 `json:"quantity"`
	UnitPriceExclVAT float64 `json:"unit_price_excl_vat"`
	LineTotalExclVAT float64 `json:"line_total_excl_vat"`
	Included         bool    `json:"included"`
	CERelevant       bool    `json:"ce_relevant"`
	SafetyCritical   bool    `json:"safety_critical"`
}

// ConfigurationState is the priced scope of work owned by a single Project.
//
// Aggregate fields (subtotal, discount amount, VAT amount, totals) are pure
// functions of the item list, discount and VAT rate. They are recomputed on
// every item mutation via Recalculate and must never be edited independently.
type ConfigurationState struct {
	BoatModelID        string              `json:"boat_model_id"`
	BoatModelVersionID string              `json:"boat_model_version_id"`
	Items              []ConfigurationItem `json:"items"`
	DiscountPercent    float64             `json:"discount_percent"`
	VATRatePercent     float64             `json:"vat_rate_percent"`
	SubtotalExclVAT    float64             `json:"subtotal_excl_vat"`
	DiscountAmount     float64             `json:"discount_amount"`
	TotalExclVAT       float64             `json:"total_excl_vat"`
	VATAmount          float64             `json:"vat_amount"`
	TotalInclVAT       float64             `json:"total_incl_vat"`
	IsFrozen           bool                `json:"is_frozen"`
	FrozenAt           *time.Time          `json:"frozen_at,omitempty"`
	FrozenBy           string              `json:"frozen_by,omitempty"`
}

// ConfigurationSnapshot is an immutable, point-in-time copy of a project's
// configuration. Snapshots form an append-only ledger: created, never mutated
// or deleted. Data always carries IsFrozen=true regardless of the live state.
type ConfigurationSnapshot struct {
	ID             string             `json:"id"`
	SnapshotNumber int                `json:"snapshot_number"`
	Trigger        SnapshotTrigger    `json:"trigger"`
	Reason         string             `json:"reason,omitempty"`
	CreatedBy      string             `json:"created_by"`
	CreatedAt      time.Time          `json:"created_at"`
	Data           ConfigurationState `json:"data"`
}

// Round2 rounds a monetary amount to 2 decimal places.
//
// The pricing contract applies this at every named step (line total, discount
// amount, VAT amount, totals), not only at the end, so intermediate roundings
// are observable.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Recalculate recomputes every aggregate pricing field from the item list,
// the discount percent and the VAT rate. Idempotent.
func (c *ConfigurationState) Recalculate() {
	subtotal := 0.0
	for i := range c.Items {
		it := &c.Items[i]
		it.LineTotalExclVAT = Round2(it.Quantity * it.UnitPriceExclVAT)
		if it.Included {
			subtotal += it.LineTotalExclVAT
		}
	}
	c.SubtotalExclVAT = Round2(subtotal)

	discount := 0.0
	if c.DiscountPercent > 0 {
		discount = Round2(c.SubtotalExclVAT * c.DiscountPercent / 100)
	}
	c.DiscountAmount = discount
	c.TotalExclVAT = Round2(c.SubtotalExclVAT - discount)
	c.VATAmount = Round2(c.TotalExclVAT * c.VATRatePercent / 100)
	c.TotalInclVAT = Round2(c.TotalExclVAT + c.VATAmount)
}

// ItemByID returns the index of the item with the given id, or -1.
func (c *ConfigurationState) ItemByID(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// DeepCopy returns a fully independent copy of the configuration. Snapshots
// are taken from deep copies so a retained snapshot can never observe later
// mutations of the live configuration.
func (c ConfigurationState) DeepCopy() ConfigurationState {
	out := c
	if c.Items != nil {
		out.Items = make([]ConfigurationItem, len(c.Items))
		copy(out.Items, c.Items)
	}
	if c.FrozenAt != nil {
		t := *c.FrozenAt
		out.FrozenAt = &t
	}
	return out
}
