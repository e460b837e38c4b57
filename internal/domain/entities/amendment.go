package entities

import "time"

// AmendmentType classifies what an amendment changes.
type AmendmentType string

const (
	AmendmentTypeItemChange     AmendmentType = "item_change"
	AmendmentTypeDiscountChange AmendmentType = "discount_change"
	AmendmentTypeCorrection     AmendmentType = "correction"
)

// ProjectAmendment is the immutable record of a post-freeze configuration
// change. It is created atomically with its two bracketing snapshots (before
// and after, both trigger=amendment) and is never edited afterwards.
type ProjectAmendment struct {
	ID                 string        `json:"id"`
	AmendmentNumber    int           `json:"amendment_number"`
	Type               AmendmentType `json:"type"`
	Reason             string        `json:"reason"`
	RequestedBy        string        `json:"requested_by"`
	ApprovedBy         string        `json:"approved_by"`
	BeforeSnapshotID   string        `json:"before_snapshot_id"`
	AfterSnapshotID    string        `json:"after_snapshot_id"`
	PriceImpactExclVAT float64       `json:"price_impact_excl_vat"`
	AffectedItems      []string      `json:"affected_items"`
	CreatedAt          time.Time     `json:"created_at"`
}
