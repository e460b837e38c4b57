package entities

import "time"

// BOMLine is the cost-side expansion of one configuration item.
type BOMLine struct {
	ItemID            string  `json:"item_id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Quantity          float64 `json:"quantity"`
	UnitPriceExclVAT  float64 `json:"unit_price_excl_vat"`
	EstimatedUnitCost float64 `json:"estimated_unit_cost"`
	EstimatedLineCost float64 `json:"estimated_line_cost"`
	CERelevant        bool    `json:"ce_relevant"`
	SafetyCritical    bool    `json:"safety_critical"`
}

// BOMSnapshot is an immutable cost snapshot derived from a configuration
// snapshot. Sequentially numbered per project; regenerating produces a new
// snapshot rather than replacing an existing one.
type BOMSnapshot struct {
	ID                 string          `json:"id"`
	BOMNumber          int             `json:"bom_number"`
	Trigger            SnapshotTrigger `json:"trigger"`
	SourceSnapshotID   string          `json:"source_snapshot_id"`
	Lines              []BOMLine       `json:"lines"`
	TotalEstimatedCost float64         `json:"total_estimated_cost"`
	CostRatio          float64         `json:"cost_ratio"`
	GeneratedAt        time.Time       `json:"generated_at"`
}
