package request

import "boatworks/internal/usecase"

// ConfigurationItemRequest adds one priced line to the configuration.
type ConfigurationItemRequest struct {
	Name             string  `json:"name" binding:"required"`
	Category         string  `json:"category"`
	Quantity         float64 `json:"quantity" binding:"required"`
	UnitPriceExclVAT float64 `json:"unit_price_excl_vat"`
	Included         *bool   `json:"included"`
	CERelevant       bool    `json:"ce_relevant"`
	SafetyCritical   bool    `json:"safety_critical"`
}

func (r ConfigurationItemRequest) ToInput() usecase.ConfigurationItemInput {
	return usecase.ConfigurationItemInput{
		Name:             r.Name,
		Category:         r.Category,
		Quantity:         r.Quantity,
		UnitPriceExclVAT: r.UnitPriceExclVAT,
		Included:         r.Included,
		CERelevant:       r.CERelevant,
		SafetyCritical:   r.SafetyCritical,
	}
}

// ConfigurationItemUpdateRequest is a partial item update; absent fields are
// left untouched.
type ConfigurationItemUpdateRequest struct {
	Name             *string  `json:"name"`
	Category         *string  `json:"category"`
	Quantity         *float64 `json:"quantity"`
	UnitPriceExclVAT *float64 `json:"unit_price_excl_vat"`
	Included         *bool    `json:"included"`
	CERelevant       *bool    `json:"ce_relevant"`
	SafetyCritical   *bool    `json:"safety_critical"`
}

func (r ConfigurationItemUpdateRequest) ToUpdate() usecase.ConfigurationItemUpdate {
	return usecase.ConfigurationItemUpdate{
		Name:             r.Name,
		Category:         r.Category,
		Quantity:         r.Quantity,
		UnitPriceExclVAT: r.UnitPriceExclVAT,
		Included:         r.Included,
		CERelevant:       r.CERelevant,
		SafetyCritical:   r.SafetyCritical,
	}
}

type MoveItemRequest struct {
	NewIndex *int `json:"new_index" binding:"required"`
}

// ConfigurationUpdateRequest changes configuration-level settings.
type ConfigurationUpdateRequest struct {
	DiscountPercent    *float64 `json:"discount_percent"`
	VATRatePercent     *float64 `json:"vat_rate_percent"`
	BoatModelVersionID *string  `json:"boat_model_version_id"`
}

func (r ConfigurationUpdateRequest) ToInput() usecase.ConfigurationUpdateInput {
	return usecase.ConfigurationUpdateInput{
		DiscountPercent:    r.DiscountPercent,
		VATRatePercent:     r.VATRatePercent,
		BoatModelVersionID: r.BoatModelVersionID,
	}
}

type DiscountRequest struct {
	DiscountPercent *float64 `json:"discount_percent" binding:"required"`
}

type FreezeRequest struct {
	FrozenBy string `json:"frozen_by"`
	Reason   string `json:"reason"`
}
