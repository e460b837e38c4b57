package request

import (
	"boatworks/internal/domain/entities"
	"boatworks/internal/usecase"
)

type AmendmentItemUpdateRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	ConfigurationItemUpdateRequest
}

// AmendmentRequest is the payload for changing a frozen configuration.
type AmendmentRequest struct {
	Type            string                       `json:"type"`
	Reason          string                       `json:"reason" binding:"required"`
	RequestedBy     string                       `json:"requested_by"`
	ApprovedBy      string                       `json:"approved_by" binding:"required"`
	ItemsToRemove   []string                     `json:"items_to_remove"`
	ItemsToUpdate   []AmendmentItemUpdateRequest `json:"items_to_update"`
	ItemsToAdd      []ConfigurationItemRequest   `json:"items_to_add"`
	DiscountPercent *float64                     `json:"discount_percent"`
}

func (r AmendmentRequest) ToRequest() usecase.AmendmentRequest {
	out := usecase.AmendmentRequest{
		Type:            entities.AmendmentType(r.Type),
		Reason:          r.Reason,
		RequestedBy:     r.RequestedBy,
		ApprovedBy:      r.ApprovedBy,
		ItemsToRemove:   r.ItemsToRemove,
		DiscountPercent: r.DiscountPercent,
	}
	for _, upd := range r.ItemsToUpdate {
		out.ItemsToUpdate = append(out.ItemsToUpdate, usecase.AmendmentItemUpdate{
			ItemID:                  upd.ItemID,
			ConfigurationItemUpdate: upd.ToUpdate(),
		})
	}
	for _, add := range r.ItemsToAdd {
		out.ItemsToAdd = append(out.ItemsToAdd, add.ToInput())
	}
	return out
}
