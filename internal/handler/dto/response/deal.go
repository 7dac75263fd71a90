package response

import (
	"sabzi/internal/usecase/queries"
)

type DealResponse struct {
	ID                    string   `json:"id"`
	ItemName              string   `json:"item_name"`
	TargetQuantity        float64  `json:"target_quantity"`
	CurrentQuantity       float64  `json:"current_quantity"`
	RemainingQuantity     float64  `json:"remaining_quantity"`
	Unit                  string   `json:"unit"`
	Deadline              int64    `json:"deadline"`
	RequestedBy           string   `json:"requested_by"`
	RequestedByEmail      string   `json:"requested_by_email"`
	Status                string   `json:"status"`
	AcceptedOfferID       *string  `json:"accepted_offer_id,omitempty"`
	AcceptedPricePerUnit  *float64 `json:"accepted_price_per_unit,omitempty"`
	AcceptedSupplierID    *string  `json:"accepted_supplier_id,omitempty"`
	AcceptedSupplierEmail *string  `json:"accepted_supplier_email,omitempty"`
	ClosedAt              *int64   `json:"closed_at,omitempty"`
	CreatedAt             int64    `json:"created_at"`
}

type DealBoardResponse struct {
	Active  []*DealResponse `json:"active"`
	History []*DealResponse `json:"history"`
}

type ContributionResponse struct {
	ID               string  `json:"id"`
	DealID           string  `json:"deal_id"`
	ContributorID    string  `json:"contributor_id"`
	ContributorEmail string  `json:"contributor_email"`
	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit"`
	CreatedAt        int64   `json:"created_at"`
}

type CreateDealResponse struct {
	ID string `json:"id"`
}

func FromDealView(v *queries.DealView) *DealResponse {
	remaining := v.TargetQuantity - v.CurrentQuantity
	if remaining < 0 {
		remaining = 0
	}
	res := &DealResponse{
		ID:                    v.ID.String(),
		ItemName:              v.ItemName,
		TargetQuantity:        v.TargetQuantity,
		CurrentQuantity:       v.CurrentQuantity,
		RemainingQuantity:     remaining,
		Unit:                  v.Unit,
		Deadline:              v.Deadline.Unix(),
		RequestedBy:           v.RequestedBy.String(),
		RequestedByEmail:      v.RequestedByEmail,
		Status:                v.Status,
		AcceptedPricePerUnit:  v.AcceptedPricePerUnit,
		AcceptedSupplierEmail: v.AcceptedSupplierEmail,
		CreatedAt:             v.CreatedAt.Unix(),
	}
	if v.AcceptedOfferID != nil {
		id := v.AcceptedOfferID.String()
		res.AcceptedOfferID = &id
	}
	if v.AcceptedSupplierID != nil {
		id := v.AcceptedSupplierID.String()
		res.AcceptedSupplierID = &id
	}
	if v.ClosedAt != nil {
		ts := v.ClosedAt.Unix()
		res.ClosedAt = &ts
	}
	return res
}

func FromDealViews(views []*queries.DealView) []*DealResponse {
	res := make([]*DealResponse, len(views))
	for i, v := range views {
		res[i] = FromDealView(v)
	}
	return res
}

func FromDealBoard(b *queries.DealBoard) *DealBoardResponse {
	return &DealBoardResponse{
		Active:  FromDealViews(b.Active),
		History: FromDealViews(b.History),
	}
}

func FromContributionViews(views []*queries.ContributionView) []*ContributionResponse {
	res := make([]*ContributionResponse, len(views))
	for i, v := range views {
		res[i] = &ContributionResponse{
			ID:               v.ID.String(),
			DealID:           v.DealID.String(),
			ContributorID:    v.ContributorID.String(),
			ContributorEmail: v.ContributorEmail,
			Quantity:         v.Quantity,
			Unit:             v.Unit,
			CreatedAt:        v.CreatedAt.Unix(),
		}
	}
	return res
}
