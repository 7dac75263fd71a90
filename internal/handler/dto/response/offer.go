package response

import (
	"sabzi/internal/usecase/queries"
)

type OfferResponse struct {
	ID            string  `json:"id"`
	DealID        string  `json:"deal_id"`
	SupplierID    string  `json:"supplier_id"`
	SupplierEmail string  `json:"supplier_email"`
	PricePerUnit  float64 `json:"price_per_unit"`
	TotalPrice    float64 `json:"total_price"`
	Notes         string  `json:"notes"`
	Outcome       string  `json:"outcome"`
	CreatedAt     int64   `json:"created_at"`
}

type SupplierOfferResponse struct {
	ID                 string  `json:"id"`
	DealID             string  `json:"deal_id"`
	DealItemName       string  `json:"deal_item_name"`
	DealTargetQuantity float64 `json:"deal_target_quantity"`
	DealUnit           string  `json:"deal_unit"`
	DealStatus         string  `json:"deal_status"`
	PricePerUnit       float64 `json:"price_per_unit"`
	TotalPrice         float64 `json:"total_price"`
	Notes              string  `json:"notes"`
	Outcome            string  `json:"outcome"`
	CreatedAt          int64   `json:"created_at"`
}

type SubmitOfferResponse struct {
	ID         string  `json:"id"`
	TotalPrice float64 `json:"total_price"`
}

func FromOfferViews(views []*queries.OfferView) []*OfferResponse {
	res := make([]*OfferResponse, len(views))
	for i, v := range views {
		res[i] = &OfferResponse{
			ID:            v.ID.String(),
			DealID:        v.DealID.String(),
			SupplierID:    v.SupplierID.String(),
			SupplierEmail: v.SupplierEmail,
			PricePerUnit:  v.PricePerUnit,
			TotalPrice:    v.TotalPrice,
			Notes:         v.Notes,
			Outcome:       v.Outcome,
			CreatedAt:     v.CreatedAt.Unix(),
		}
	}
	return res
}

func FromSupplierOfferViews(views []*queries.SupplierOfferView) []*SupplierOfferResponse {
	res := make([]*SupplierOfferResponse, len(views))
	for i, v := range views {
		res[i] = &SupplierOfferResponse{
			ID:                 v.ID.String(),
			DealID:             v.DealID.String(),
			DealItemName:       v.DealItemName,
			DealTargetQuantity: v.DealTargetQuantity,
			DealUnit:           v.DealUnit,
			DealStatus:         v.DealStatus,
			PricePerUnit:       v.PricePerUnit,
			TotalPrice:         v.TotalPrice,
			Notes:              v.Notes,
			Outcome:            v.Outcome,
			CreatedAt:          v.CreatedAt.Unix(),
		}
	}
	return res
}
