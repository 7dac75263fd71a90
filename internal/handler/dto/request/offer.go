package request

import (
	"sabzi/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitOfferRequest struct {
	PricePerUnit float64 `json:"price_per_unit" binding:"required,gt=0"`
	Notes        string  `json:"notes" binding:"max=500"`
}

func (r *SubmitOfferRequest) ToCommand() commands.SubmitOfferRequest {
	return commands.SubmitOfferRequest{
		PricePerUnit: r.PricePerUnit,
		Notes:        r.Notes,
	}
}

type AcceptOfferRequest struct {
	OfferID uuid.UUID `json:"offer_id" binding:"required"`
}
