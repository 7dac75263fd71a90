//go:build unit || e2e

package builder

import (
	domdeal "sabzi/internal/domain/deal"
	domoffer "sabzi/internal/domain/offer"
	reqdto "sabzi/internal/handler/dto/request"
	"sabzi/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferBuilder struct {
	Deal         *domdeal.Deal
	SupplierID   uuid.UUID
	PricePerUnit float64
	Notes        string
}

func NewOfferBuilder() *OfferBuilder {
	dealBuilder := NewDealBuilder()
	dealBuilder.CurrentQuantity = dealBuilder.TargetQuantity
	dealBuilder.Status = domdeal.StatusReadyForOffer

	return &OfferBuilder{
		Deal:         dealBuilder.BuildReconstructed(),
		SupplierID:   uuid.New(),
		PricePerUnit: 25.50,
		Notes:        "Fresh stock, can deliver tomorrow",
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) BuildDomain() (*domoffer.Offer, error) {
	price, err := domoffer.NewPricePerUnit(b.PricePerUnit)
	if err != nil {
		return nil, err
	}
	return domoffer.NewOffer(b.Deal, b.SupplierID, price, domoffer.NewNotes(b.Notes), BaseTime)
}

func (b *OfferBuilder) BuildSubmitRequestDTO() reqdto.SubmitOfferRequest {
	return reqdto.SubmitOfferRequest{
		PricePerUnit: b.PricePerUnit,
		Notes:        b.Notes,
	}
}

func (b *OfferBuilder) BuildViewQuery() *queries.OfferView {
	return &queries.OfferView{
		ID:            uuid.New(),
		DealID:        b.Deal.ID(),
		SupplierID:    b.SupplierID,
		SupplierEmail: "supplier@example.com",
		PricePerUnit:  b.PricePerUnit,
		TotalPrice:    b.PricePerUnit * b.Deal.TargetQuantity().Value(),
		Notes:         b.Notes,
		Outcome:       "pending",
		CreatedAt:     BaseTime,
	}
}

func (b *OfferBuilder) BuildSupplierViewQuery() *queries.SupplierOfferView {
	return &queries.SupplierOfferView{
		ID:                 uuid.New(),
		DealID:             b.Deal.ID(),
		DealItemName:       b.Deal.ItemName().String(),
		DealTargetQuantity: b.Deal.TargetQuantity().Value(),
		DealUnit:           b.Deal.Unit().String(),
		DealStatus:         string(b.Deal.Status()),
		PricePerUnit:       b.PricePerUnit,
		TotalPrice:         b.PricePerUnit * b.Deal.TargetQuantity().Value(),
		Notes:              b.Notes,
		Outcome:            "pending",
		CreatedAt:          BaseTime,
	}
}
