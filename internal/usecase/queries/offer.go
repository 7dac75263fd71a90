package queries

import (
	"context"
	"time"

	"sabzi/internal/domain/deal"
	"sabzi/internal/domain/offer"
	"sabzi/internal/infra"

	"github.com/google/uuid"
)

type OfferView struct {
	ID            uuid.UUID `json:"id"`
	DealID        uuid.UUID `json:"deal_id"`
	SupplierID    uuid.UUID `json:"supplier_id"`
	SupplierEmail string    `json:"supplier_email"`
	PricePerUnit  float64   `json:"price_per_unit"`
	TotalPrice    float64   `json:"total_price"`
	Notes         string    `json:"notes"`
	Outcome       string    `json:"outcome"`
	CreatedAt     time.Time `json:"created_at"`
}

// SupplierOfferView pairs an offer with a snapshot of its deal for the
// supplier's own dashboard.
type SupplierOfferView struct {
	ID                 uuid.UUID `json:"id"`
	DealID             uuid.UUID `json:"deal_id"`
	DealItemName       string    `json:"deal_item_name"`
	DealTargetQuantity float64   `json:"deal_target_quantity"`
	DealUnit           string    `json:"deal_unit"`
	DealStatus         string    `json:"deal_status"`
	PricePerUnit       float64   `json:"price_per_unit"`
	TotalPrice         float64   `json:"total_price"`
	Notes              string    `json:"notes"`
	Outcome            string    `json:"outcome"`
	CreatedAt          time.Time `json:"created_at"`
}

type OfferReadStore interface {
	ListByDeal(ctx context.Context, dealID uuid.UUID) ([]*OfferView, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*SupplierOfferView, error)
}

type OfferQueries interface {
	ListForDeal(ctx context.Context, dealID, actorID uuid.UUID) ([]*OfferView, error)
	ListMine(ctx context.Context, supplierID uuid.UUID) ([]*SupplierOfferView, error)
}

type offerQueriesImpl struct {
	readStore OfferReadStore
	deals     DealQueries
	sweeper   *Sweeper
}

func NewOfferQueries(readStore OfferReadStore, deals DealQueries, sweeper *Sweeper) OfferQueries {
	return &offerQueriesImpl{
		readStore: readStore,
		deals:     deals,
		sweeper:   sweeper,
	}
}

// ListForDeal serves the owning vendor's acceptance view.
func (q *offerQueriesImpl) ListForDeal(ctx context.Context, dealID, actorID uuid.UUID) ([]*OfferView, error) {
	dealView, err := q.deals.GetByID(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if dealView.RequestedBy != actorID {
		return nil, ErrOfferAccess
	}

	offers, err := q.readStore.ListByDeal(ctx, dealID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return []*OfferView{}, nil
		}
		return nil, err
	}
	for _, o := range offers {
		o.Outcome = DeriveOutcome(dealView.Status, dealView.AcceptedOfferID, o.ID)
	}
	return offers, nil
}

// DeriveOutcome adapts the domain's outcome derivation to the string
// columns read stores work with.
func DeriveOutcome(dealStatus string, acceptedOfferID *uuid.UUID, offerID uuid.UUID) string {
	return string(offer.OutcomeFor(offerID, deal.Status(dealStatus), acceptedOfferID))
}

func (q *offerQueriesImpl) ListMine(ctx context.Context, supplierID uuid.UUID) ([]*SupplierOfferView, error) {
	if _, err := q.sweeper.Sweep(ctx); err != nil {
		return nil, err
	}
	return q.readStore.ListBySupplier(ctx, supplierID)
}
