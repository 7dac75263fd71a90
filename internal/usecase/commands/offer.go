package commands

import (
	"context"

	"sabzi/internal/domain/deal"
	"sabzi/internal/domain/offer"
	"sabzi/internal/pkg/clock"
	"sabzi/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitOfferResult struct {
	OfferID    uuid.UUID
	TotalPrice float64
}

type SubmitOfferRequest struct {
	PricePerUnit float64
	Notes        string
}

type OfferCommands interface {
	SubmitOffer(ctx context.Context, dealID uuid.UUID, req SubmitOfferRequest, supplierID uuid.UUID) (*SubmitOfferResult, error)
	AcceptOffer(ctx context.Context, dealID, offerID, actorID uuid.UUID) error
}

type offerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferCommands(uow shared.UnitOfWork, clk clock.Clock) OfferCommands {
	return &offerCommandsImpl{uow: uow, clock: clk}
}

func (uc *offerCommandsImpl) SubmitOffer(ctx context.Context, dealID uuid.UUID, req SubmitOfferRequest, supplierID uuid.UUID) (*SubmitOfferResult, error) {
	price, err := offer.NewPricePerUnit(req.PricePerUnit)
	if err != nil {
		return nil, err
	}
	notes := offer.NewNotes(req.Notes)

	// The overdue rejection is surfaced after the commit so the expiry
	// settlement is not rolled back with it.
	var result SubmitOfferResult
	var overdueErr error
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		overdueErr = nil // the retry loop may re-run this closure

		d, derr := tx.Deals().LockByID(ctx, tx.DB(), dealID)
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		if d.Expire(now) {
			if derr = tx.Deals().SaveExpiry(ctx, tx.DB(), d); derr != nil {
				return derr
			}
			overdueErr = deal.ErrDealNotAcceptingOffers
			return tx.Events().DealChanged(ctx, tx.DB(), dealID)
		}

		o, derr := offer.NewOffer(d, supplierID, price, notes, now)
		if derr != nil {
			return derr
		}

		id, derr := tx.Offers().Create(ctx, tx.DB(), o)
		if derr != nil {
			return derr
		}
		result = SubmitOfferResult{OfferID: id, TotalPrice: o.TotalPrice()}
		return tx.Events().DealChanged(ctx, tx.DB(), dealID)
	})
	if err != nil {
		return nil, err
	}
	if overdueErr != nil {
		return nil, overdueErr
	}
	return &result, nil
}

// AcceptOffer closes the deal on the chosen offer. The accepted price
// and supplier come from the stored offer row, never from the request.
func (uc *offerCommandsImpl) AcceptOffer(ctx context.Context, dealID, offerID, actorID uuid.UUID) error {
	var overdueErr error
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		overdueErr = nil // the retry loop may re-run this closure

		d, derr := tx.Deals().LockByID(ctx, tx.DB(), dealID)
		if derr != nil {
			return derr
		}

		now := uc.clock.Now()
		if d.Expire(now) {
			if derr = tx.Deals().SaveExpiry(ctx, tx.DB(), d); derr != nil {
				return derr
			}
			overdueErr = deal.ErrDealNotReady
			return tx.Events().DealChanged(ctx, tx.DB(), dealID)
		}

		o, derr := tx.Offers().FindForDeal(ctx, tx.DB(), offerID, dealID)
		if derr != nil {
			return derr
		}

		if derr = d.AcceptOffer(actorID, o.ID(), o.SupplierID(), o.PricePerUnit().Value(), now); derr != nil {
			return derr
		}
		if derr = tx.Deals().SaveAcceptance(ctx, tx.DB(), d); derr != nil {
			return derr
		}
		return tx.Events().DealChanged(ctx, tx.DB(), dealID)
	})
	if err != nil {
		return err
	}
	return overdueErr
}
