package commands

import (
	"context"
	"time"

	"sabzi/internal/domain/contribution"
	"sabzi/internal/domain/deal"
	"sabzi/internal/pkg/clock"
	"sabzi/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateDealResult struct {
	DealID uuid.UUID
}

type CreateDealRequest struct {
	ItemName       string
	TargetQuantity float64
	Unit           string
	Deadline       time.Time
}

type ContributeRequest struct {
	Quantity float64
}

type DealCommands interface {
	CreateDeal(ctx context.Context, req CreateDealRequest, vendorID uuid.UUID) (*CreateDealResult, error)
	Contribute(ctx context.Context, dealID uuid.UUID, req ContributeRequest, vendorID uuid.UUID) error
}

type dealCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDealCommands(uow shared.UnitOfWork, clk clock.Clock) DealCommands {
	return &dealCommandsImpl{uow: uow, clock: clk}
}

func (uc *dealCommandsImpl) CreateDeal(ctx context.Context, req CreateDealRequest, vendorID uuid.UUID) (*CreateDealResult, error) {
	itemName, err := deal.NewItemName(req.ItemName)
	if err != nil {
		return nil, err
	}
	target, err := deal.NewQuantity(req.TargetQuantity)
	if err != nil {
		return nil, err
	}
	unit, err := deal.NewUnit(req.Unit)
	if err != nil {
		return nil, err
	}

	services := &deal.Services{Clock: uc.clock}
	d, err := deal.NewDeal(services, vendorID, itemName, target, unit, req.Deadline)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Deals().Create(ctx, tx.DB(), d)
		if derr != nil {
			return derr
		}
		createdID = id
		return tx.Events().DealChanged(ctx, tx.DB(), id)
	})
	if err != nil {
		return nil, err
	}
	return &CreateDealResult{DealID: createdID}, nil
}

// Contribute applies a pledge in a single transaction: the deal row is
// locked, overdue deals are settled first, the guard runs against the
// locked row, and the quantity update plus the ledger append commit
// together or not at all. The overdue rejection is surfaced only after
// the transaction commits; returning it from inside would roll the
// expiry settlement back.
func (uc *dealCommandsImpl) Contribute(ctx context.Context, dealID uuid.UUID, req ContributeRequest, vendorID uuid.UUID) error {
	quantity, err := deal.NewQuantity(req.Quantity)
	if err != nil {
		return err
	}

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
			overdueErr = deal.ErrDealClosed
			return tx.Events().DealChanged(ctx, tx.DB(), dealID)
		}

		if derr = d.Contribute(quantity, now); derr != nil {
			return derr
		}
		if derr = tx.Deals().SaveProgress(ctx, tx.DB(), d); derr != nil {
			return derr
		}

		c := contribution.NewContribution(dealID, vendorID, quantity, d.Unit(), now)
		if _, derr = tx.Contributions().Create(ctx, tx.DB(), c); derr != nil {
			return derr
		}
		return tx.Events().DealChanged(ctx, tx.DB(), dealID)
	})
	if err != nil {
		return err
	}
	return overdueErr
}
