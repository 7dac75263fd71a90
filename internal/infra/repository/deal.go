package repository

import (
	"context"
	"time"

	"sabzi/internal/domain/deal"
	"sabzi/internal/infra"
	"sabzi/internal/infra/repository/converter"
	sqlc "sabzi/internal/infra/sqlc/generated"
	"sabzi/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DealWriteQueries interface {
	CreateDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDealParams) (sqlc.Deals, error)
	GetDealForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	UpdateDealProgress(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateDealProgressParams) (int64, error)
	AcceptDealOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.AcceptDealOfferParams) (int64, error)
	ExpireDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireDealParams) (int64, error)
	ExpireOverdueDeals(ctx context.Context, db sqlc.DBTX, closedAt pgtype.Timestamptz) ([]uuid.UUID, error)
}

type DealRepository struct {
	queries DealWriteQueries
}

func NewDealRepository(queries DealWriteQueries) *DealRepository {
	return &DealRepository{queries: queries}
}

func (r *DealRepository) Create(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) (uuid.UUID, error) {
	row, err := r.queries.CreateDeal(ctx, tx, converter.DealToCreateParams(d))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create deal", err)
	}
	return row.ID, nil
}

func (r *DealRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*deal.Deal, error) {
	row, err := r.queries.GetDealForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock deal", err)
	}

	d, err := converter.DealFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert deal row", err)
	}
	return d, nil
}

// SaveProgress persists the collected quantity and any open → ready
// transition. The WHERE clause keeps the update monotonic; zero rows
// means the deal left the open state under our feet.
func (r *DealRepository) SaveProgress(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error {
	rows, err := r.queries.UpdateDealProgress(ctx, tx, sqlc.UpdateDealProgressParams{
		ID:              d.ID(),
		CurrentQuantity: pgconv.Float64ToNumeric(d.CurrentQuantity()),
		Status:          d.Status().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update deal progress", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("deal is no longer open", nil, infra.KindConflict)
	}
	return nil
}

func (r *DealRepository) SaveAcceptance(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error {
	acc := d.Acceptance()
	if acc == nil {
		return infra.WrapRepoErr("deal has no acceptance to save", nil, infra.KindConflict)
	}

	rows, err := r.queries.AcceptDealOffer(ctx, tx, sqlc.AcceptDealOfferParams{
		ID:                   d.ID(),
		AcceptedOfferID:      pgconv.UUIDToPgtype(acc.OfferID),
		AcceptedPricePerUnit: pgconv.Float64ToNumeric(acc.PricePerUnit),
		AcceptedByVendorID:   pgconv.UUIDToPgtype(acc.ByVendorID),
		AcceptedSupplierID:   pgconv.UUIDToPgtype(acc.SupplierID),
		ClosedAt:             pgconv.TimePtrToPgtype(d.ClosedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to accept deal offer", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("deal is not ready for acceptance", nil, infra.KindConflict)
	}
	return nil
}

func (r *DealRepository) SaveExpiry(ctx context.Context, tx sqlc.DBTX, d *deal.Deal) error {
	rows, err := r.queries.ExpireDeal(ctx, tx, sqlc.ExpireDealParams{
		ID:       d.ID(),
		ClosedAt: pgconv.TimePtrToPgtype(d.ClosedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to expire deal", err)
	}
	// Zero rows means another writer already closed it, which is fine.
	_ = rows
	return nil
}

func (r *DealRepository) ExpireOverdue(ctx context.Context, tx sqlc.DBTX, now time.Time) ([]uuid.UUID, error) {
	ids, err := r.queries.ExpireOverdueDeals(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire overdue deals", err)
	}
	return ids, nil
}
