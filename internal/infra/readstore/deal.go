package readstore

import (
	"context"

	"sabzi/internal/infra"
	sqlc "sabzi/internal/infra/sqlc/generated"
	"sabzi/internal/pkg/pgconv"
	"sabzi/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealViewQueries interface {
	GetDealByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Deals, error)
	ListDeals(ctx context.Context, db sqlc.DBTX) ([]sqlc.Deals, error)
	ListDealsByStatus(ctx context.Context, db sqlc.DBTX, status string) ([]sqlc.Deals, error)
	ListContributionsByDeal(ctx context.Context, db sqlc.DBTX, dealID uuid.UUID) ([]sqlc.ListContributionsByDealRow, error)
}

type DealReadStore struct {
	queries DealViewQueries
	db      sqlc.DBTX
}

func NewDealReadStore(queries DealViewQueries, db sqlc.DBTX) *DealReadStore {
	return &DealReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *DealReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DealView, error) {
	row, err := r.queries.GetDealByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get deal by id", err)
	}
	return dealViewFromRow(row)
}

func (r *DealReadStore) ListAll(ctx context.Context) ([]*queries.DealView, error) {
	rows, err := r.queries.ListDeals(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals", err)
	}
	return mapDealRows(rows)
}

func (r *DealReadStore) ListByStatus(ctx context.Context, status string) ([]*queries.DealView, error) {
	rows, err := r.queries.ListDealsByStatus(ctx, r.db, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list deals by status", err)
	}
	return mapDealRows(rows)
}

func (r *DealReadStore) ListContributionsByDeal(ctx context.Context, dealID uuid.UUID) ([]*queries.ContributionView, error) {
	rows, err := r.queries.ListContributionsByDeal(ctx, r.db, dealID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contributions", err)
	}

	result := make([]*queries.ContributionView, len(rows))
	for i, row := range rows {
		quantity, err := pgconv.Float64FromNumeric(row.Quantity)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid quantity in contribution row", err)
		}
		result[i] = &queries.ContributionView{
			ID:               row.ID,
			DealID:           row.DealID,
			ContributorID:    row.ContributorID,
			ContributorEmail: row.ContributorEmail,
			Quantity:         quantity,
			Unit:             row.Unit,
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func mapDealRows(rows []sqlc.Deals) ([]*queries.DealView, error) {
	result := make([]*queries.DealView, len(rows))
	for i, row := range rows {
		view, err := dealViewFromRow(row)
		if err != nil {
			return nil, err
		}
		result[i] = view
	}
	return result, nil
}

func dealViewFromRow(row sqlc.Deals) (*queries.DealView, error) {
	target, err := pgconv.Float64FromNumeric(row.TargetQuantity)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid target quantity in deal row", err)
	}
	current, err := pgconv.Float64FromNumeric(row.CurrentQuantity)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid current quantity in deal row", err)
	}
	acceptedPrice, err := pgconv.Float64PtrFromNumeric(row.AcceptedPricePerUnit)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid accepted price in deal row", err)
	}

	return &queries.DealView{
		ID:                   row.ID,
		ItemName:             row.ItemName,
		TargetQuantity:       target,
		CurrentQuantity:      current,
		Unit:                 row.Unit,
		Deadline:             pgconv.TimeFromPgtype(row.Deadline),
		RequestedBy:          row.RequestedBy,
		Status:               row.Status,
		AcceptedOfferID:      pgconv.UUIDPtrFromPgtype(row.AcceptedOfferID),
		AcceptedPricePerUnit: acceptedPrice,
		AcceptedSupplierID:   pgconv.UUIDPtrFromPgtype(row.AcceptedSupplierID),
		ClosedAt:             pgconv.TimePtrFromPgtype(row.ClosedAt),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
