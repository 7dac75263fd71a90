package readstore

import (
	"context"

	"sabzi/internal/infra"
	sqlc "sabzi/internal/infra/sqlc/generated"
	"sabzi/internal/pkg/pgconv"
	"sabzi/internal/usecase/queries"

	"github.com/google/uuid"
)

type OfferViewQueries interface {
	ListOffersByDeal(ctx context.Context, db sqlc.DBTX, dealID uuid.UUID) ([]sqlc.ListOffersByDealRow, error)
	ListOffersBySupplier(ctx context.Context, db sqlc.DBTX, supplierID uuid.UUID) ([]sqlc.ListOffersBySupplierRow, error)
}

type OfferReadStore struct {
	queries OfferViewQueries
	db      sqlc.DBTX
}

func NewOfferReadStore(queries OfferViewQueries, db sqlc.DBTX) *OfferReadStore {
	return &OfferReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OfferReadStore) ListByDeal(ctx context.Context, dealID uuid.UUID) ([]*queries.OfferView, error) {
	rows, err := r.queries.ListOffersByDeal(ctx, r.db, dealID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers by deal", err)
	}

	result := make([]*queries.OfferView, len(rows))
	for i, row := range rows {
		price, err := pgconv.Float64FromNumeric(row.OfferPricePerUnit)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid price in offer row", err)
		}
		total, err := pgconv.Float64FromNumeric(row.TotalOfferPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid total price in offer row", err)
		}
		result[i] = &queries.OfferView{
			ID:            row.ID,
			DealID:        row.DealID,
			SupplierID:    row.SupplierID,
			SupplierEmail: row.SupplierEmail,
			PricePerUnit:  price,
			TotalPrice:    total,
			Notes:         row.OfferNotes,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *OfferReadStore) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*queries.SupplierOfferView, error) {
	rows, err := r.queries.ListOffersBySupplier(ctx, r.db, supplierID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers by supplier", err)
	}

	result := make([]*queries.SupplierOfferView, len(rows))
	for i, row := range rows {
		price, err := pgconv.Float64FromNumeric(row.OfferPricePerUnit)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid price in offer row", err)
		}
		total, err := pgconv.Float64FromNumeric(row.TotalOfferPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid total price in offer row", err)
		}
		dealTarget, err := pgconv.Float64FromNumeric(row.DealTargetQuantity)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid target quantity in offer row", err)
		}
		result[i] = &queries.SupplierOfferView{
			ID:                 row.ID,
			DealID:             row.DealID,
			DealItemName:       row.DealItemName,
			DealTargetQuantity: dealTarget,
			DealUnit:           row.DealUnit,
			DealStatus:         row.DealStatus,
			PricePerUnit:       price,
			TotalPrice:         total,
			Notes:              row.OfferNotes,
			Outcome:            queries.DeriveOutcome(row.DealStatus, pgconv.UUIDPtrFromPgtype(row.DealAcceptedOfferID), row.ID),
			CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
