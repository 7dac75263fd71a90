package repository

import (
	"context"

	"sabzi/internal/domain/offer"
	"sabzi/internal/infra"
	"sabzi/internal/infra/repository/converter"
	sqlc "sabzi/internal/infra/sqlc/generated"
	"sabzi/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OfferWriteQueries interface {
	CreateOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOfferParams) (sqlc.Offers, error)
	GetOfferForDeal(ctx context.Context, db sqlc.DBTX, arg sqlc.GetOfferForDealParams) (sqlc.Offers, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
}

func NewOfferRepository(queries OfferWriteQueries) *OfferRepository {
	return &OfferRepository{queries: queries}
}

func (r *OfferRepository) Create(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) (uuid.UUID, error) {
	row, err := r.queries.CreateOffer(ctx, tx, converter.OfferToCreateParams(o))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create offer", err)
	}
	return row.ID, nil
}

func (r *OfferRepository) FindForDeal(ctx context.Context, tx sqlc.DBTX, offerID, dealID uuid.UUID) (*offer.Offer, error) {
	row, err := r.queries.GetOfferForDeal(ctx, tx, sqlc.GetOfferForDealParams{
		ID:     offerID,
		DealID: dealID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found for deal", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get offer", err)
	}

	o, err := converter.OfferFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert offer row", err)
	}
	return o, nil
}
