package converter

import (
	"sabzi/internal/domain/offer"
	sqlc "sabzi/internal/infra/sqlc/generated"
	"sabzi/internal/pkg/errs"
	"sabzi/internal/pkg/pgconv"
)

func OfferToCreateParams(o *offer.Offer) sqlc.CreateOfferParams {
	return sqlc.CreateOfferParams{
		ID:                o.ID(),
		DealID:            o.DealID(),
		SupplierID:        o.SupplierID(),
		OfferPricePerUnit: pgconv.Float64ToNumeric(o.PricePerUnit().Value()),
		TotalOfferPrice:   pgconv.Float64ToNumeric(o.TotalPrice()),
		OfferNotes:        o.Notes().String(),
		CreatedAt:         pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func OfferFromRow(row sqlc.Offers) (*offer.Offer, error) {
	priceValue, err := pgconv.Float64FromNumeric(row.OfferPricePerUnit)
	if err != nil {
		return nil, errs.Wrap(err, "invalid price in offer row")
	}
	price, err := offer.NewPricePerUnit(priceValue)
	if err != nil {
		return nil, errs.Wrap(err, "invalid price in offer row")
	}

	total, err := pgconv.Float64FromNumeric(row.TotalOfferPrice)
	if err != nil {
		return nil, errs.Wrap(err, "invalid total price in offer row")
	}

	return offer.ReconstructOffer(
		row.ID,
		row.DealID,
		row.SupplierID,
		price,
		total,
		offer.NewNotes(row.OfferNotes),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
