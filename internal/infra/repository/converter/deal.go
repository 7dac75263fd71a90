package converter

import (
	"sabzi/internal/domain/deal"
	sqlc "sabzi/internal/infra/sqlc/generated"
	"sabzi/internal/pkg/errs"
	"sabzi/internal/pkg/pgconv"
)

func DealToCreateParams(d *deal.Deal) sqlc.CreateDealParams {
	return sqlc.CreateDealParams{
		ID:             d.ID(),
		ItemName:       d.ItemName().String(),
		TargetQuantity: pgconv.Float64ToNumeric(d.TargetQuantity().Value()),
		Unit:           d.Unit().String(),
		Deadline:       pgconv.TimeToPgtype(d.Deadline()),
		RequestedBy:    d.RequestedBy(),
		CreatedAt:      pgconv.TimeToPgtype(d.CreatedAt()),
	}
}

func DealFromRow(row sqlc.Deals) (*deal.Deal, error) {
	itemName, err := deal.NewItemName(row.ItemName)
	if err != nil {
		return nil, errs.Wrap(err, "invalid item name in deal row")
	}

	targetValue, err := pgconv.Float64FromNumeric(row.TargetQuantity)
	if err != nil {
		return nil, errs.Wrap(err, "invalid target quantity in deal row")
	}
	target, err := deal.NewQuantity(targetValue)
	if err != nil {
		return nil, errs.Wrap(err, "invalid target quantity in deal row")
	}

	current, err := pgconv.Float64FromNumeric(row.CurrentQuantity)
	if err != nil {
		return nil, errs.Wrap(err, "invalid current quantity in deal row")
	}

	unit, err := deal.NewUnit(row.Unit)
	if err != nil {
		return nil, errs.Wrap(err, "invalid unit in deal row")
	}

	status, err := deal.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrap(err, "invalid status in deal row")
	}

	acceptance, err := acceptanceFromRow(row)
	if err != nil {
		return nil, err
	}

	return deal.ReconstructDeal(
		row.ID,
		itemName,
		target,
		current,
		unit,
		pgconv.TimeFromPgtype(row.Deadline),
		row.RequestedBy,
		status,
		acceptance,
		pgconv.TimePtrFromPgtype(row.ClosedAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func acceptanceFromRow(row sqlc.Deals) (*deal.Acceptance, error) {
	offerID := pgconv.UUIDPtrFromPgtype(row.AcceptedOfferID)
	if offerID == nil {
		return nil, nil
	}

	price, err := pgconv.Float64PtrFromNumeric(row.AcceptedPricePerUnit)
	if err != nil {
		return nil, errs.Wrap(err, "invalid accepted price in deal row")
	}

	acc := &deal.Acceptance{OfferID: *offerID}
	if price != nil {
		acc.PricePerUnit = *price
	}
	if vendorID := pgconv.UUIDPtrFromPgtype(row.AcceptedByVendorID); vendorID != nil {
		acc.ByVendorID = *vendorID
	}
	if supplierID := pgconv.UUIDPtrFromPgtype(row.AcceptedSupplierID); supplierID != nil {
		acc.SupplierID = *supplierID
	}
	return acc, nil
}
