package deal

import (
	"time"

	"sabzi/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock clock.Clock
}

// Acceptance records the closing offer. Set exactly once, when the deal
// transitions to closed_accepted.
type Acceptance struct {
	OfferID      uuid.UUID
	PricePerUnit float64
	ByVendorID   uuid.UUID
	SupplierID   uuid.UUID
}

// Deal is a group-buy request owned by the vendor who created it.
// currentQuantity never exceeds targetQuantity; the guard runs at
// contribution time, never retroactively.
type Deal struct {
	id              uuid.UUID
	itemName        ItemName
	targetQuantity  Quantity
	currentQuantity float64
	unit            Unit
	deadline        time.Time
	requestedBy     uuid.UUID
	status          Status
	acceptance      *Acceptance
	closedAt        *time.Time
	createdAt       time.Time
}

func NewDeal(services *Services, requestedBy uuid.UUID, itemName ItemName, target Quantity, unit Unit, deadline time.Time) (*Deal, error) {
	now := services.Clock.Now()
	if !deadline.After(now) {
		return nil, ErrDeadlineNotInFuture
	}

	return &Deal{
		id:             uuid.New(),
		itemName:       itemName,
		targetQuantity: target,
		unit:           unit,
		deadline:       deadline,
		requestedBy:    requestedBy,
		status:         StatusOpen,
		createdAt:      now,
	}, nil
}

func ReconstructDeal(
	id uuid.UUID,
	itemName ItemName,
	target Quantity,
	current float64,
	unit Unit,
	deadline time.Time,
	requestedBy uuid.UUID,
	status Status,
	acceptance *Acceptance,
	closedAt *time.Time,
	createdAt time.Time,
) *Deal {
	return &Deal{
		id:              id,
		itemName:        itemName,
		targetQuantity:  target,
		currentQuantity: current,
		unit:            unit,
		deadline:        deadline,
		requestedBy:     requestedBy,
		status:          status,
		acceptance:      acceptance,
		closedAt:        closedAt,
		createdAt:       createdAt,
	}
}

func (d *Deal) ID() uuid.UUID            { return d.id }
func (d *Deal) ItemName() ItemName       { return d.itemName }
func (d *Deal) TargetQuantity() Quantity { return d.targetQuantity }
func (d *Deal) CurrentQuantity() float64 { return d.currentQuantity }
func (d *Deal) Unit() Unit               { return d.unit }
func (d *Deal) Deadline() time.Time      { return d.deadline }
func (d *Deal) RequestedBy() uuid.UUID   { return d.requestedBy }
func (d *Deal) Status() Status           { return d.status }
func (d *Deal) Acceptance() *Acceptance  { return d.acceptance }
func (d *Deal) ClosedAt() *time.Time     { return d.closedAt }
func (d *Deal) CreatedAt() time.Time     { return d.createdAt }

func (d *Deal) IsActive() bool {
	return d.status == StatusOpen || d.status == StatusReadyForOffer
}

func (d *Deal) Remaining() float64 {
	return d.targetQuantity.Value() - d.currentQuantity
}

func (d *Deal) HasExpired(now time.Time) bool {
	return d.IsActive() && now.After(d.deadline)
}

// Contribute applies a pledge to the deal. The caller is responsible for
// holding the deal row exclusively for the duration of the mutation.
func (d *Deal) Contribute(q Quantity, now time.Time) error {
	if now.After(d.deadline) {
		return ErrDealClosed
	}
	if d.status != StatusOpen {
		return ErrDealNotOpen
	}

	newQuantity := d.currentQuantity + q.Value()
	if newQuantity > d.targetQuantity.Value() {
		return &OverContributionError{Remaining: d.Remaining(), Unit: d.unit}
	}

	d.currentQuantity = newQuantity
	if newQuantity >= d.targetQuantity.Value() {
		d.status = StatusReadyForOffer
	}
	return nil
}

// TargetMet reports whether the collected quantity has reached the target.
func (d *Deal) TargetMet() bool {
	return d.currentQuantity >= d.targetQuantity.Value()
}

// Expire transitions an overdue deal to closed_expired. Expiring a deal
// that is already terminal is a no-op, so concurrent sweepers never
// conflict.
func (d *Deal) Expire(now time.Time) bool {
	if !d.HasExpired(now) {
		return false
	}
	d.status = StatusClosedExpired
	d.closedAt = &now
	return true
}

// CanReceiveOffers reports whether a supplier may submit an offer.
// Offers against a still-open deal are accepted speculatively and become
// actionable once the deal flips to ready_for_supplier_offer.
func (d *Deal) CanReceiveOffers() bool {
	return d.status == StatusOpen || d.status == StatusReadyForOffer
}

// AcceptOffer closes the deal on the given offer. Only the owning vendor
// may accept, and only while the deal is ready_for_supplier_offer; any
// later attempt fails because the deal has left that state.
func (d *Deal) AcceptOffer(actorID, offerID, supplierID uuid.UUID, pricePerUnit float64, now time.Time) error {
	if actorID != d.requestedBy {
		return ErrNotDealOwner
	}
	if d.status != StatusReadyForOffer {
		return ErrDealNotReady
	}

	d.status = StatusClosedAccepted
	d.acceptance = &Acceptance{
		OfferID:      offerID,
		PricePerUnit: pricePerUnit,
		ByVendorID:   actorID,
		SupplierID:   supplierID,
	}
	d.closedAt = &now
	return nil
}
