package offer

import (
	"errors"
	"strings"
	"time"

	"sabzi/internal/domain/deal"

	"github.com/google/uuid"
)

var ErrNonPositivePrice = errors.New("offer price must be a positive number")

const MaxNotesLength = 500

// Derived per-offer outcome. Offer rows are never mutated after
// creation; the outcome is computed against the deal's accepted offer.
type Outcome string

const (
	OutcomePending  Outcome = "pending"
	OutcomeAccepted Outcome = "accepted"
	OutcomeRejected Outcome = "rejected"
)

type PricePerUnit struct {
	value float64
}

func NewPricePerUnit(v float64) (PricePerUnit, error) {
	if v <= 0 {
		return PricePerUnit{}, ErrNonPositivePrice
	}
	return PricePerUnit{value: v}, nil
}

func (p PricePerUnit) Value() float64 { return p.value }

type Notes struct {
	value string
}

func NewNotes(s string) Notes {
	t := strings.TrimSpace(s)
	if len(t) > MaxNotesLength {
		t = t[:MaxNotesLength]
	}
	return Notes{value: t}
}

func (n Notes) String() string { return n.value }

// Offer is a supplier's quote against a deal. The total is locked in at
// submission time from the deal's target quantity (contribution is
// capped at target, so target and final collected quantity agree at
// settlement).
type Offer struct {
	id           uuid.UUID
	dealID       uuid.UUID
	supplierID   uuid.UUID
	pricePerUnit PricePerUnit
	totalPrice   float64
	notes        Notes
	createdAt    time.Time
}

func NewOffer(d *deal.Deal, supplierID uuid.UUID, price PricePerUnit, notes Notes, now time.Time) (*Offer, error) {
	if !d.CanReceiveOffers() {
		return nil, deal.ErrDealNotAcceptingOffers
	}

	return &Offer{
		id:           uuid.New(),
		dealID:       d.ID(),
		supplierID:   supplierID,
		pricePerUnit: price,
		totalPrice:   price.Value() * d.TargetQuantity().Value(),
		notes:        notes,
		createdAt:    now,
	}, nil
}

func ReconstructOffer(id, dealID, supplierID uuid.UUID, price PricePerUnit, totalPrice float64, notes Notes, createdAt time.Time) *Offer {
	return &Offer{
		id:           id,
		dealID:       dealID,
		supplierID:   supplierID,
		pricePerUnit: price,
		totalPrice:   totalPrice,
		notes:        notes,
		createdAt:    createdAt,
	}
}

func (o *Offer) ID() uuid.UUID              { return o.id }
func (o *Offer) DealID() uuid.UUID          { return o.dealID }
func (o *Offer) SupplierID() uuid.UUID      { return o.supplierID }
func (o *Offer) PricePerUnit() PricePerUnit { return o.pricePerUnit }
func (o *Offer) TotalPrice() float64        { return o.totalPrice }
func (o *Offer) Notes() Notes               { return o.notes }
func (o *Offer) CreatedAt() time.Time       { return o.createdAt }

// OutcomeFor derives the offer's state from the owning deal: accepted
// when the deal closed on this offer, rejected when it closed on another
// one (or expired), pending while the deal is still active. Offer rows
// are immutable, so this is the only derivation.
func OutcomeFor(offerID uuid.UUID, dealStatus deal.Status, acceptedOfferID *uuid.UUID) Outcome {
	switch dealStatus {
	case deal.StatusClosedAccepted:
		if acceptedOfferID != nil && *acceptedOfferID == offerID {
			return OutcomeAccepted
		}
		return OutcomeRejected
	case deal.StatusClosedExpired:
		return OutcomeRejected
	default:
		return OutcomePending
	}
}
