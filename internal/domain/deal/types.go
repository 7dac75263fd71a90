package deal

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyItemName          = errors.New("item name cannot be empty")
	ErrItemNameTooLong        = errors.New("item name exceeds maximum length")
	ErrNonPositiveQuantity    = errors.New("quantity must be a positive number")
	ErrInvalidUnit            = errors.New("invalid unit")
	ErrDeadlineNotInFuture    = errors.New("deadline must be in the future")
	ErrDealNotOpen            = errors.New("deal is not open for contributions")
	ErrDealNotReady           = errors.New("deal is not ready for supplier offers")
	ErrDealNotAcceptingOffers = errors.New("deal is not accepting offers")
	ErrDealClosed             = errors.New("deal is already closed")
	ErrNotDealOwner           = errors.New("only the requesting vendor may accept an offer")
)

// Status is the deal lifecycle state. Transitions are monotonic:
// open → ready_for_supplier_offer → closed_accepted, with closed_expired
// reachable from either non-terminal state once the deadline has passed.
type Status string

const (
	StatusOpen           Status = "open"
	StatusReadyForOffer  Status = "ready_for_supplier_offer"
	StatusClosedAccepted Status = "closed_accepted"
	StatusClosedExpired  Status = "closed_expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusReadyForOffer, StatusClosedAccepted, StatusClosedExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusClosedAccepted || s == StatusClosedExpired
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid deal status %q", s)
	}
	return status, nil
}

// OverContributionError rejects a contribution that would push the
// collected quantity past the target. Remaining reports how much the
// caller could still pledge.
type OverContributionError struct {
	Remaining float64
	Unit      Unit
}

func (e *OverContributionError) Error() string {
	return fmt.Sprintf("contribution exceeds the remaining quantity for this deal (%.2f %s left)", e.Remaining, e.Unit)
}
