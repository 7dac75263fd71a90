package queries

import (
	"sabzi/internal/pkg/errs"
)

var (
	ErrDealNotFound = errs.New("deal not found")
	ErrOfferAccess  = errs.New("offer access denied")
	ErrUserNotFound = errs.New("user not found")
	ErrInvalidMode  = errs.New("invalid list mode")
)

// UnknownUserEmail stands in when a contributor or supplier row cannot
// be resolved; identity display never fails a query.
const UnknownUserEmail = "Unknown User"

// ListMode selects whose deals a vendor board shows.
type ListMode string

const (
	ModeAll  ListMode = "all"
	ModeMine ListMode = "mine"
)

func NewListMode(s string) (ListMode, error) {
	switch ListMode(s) {
	case ModeAll, ModeMine:
		return ListMode(s), nil
	case "":
		return ModeAll, nil
	default:
		return "", ErrInvalidMode
	}
}
