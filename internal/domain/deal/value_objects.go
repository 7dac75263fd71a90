package deal

import "strings"

const MaxItemNameLength = 200

type ItemName struct {
	value string
}

func NewItemName(s string) (ItemName, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return ItemName{}, ErrEmptyItemName
	}
	if len(t) > MaxItemNameLength {
		return ItemName{}, ErrItemNameTooLong
	}
	return ItemName{value: t}, nil
}

func (n ItemName) String() string { return n.value }

// Quantity is a positive decimal amount of a deal's unit.
type Quantity struct {
	value float64
}

func NewQuantity(v float64) (Quantity, error) {
	if v <= 0 {
		return Quantity{}, ErrNonPositiveQuantity
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Value() float64 { return q.value }

type Unit string

const (
	UnitKg    Unit = "kg"
	UnitDozen Unit = "dozen"
	UnitPiece Unit = "piece"
	UnitLiter Unit = "liter"
)

func (u Unit) String() string {
	return string(u)
}

func (u Unit) IsValid() bool {
	switch u {
	case UnitKg, UnitDozen, UnitPiece, UnitLiter:
		return true
	default:
		return false
	}
}

func NewUnit(s string) (Unit, error) {
	unit := Unit(s)
	if !unit.IsValid() {
		return "", ErrInvalidUnit
	}
	return unit, nil
}
