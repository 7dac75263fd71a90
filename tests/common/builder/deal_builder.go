//go:build unit || e2e

package builder

import (
	"time"

	domdeal "sabzi/internal/domain/deal"
	reqdto "sabzi/internal/handler/dto/request"
	sqlc "sabzi/internal/infra/sqlc/generated"
	"sabzi/internal/pkg/clock"
	"sabzi/internal/pkg/pgconv"
	"sabzi/internal/usecase/queries"

	"github.com/google/uuid"
)

// BaseTime anchors deterministic deal scenarios.
var BaseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type DealBuilder struct {
	ItemName        string
	TargetQuantity  float64
	CurrentQuantity float64
	Unit            string
	Deadline        time.Time
	RequestedBy     uuid.UUID
	Status          domdeal.Status
	Now             time.Time
}

func NewDealBuilder() *DealBuilder {
	return &DealBuilder{
		ItemName:       "Potatoes",
		TargetQuantity: 50,
		Unit:           "kg",
		Deadline:       BaseTime.Add(72 * time.Hour),
		RequestedBy:    uuid.New(),
		Status:         domdeal.StatusOpen,
		Now:            BaseTime,
	}
}

func (b *DealBuilder) With(mutate func(*DealBuilder)) *DealBuilder {
	mutate(b)
	return b
}

func (b *DealBuilder) BuildDomain() (*domdeal.Deal, error) {
	itemName, err := domdeal.NewItemName(b.ItemName)
	if err != nil {
		return nil, err
	}
	target, err := domdeal.NewQuantity(b.TargetQuantity)
	if err != nil {
		return nil, err
	}
	unit, err := domdeal.NewUnit(b.Unit)
	if err != nil {
		return nil, err
	}

	services := &domdeal.Services{Clock: clock.NewMockClock(b.Now)}
	return domdeal.NewDeal(services, b.RequestedBy, itemName, target, unit, b.Deadline)
}

// BuildReconstructed bypasses construction-time validation so tests can
// place a deal in any lifecycle state directly.
func (b *DealBuilder) BuildReconstructed() *domdeal.Deal {
	itemName, _ := domdeal.NewItemName(b.ItemName)
	target, _ := domdeal.NewQuantity(b.TargetQuantity)
	unit, _ := domdeal.NewUnit(b.Unit)

	return domdeal.ReconstructDeal(
		uuid.New(),
		itemName,
		target,
		b.CurrentQuantity,
		unit,
		b.Deadline,
		b.RequestedBy,
		b.Status,
		nil,
		nil,
		b.Now,
	)
}

func (b *DealBuilder) BuildCreateRequestDTO() reqdto.CreateDealRequest {
	return reqdto.CreateDealRequest{
		ItemName:       b.ItemName,
		TargetQuantity: b.TargetQuantity,
		Unit:           b.Unit,
		Deadline:       b.Deadline,
	}
}

func (b *DealBuilder) BuildViewQuery() *queries.DealView {
	return &queries.DealView{
		ID:               uuid.New(),
		ItemName:         b.ItemName,
		TargetQuantity:   b.TargetQuantity,
		CurrentQuantity:  b.CurrentQuantity,
		Unit:             b.Unit,
		Deadline:         b.Deadline,
		RequestedBy:      b.RequestedBy,
		RequestedByEmail: "vendor@example.com",
		Status:           string(b.Status),
		CreatedAt:        b.Now,
	}
}

func (b *DealBuilder) BuildInfra() sqlc.Deals {
	return sqlc.Deals{
		ID:              uuid.New(),
		ItemName:        b.ItemName,
		TargetQuantity:  pgconv.Float64ToNumeric(b.TargetQuantity),
		CurrentQuantity: pgconv.Float64ToNumeric(b.CurrentQuantity),
		Unit:            b.Unit,
		Deadline:        pgconv.TimeToPgtype(b.Deadline),
		RequestedBy:     b.RequestedBy,
		Status:          string(b.Status),
		CreatedAt:       pgconv.TimeToPgtype(b.Now),
	}
}
