package queries

import (
	"context"

	"sabzi/internal/pkg/clock"
	"sabzi/internal/usecase/shared"
)

// Sweeper runs the lazy expiry pass: one conditional UPDATE closes every
// overdue non-terminal deal. Idempotent, so reads, the background worker
// and concurrent requests can all run it without coordination.
type Sweeper struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSweeper(uow shared.UnitOfWork, clk clock.Clock) *Sweeper {
	return &Sweeper{uow: uow, clock: clk}
}

func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	var expired int
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Deals().ExpireOverdue(ctx, tx.DB(), s.clock.Now())
		if err != nil {
			return err
		}
		expired = len(ids)
		for _, id := range ids {
			if err := tx.Events().DealChanged(ctx, tx.DB(), id); err != nil {
				return err
			}
		}
		return nil
	})
	return expired, err
}
