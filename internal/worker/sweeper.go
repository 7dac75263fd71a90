package worker

import (
	"context"
	"log/slog"
	"time"

	"sabzi/internal/usecase/queries"
)

// ExpirySweeper periodically settles overdue deals so expiry does not
// depend on someone reading the board. The statement it runs is the
// same idempotent UPDATE the read path uses.
type ExpirySweeper struct {
	sweeper  *queries.Sweeper
	interval time.Duration
}

func NewExpirySweeper(sweeper *queries.Sweeper, interval time.Duration) *ExpirySweeper {
	return &ExpirySweeper{
		sweeper:  sweeper,
		interval: interval,
	}
}

func (s *ExpirySweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			expired, err := s.sweeper.Sweep(ctx)
			if err != nil {
				slog.Error("expiry sweep failed", "error", err.Error())
				continue
			}
			if expired > 0 {
				slog.Info("expired overdue deals", "count", expired)
			}
		}
	}
}
