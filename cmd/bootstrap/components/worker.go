package components

import (
	"context"

	"sabzi/internal/infra/listen"
	"sabzi/internal/pkg/config"
	"sabzi/internal/usecase/queries"
	"sabzi/internal/worker"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(sweeper *queries.Sweeper, cfg config.Config) *worker.ExpirySweeper {
			return worker.NewExpirySweeper(sweeper, cfg.Sweep.Interval)
		},
	),
	fx.Invoke(runBackground),
)

// runBackground ties the notification listener and the expiry sweeper to
// the fx lifecycle. Both run until shutdown; neither failing takes the
// process down because reads still self-heal via the lazy sweep.
func runBackground(lc fx.Lifecycle, hub *listen.Hub, sweeper *worker.ExpirySweeper) {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			g.Go(func() error {
				return hub.Run(ctx)
			})
			g.Go(func() error {
				return sweeper.Run(ctx)
			})
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			_ = g.Wait()
			return nil
		},
	})
}
