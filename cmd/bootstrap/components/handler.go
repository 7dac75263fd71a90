package components

import (
	"sabzi/internal/handler"
	"sabzi/internal/handler/api"
	"sabzi/internal/handler/middleware"
	"sabzi/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewDealHandler,
		api.NewOfferHandler,
		api.NewEventsHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.Logger {
			return middleware.NewLogger(cfg.Log)
		},
	),
	fx.Invoke(handler.NewRouter),
)
