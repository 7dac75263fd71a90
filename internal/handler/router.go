package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sabzi/internal/domain/user"
	"sabzi/internal/handler/api"
	"sabzi/internal/handler/middleware"
	"sabzi/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	authHandler *api.AuthHandler,
	dealHandler *api.DealHandler,
	offerHandler *api.OfferHandler,
	eventsHandler *api.EventsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, authHandler, dealHandler, offerHandler, eventsHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	dealHandler *api.DealHandler,
	offerHandler *api.OfferHandler,
	eventsHandler *api.EventsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		vendorOnly := authMiddleware.RequireRole(user.RoleVendor)
		supplierOnly := authMiddleware.RequireRole(user.RoleSupplier)

		deals := apiGroup.Group("/deals")
		deals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(deals, []route{
				{Method: http.MethodPost, Path: "", Handler: dealHandler.Create, Mw: []gin.HandlerFunc{vendorOnly}},
				{Method: http.MethodGet, Path: "", Handler: dealHandler.ListBoard},
				{Method: http.MethodGet, Path: "/ready", Handler: dealHandler.ListReady, Mw: []gin.HandlerFunc{supplierOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: dealHandler.Get},
				{Method: http.MethodGet, Path: "/:id/contributions", Handler: dealHandler.ListContributions},
				{Method: http.MethodPost, Path: "/:id/contributions", Handler: dealHandler.Contribute, Mw: []gin.HandlerFunc{vendorOnly}},
				{Method: http.MethodPost, Path: "/:id/offers", Handler: offerHandler.Submit, Mw: []gin.HandlerFunc{supplierOnly}},
				{Method: http.MethodGet, Path: "/:id/offers", Handler: offerHandler.ListForDeal, Mw: []gin.HandlerFunc{vendorOnly}},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: offerHandler.Accept, Mw: []gin.HandlerFunc{vendorOnly}},
			})
		}

		offers := apiGroup.Group("/offers")
		offers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(offers, []route{
				{Method: http.MethodGet, Path: "", Handler: offerHandler.ListMine, Mw: []gin.HandlerFunc{supplierOnly}},
			})
		}

		events := apiGroup.Group("/events")
		events.Use(authMiddleware.RequireAuth())
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "/deals", Handler: eventsHandler.StreamDeals},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
