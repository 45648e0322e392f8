package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"court-slot-engine/internal/domain/user"
	"court-slot-engine/internal/handler/api"
	"court-slot-engine/internal/handler/middleware"
	"court-slot-engine/internal/pkg/config"
	"court-slot-engine/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Resource  *api.ResourceHandler
	Slot      *api.SlotHandler
	Booking   *api.BookingHandler
	Report    *api.ReportHandler
	Promotion *api.PromotionHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, h Handlers, auth *middleware.AuthMiddleware) error {
	if err := setupMiddleware(engine, cfg, logger, m); err != nil {
		return err
	}
	setupRoutes(engine, cfg, m, h, auth)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) error {
	corsMiddleware, err := middleware.NewCORSMiddleware(cfg.CORS)
	if err != nil {
		return err
	}

	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(corsMiddleware)
	engine.Use(logger.LoggingMiddleware())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware(m))
	}
	engine.Use(middleware.ErrorHandler())
	return nil
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers, auth *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireOwner := auth.RequireRole(user.RoleOwner, user.RoleAdmin)
	requireCustomer := auth.RequireRole(user.RoleCustomer)

	apiGroup := engine.Group("/api")
	{
		resources := apiGroup.Group("/resources")
		{
			addRoutes(resources, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Resource.Get},
				{Method: http.MethodGet, Path: "/:id/schedules", Handler: h.Resource.ListSchedules},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: h.Slot.List},
				{Method: http.MethodGet, Path: "/:id/price", Handler: h.Slot.Quote},
			})

			managed := resources.Group("")
			managed.Use(auth.RequireAuth(), requireOwner)
			addRoutes(managed, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Resource.Create},
				{Method: http.MethodPatch, Path: "/:id/policy", Handler: h.Resource.UpdatePolicy},
				{Method: http.MethodPost, Path: "/:id/schedules", Handler: h.Resource.AddSchedule},
				{Method: http.MethodDelete, Path: "/:id/schedules/:scheduleId", Handler: h.Resource.RemoveSchedule},
				{Method: http.MethodPut, Path: "/:id/slots/:date/:start/maintenance", Handler: h.Slot.SetMaintenance},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(auth.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{requireCustomer}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel},
			})
		}

		managedOnly := apiGroup.Group("")
		managedOnly.Use(auth.RequireAuth(), requireOwner)
		{
			addRoutes(managedOnly, []route{
				{Method: http.MethodGet, Path: "/reports/revenue", Handler: h.Report.Revenue},
				{Method: http.MethodPost, Path: "/promotions", Handler: h.Promotion.Create},
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
