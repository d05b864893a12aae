package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"school-booking/internal/domain/user"
	"school-booking/internal/handler/api"
	"school-booking/internal/handler/middleware"
	"school-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Reservation  *api.ReservationHandler
	Resource     *api.ResourceHandler
	Settings     *api.SettingsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: handlers.Availability.GetDayAvailability},
		})

		resources := apiGroup.Group("/resources")
		{
			addRoutes(resources, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Resource.ListResources},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Resource.GetResource},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			staffOnly := authMiddleware.RequireRoleAtLeast(user.RoleStaff)
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: handlers.Reservation.GetUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Reservation.GetReservation},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: handlers.Reservation.CancelReservation},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: handlers.Reservation.ConfirmReservation, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		settings := apiGroup.Group("/settings")
		{
			adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "/operating-hours", Handler: handlers.Settings.GetOperatingHours},
				{Method: http.MethodPut, Path: "/operating-hours", Handler: handlers.Settings.UpdateOperatingHours, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodGet, Path: "/policy", Handler: handlers.Settings.GetPolicy},
				{Method: http.MethodPut, Path: "/policy", Handler: handlers.Settings.UpdatePolicy, Mw: []gin.HandlerFunc{adminOnly}},
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
