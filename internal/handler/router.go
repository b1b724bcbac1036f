package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tablebook/internal/handler/api"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	reservationHandler *api.ReservationHandler,
	menuHandler *api.MenuHandler,
	orderHandler *api.OrderHandler,
	chatHandler *api.ChatHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, availabilityHandler, reservationHandler, menuHandler, orderHandler, chatHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	reservationHandler *api.ReservationHandler,
	menuHandler *api.MenuHandler,
	orderHandler *api.OrderHandler,
	chatHandler *api.ChatHandler,
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
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		restaurants := apiGroup.Group("/restaurants/:id")
		{
			// Customer-facing endpoints: no authentication.
			addRoutes(restaurants, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.CheckAvailability},
				{Method: http.MethodPost, Path: "/reservations", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "/menu", Handler: menuHandler.GetMenu},
				{Method: http.MethodPost, Path: "/orders", Handler: orderHandler.CreateOrder},
				{Method: http.MethodPost, Path: "/chat", Handler: chatHandler.Chat},
			})

			// Dashboard endpoints: staff of this restaurant only.
			staffOnly := restaurants.Group("")
			staffOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRestaurant())
			addRoutes(staffOnly, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: reservationHandler.ListReservations},
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

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		group.Handle(r.Method, r.Path, handlers...)
	}
}
