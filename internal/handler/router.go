package handler

import (
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slotbooking/internal/handler/api"
	"slotbooking/internal/handler/middleware"
	"slotbooking/internal/pkg/config"
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
	slotsHandler *api.SlotsHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, slotsHandler, authHandler, adminHandler, authMiddleware, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	slotsHandler *api.SlotsHandler,
	authHandler *api.AuthHandler,
	adminHandler *api.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", prometheusMetrics)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		slots := apiGroup.Group("/slots")
		{
			addRoutes(slots, []route{
				{Method: http.MethodGet, Path: "", Handler: slotsHandler.List},
				{Method: http.MethodPost, Path: "", Handler: slotsHandler.Create, Mw: []gin.HandlerFunc{rateLimiter.Limit()}},
				{Method: http.MethodPatch, Path: "", Handler: slotsHandler.Cancel},
			})
		}

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/slots", Handler: adminHandler.AddSlots},
				{Method: http.MethodDelete, Path: "/slots/:id", Handler: adminHandler.RemoveSlot},
			})
		}
	}
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		group.Handle(r.Method, r.Path, handlers...)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func prometheusMetrics(c *gin.Context) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	metrics.WritePrometheus(c.Writer, true)
}
