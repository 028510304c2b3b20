package components

import (
	"slotbooking/internal/handler"
	"slotbooking/internal/handler/api"
	"slotbooking/internal/handler/middleware"
	"slotbooking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSlotsHandler,
		api.NewAuthHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit)
}
