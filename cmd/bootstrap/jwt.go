package bootstrap

import (
	"slotbooking/internal/pkg/config"
	"slotbooking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
		NewCookieConfig,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}

func NewCookieConfig(cfg config.Config) config.CookieConfig {
	return cfg.Cookie()
}
