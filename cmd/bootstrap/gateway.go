package bootstrap

import (
	"log/slog"
	"time"

	"slotbooking/internal/infra/rowstore"
	"slotbooking/internal/pkg/clock"
	"slotbooking/internal/pkg/config"
	"slotbooking/internal/pkg/errs"
	"slotbooking/internal/pkg/permit"
	"slotbooking/internal/pkg/snapcache"
	"slotbooking/internal/usecase"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewGateway,
		NewClock,
		NewAvailabilityCache,
		fx.Annotate(
			NewPermitGuard,
			fx.As(new(usecase.PermitGuard)),
		),
	),
)

// NewGateway selects the row-store driver. The memory driver exists for
// local development and tests; production talks to the remote store.
func NewGateway(cfg config.Config, logger *slog.Logger) (rowstore.Gateway, error) {
	switch cfg.RowStore.Driver {
	case "http":
		if cfg.RowStore.BaseURL == "" {
			return nil, errs.New("ROWSTORE_BASE_URL is required for the http driver")
		}
		logger.Info("row store gateway initialized", "driver", "http", "base_url", cfg.RowStore.BaseURL)
		return rowstore.NewHTTPGateway(cfg.RowStore), nil
	case "memory":
		logger.Warn("row store gateway initialized with in-memory driver; data will not survive restarts")
		return rowstore.NewMemoryGateway(), nil
	default:
		return nil, errs.Newf("unknown row store driver %q", cfg.RowStore.Driver)
	}
}

func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := time.LoadLocation(cfg.Server.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid service timezone")
	}
	return clock.NewRealClock(loc), nil
}

func NewAvailabilityCache(cfg config.Config, clk clock.Clock) *usecase.AvailabilityCache {
	return snapcache.New[usecase.AvailabilityView](cfg.Cache.TTL, clk)
}

func NewPermitGuard(cfg config.Config) *permit.Guard {
	return permit.NewGuard(cfg.Guard.MaxInflightPerPhone)
}
