package components

import (
	"log/slog"

	"slotbooking/internal/pkg/clock"
	"slotbooking/internal/pkg/config"
	"slotbooking/internal/pkg/jwt"
	"slotbooking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewAvailabilityQueries,
		NewBookingCommands,
		usecase.NewCancellationCommands,
		usecase.NewAdminCommands,
		NewAuthCommands,
		usecase.NewTokenValidator,
	),
)

func NewBookingCommands(
	slots usecase.SlotRepository,
	signups usecase.SignupRepository,
	committer usecase.BookingCommitter,
	guard usecase.PermitGuard,
	cache *usecase.AvailabilityCache,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) usecase.BookingCommands {
	return usecase.NewBookingCommands(slots, signups, committer, guard, cache, clk, cfg.Booking.MaxSlotsPerRequest, logger)
}

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service) usecase.AuthCommands {
	return usecase.NewAuthCommands(cfg.Auth, jwtService)
}
