package components

import (
	"log/slog"

	"slotbooking/internal/infra/rowstore"
	"slotbooking/internal/infra/sheetrepo"
	"slotbooking/internal/pkg/config"
	"slotbooking/internal/usecase"

	"go.uber.org/fx"
)

// The committer consumes the concrete repositories for their op builders,
// so the concretes stay in the graph and the usecase ports are bound on
// top of them.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSlotRepository,
		NewSignupRepository,
		NewCommitter,
		func(r *sheetrepo.SlotRepository) usecase.SlotRepository { return r },
		func(r *sheetrepo.SignupRepository) usecase.SignupRepository { return r },
		func(c *sheetrepo.Committer) usecase.BookingCommitter { return c },
	),
)

func NewSlotRepository(gw rowstore.Gateway, cfg config.Config, logger *slog.Logger) *sheetrepo.SlotRepository {
	return sheetrepo.NewSlotRepository(gw, cfg.RowStore.SlotsSheet, logger)
}

func NewSignupRepository(gw rowstore.Gateway, cfg config.Config) *sheetrepo.SignupRepository {
	return sheetrepo.NewSignupRepository(gw, cfg.RowStore.SignupsSheet)
}

func NewCommitter(gw rowstore.Gateway, slots *sheetrepo.SlotRepository, signups *sheetrepo.SignupRepository) *sheetrepo.Committer {
	return sheetrepo.NewCommitter(gw, slots, signups)
}
