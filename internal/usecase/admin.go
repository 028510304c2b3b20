package usecase

import (
	"context"
	"log/slog"

	"slotbooking/internal/domain/slot"
	"slotbooking/internal/pkg/errs"
)

type NewSlotParams struct {
	Date     string
	Label    string
	Capacity int
}

type AdminCommands interface {
	AddSlots(ctx context.Context, params []NewSlotParams) (int, error)
	RemoveSlot(ctx context.Context, id slot.ID) error
}

type adminCommandsImpl struct {
	slots  SlotRepository
	cache  *AvailabilityCache
	logger *slog.Logger
}

func NewAdminCommands(slots SlotRepository, cache *AvailabilityCache, logger *slog.Logger) AdminCommands {
	return &adminCommandsImpl{slots: slots, cache: cache, logger: logger}
}

// AddSlots appends slot rows in one batch. All rows are validated up
// front; a single malformed row rejects the whole request.
func (a *adminCommandsImpl) AddSlots(ctx context.Context, params []NewSlotParams) (int, error) {
	if len(params) == 0 {
		return 0, errs.Mark(errs.New("at least one slot is required"), ErrValidation)
	}

	rows := make([]slot.Slot, len(params))
	for i, p := range params {
		s, err := slot.New(0, p.Date, p.Label, p.Capacity, 0)
		if err != nil {
			return 0, errs.Mark(err, ErrValidation)
		}
		rows[i] = s
	}

	if err := a.slots.Append(ctx, rows); err != nil {
		return 0, errs.Mark(err, ErrStoreFailure)
	}

	a.cache.Invalidate()
	a.logger.Info("slots added", "count", len(rows))
	return len(rows), nil
}

// RemoveSlot deletes one slot row. Signups pointing at it keep their
// denormalized date and label, which is all cancellation needs.
func (a *adminCommandsImpl) RemoveSlot(ctx context.Context, id slot.ID) error {
	if err := a.slots.Remove(ctx, id); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	a.cache.Invalidate()
	a.logger.Info("slot removed", "slot_id", int(id))
	return nil
}
