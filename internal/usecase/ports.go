package usecase

import (
	"context"

	"slotbooking/internal/domain/signup"
	"slotbooking/internal/domain/slot"
	"slotbooking/internal/pkg/snapcache"
)

// Write-side ports. The sheet-backed implementations live in
// internal/infra/sheetrepo; tests use the in-memory gateway behind the
// same implementations.

type SlotRepository interface {
	FindAll(ctx context.Context) ([]slot.Slot, error)
	FindByIDs(ctx context.Context, ids []slot.ID) (map[slot.ID]slot.Slot, error)
	Append(ctx context.Context, slots []slot.Slot) error
	Remove(ctx context.Context, id slot.ID) error
}

type SignupRepository interface {
	FindAll(ctx context.Context) ([]signup.Signup, error)
	FindByID(ctx context.Context, id signup.ID) (*signup.Signup, error)
}

// BookingCommitter turns an allocation or cancellation decision into the
// one batch mutation the store applies as a unit.
type BookingCommitter interface {
	CommitBooking(ctx context.Context, drafts []signup.Draft, taken map[slot.ID]int) error
	CommitCancellation(ctx context.Context, id signup.ID, status signup.Status, slotID slot.ID, newTaken int) error
}

// PermitGuard bounds in-flight booking attempts per normalized phone.
type PermitGuard interface {
	TryAcquire(identity string) bool
	Release(identity string)
}

// AvailabilityCache is the process-wide snapshot of the grouped listing.
type AvailabilityCache = snapcache.Cache[AvailabilityView]
