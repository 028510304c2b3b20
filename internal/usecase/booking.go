package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/VictoriaMetrics/metrics"
	"golang.org/x/sync/errgroup"

	"slotbooking/internal/domain/signup"
	"slotbooking/internal/domain/slot"
	"slotbooking/internal/pkg/clock"
	"slotbooking/internal/pkg/errs"
)

var (
	ErrValidation      = errs.New("validation failed")
	ErrTooManyRequests = errs.New("too many concurrent booking attempts for this phone")
	ErrStoreFailure    = errs.New("row store operation failed")
)

var (
	bookingsCommitted = metrics.GetOrCreateCounter("bookings_committed_total")
	bookingConflicts  = metrics.GetOrCreateCounter("booking_conflicts_total")
	bookingsRejected  = metrics.GetOrCreateCounter("bookings_rate_limited_total")
)

const timestampLayout = "2006-01-02 15:04:05"

type ConflictReason string

const (
	ConflictSlotNotFound  ConflictReason = "slot not found"
	ConflictAlreadyBooked ConflictReason = "already booked"
	ConflictSlotFull      ConflictReason = "slot is full"
)

type SlotConflict struct {
	SlotRowID int
	Reason    ConflictReason
	Capacity  int
	Taken     int
}

// ConflictError rejects a booking request as a whole: no slot in the
// request was written, including the ones that were otherwise bookable.
type ConflictError struct {
	Conflicts []SlotConflict
	Bookable  int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%d of %d requested slots conflict", len(e.Conflicts), len(e.Conflicts)+e.Bookable)
}

type CreateBookingParams struct {
	Name     string
	Phone    string
	Email    string
	Category string
	Notes    string
	SlotIDs  []slot.ID
}

type BookingResult struct {
	BookedSlots []SlotView
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*BookingResult, error)
}

type bookingCommandsImpl struct {
	slots     SlotRepository
	signups   SignupRepository
	committer BookingCommitter
	guard     PermitGuard
	cache     *AvailabilityCache
	clock     clock.Clock
	maxSlots  int
	logger    *slog.Logger
}

func NewBookingCommands(
	slots SlotRepository,
	signups SignupRepository,
	committer BookingCommitter,
	guard PermitGuard,
	cache *AvailabilityCache,
	clk clock.Clock,
	maxSlots int,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		slots:     slots,
		signups:   signups,
		committer: committer,
		guard:     guard,
		cache:     cache,
		clock:     clk,
		maxSlots:  maxSlots,
		logger:    logger,
	}
}

// CreateBooking re-validates every requested slot against a live read and
// either books all of them in one batch mutation or books none. Capacity
// and duplicate checks happen at write time because the listing the
// client acted on may be stale by now.
func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*BookingResult, error) {
	requester, err := signup.NewRequester(params.Name, params.Phone, params.Email, params.Category, params.Notes)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	if len(params.SlotIDs) == 0 {
		return nil, errs.Mark(errs.New("at least one slot is required"), ErrValidation)
	}
	if len(params.SlotIDs) > b.maxSlots {
		return nil, errs.Mark(errs.Newf("at most %d slots per booking", b.maxSlots), ErrValidation)
	}

	// The permit is the last precondition: a rate-limited rejection must
	// not touch the store at all.
	if !b.guard.TryAcquire(requester.Phone) {
		bookingsRejected.Inc()
		return nil, ErrTooManyRequests
	}
	// Every exit path below releases, or the identity starves forever.
	defer b.guard.Release(requester.Phone)

	slotsByID, allSignups, err := b.fetchLive(ctx, params.SlotIDs)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	bookable, conflicts := b.classify(params.SlotIDs, slotsByID, allSignups, requester.Phone)
	if len(conflicts) > 0 {
		bookingConflicts.Inc()
		return nil, &ConflictError{Conflicts: conflicts, Bookable: len(bookable)}
	}

	timestamp := b.clock.Now().Format(timestampLayout)
	drafts := make([]signup.Draft, len(bookable))
	newTaken := make(map[slot.ID]int, len(bookable))
	booked := make([]SlotView, len(bookable))
	for i, s := range bookable {
		drafts[i] = signup.Draft{
			Timestamp: timestamp,
			Date:      s.Date,
			SlotLabel: s.Label,
			Requester: requester,
			SlotID:    s.ID,
		}
		newTaken[s.ID] = s.Taken + 1
		s.Taken++
		booked[i] = slotToView(s)
	}

	if err := b.committer.CommitBooking(ctx, drafts, newTaken); err != nil {
		// The batch never applied, so there is nothing to roll back.
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	b.cache.Invalidate()
	bookingsCommitted.Inc()
	b.logger.Info("booking committed", "slots", len(booked))

	return &BookingResult{BookedSlots: booked}, nil
}

// fetchLive bypasses the availability cache: allocation decisions are
// made against authoritative rows only. Slot rows and the signup sheet
// are read in parallel.
func (b *bookingCommandsImpl) fetchLive(ctx context.Context, ids []slot.ID) (map[slot.ID]slot.Slot, []signup.Signup, error) {
	var (
		slotsByID  map[slot.ID]slot.Slot
		allSignups []signup.Signup
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		slotsByID, err = b.slots.FindByIDs(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		allSignups, err = b.signups.FindAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return slotsByID, allSignups, nil
}

// classify walks the requested IDs in input order. A slot already held
// actively by this phone conflicts as a duplicate; so does the same ID
// appearing twice in one request, which would otherwise mint two active
// signups for one (phone, slot) pair.
func (b *bookingCommandsImpl) classify(
	ids []slot.ID,
	slotsByID map[slot.ID]slot.Slot,
	allSignups []signup.Signup,
	normalizedPhone string,
) ([]slot.Slot, []SlotConflict) {
	held := make(map[slot.ID]bool)
	for _, s := range allSignups {
		if s.Status.IsActive() && s.OwnedBy(normalizedPhone) {
			held[s.SlotID] = true
		}
	}

	var (
		bookable  []slot.Slot
		conflicts []SlotConflict
		requested = make(map[slot.ID]bool)
	)
	for _, id := range ids {
		s, ok := slotsByID[id]
		switch {
		case !ok:
			conflicts = append(conflicts, SlotConflict{SlotRowID: int(id), Reason: ConflictSlotNotFound})
		case held[id] || requested[id]:
			conflicts = append(conflicts, SlotConflict{SlotRowID: int(id), Reason: ConflictAlreadyBooked})
		case s.IsFull():
			conflicts = append(conflicts, SlotConflict{
				SlotRowID: int(id),
				Reason:    ConflictSlotFull,
				Capacity:  s.Capacity,
				Taken:     s.Taken,
			})
		default:
			requested[id] = true
			bookable = append(bookable, s)
		}
	}
	return bookable, conflicts
}
