package usecase

import (
	"context"
	"log/slog"

	"github.com/VictoriaMetrics/metrics"
	"golang.org/x/sync/errgroup"

	"slotbooking/internal/domain/signup"
	"slotbooking/internal/domain/slot"
	"slotbooking/internal/infra"
	"slotbooking/internal/pkg/clock"
	"slotbooking/internal/pkg/errs"
	"slotbooking/internal/pkg/phone"
)

var (
	ErrSignupNotFound   = errs.New("signup not found")
	ErrSlotNotFound     = errs.New("slot not found")
	ErrNotOwner         = errs.New("phone does not match this signup")
	ErrAlreadyCancelled = errs.New("signup is already cancelled")
)

var cancellationsCommitted = metrics.GetOrCreateCounter("cancellations_committed_total")

type CancelParams struct {
	SignupID signup.ID
	SlotID   slot.ID
	Phone    string
}

type CancellationCommands interface {
	CancelSignup(ctx context.Context, params CancelParams) (*CancelledSlotView, error)
}

type cancellationCommandsImpl struct {
	slots     SlotRepository
	signups   SignupRepository
	committer BookingCommitter
	cache     *AvailabilityCache
	clock     clock.Clock
	logger    *slog.Logger
}

func NewCancellationCommands(
	slots SlotRepository,
	signups SignupRepository,
	committer BookingCommitter,
	cache *AvailabilityCache,
	clk clock.Clock,
	logger *slog.Logger,
) CancellationCommands {
	return &cancellationCommandsImpl{
		slots:     slots,
		signups:   signups,
		committer: committer,
		cache:     cache,
		clock:     clk,
		logger:    logger,
	}
}

// CancelSignup flips one signup to cancelled and releases its seat. The
// stored phone is the only authorization: no match, no cancellation.
// No concurrency permit applies here; re-cancelling fails cleanly and a
// cancellation only touches rows keyed by the caller's own phone.
func (c *cancellationCommandsImpl) CancelSignup(ctx context.Context, params CancelParams) (*CancelledSlotView, error) {
	if !phone.Valid(params.Phone) {
		return nil, errs.Mark(ErrInvalidPhone, ErrValidation)
	}
	normalized := phone.Normalize(params.Phone)

	target, slotRow, err := c.fetchLive(ctx, params.SignupID, params.SlotID)
	if err != nil {
		return nil, err
	}

	if !target.OwnedBy(normalized) {
		return nil, ErrNotOwner
	}
	if target.Status.IsCancelled() {
		return nil, ErrAlreadyCancelled
	}

	// Clamped so prior inconsistency never drives the count negative.
	newTaken := slotRow.Taken - 1
	if newTaken < 0 {
		newTaken = 0
	}

	status := signup.CancelledAt(c.clock.Now())
	if err := c.committer.CommitCancellation(ctx, params.SignupID, status, params.SlotID, newTaken); err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	c.cache.Invalidate()
	cancellationsCommitted.Inc()
	c.logger.Info("cancellation committed", "slot_id", int(params.SlotID))

	return &CancelledSlotView{
		SignupRowID: int(target.ID),
		SlotRowID:   int(target.SlotID),
		Date:        target.Date,
		SlotLabel:   target.SlotLabel,
	}, nil
}

// fetchLive reads the signup row and the slot row in parallel.
func (c *cancellationCommandsImpl) fetchLive(ctx context.Context, signupID signup.ID, slotID slot.ID) (*signup.Signup, slot.Slot, error) {
	var (
		target    *signup.Signup
		slotsByID map[slot.ID]slot.Slot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		target, err = c.signups.FindByID(gctx, signupID)
		return err
	})
	g.Go(func() error {
		var err error
		slotsByID, err = c.slots.FindByIDs(gctx, []slot.ID{slotID})
		return err
	})
	if err := g.Wait(); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, slot.Slot{}, ErrSignupNotFound
		}
		return nil, slot.Slot{}, errs.Mark(err, ErrStoreFailure)
	}

	slotRow, ok := slotsByID[slotID]
	if !ok {
		return nil, slot.Slot{}, ErrSlotNotFound
	}
	return target, slotRow, nil
}
