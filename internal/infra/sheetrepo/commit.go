package sheetrepo

import (
	"context"

	"slotbooking/internal/domain/signup"
	"slotbooking/internal/domain/slot"
	"slotbooking/internal/infra"
	"slotbooking/internal/infra/rowstore"
)

// Committer assembles the cross-sheet write of a booking or cancellation
// into one gateway BatchUpdate call. The store applies that call as a
// unit, which is the only write atomicity this system has.
type Committer struct {
	gw      rowstore.Gateway
	slots   *SlotRepository
	signups *SignupRepository
}

func NewCommitter(gw rowstore.Gateway, slots *SlotRepository, signups *SignupRepository) *Committer {
	return &Committer{gw: gw, slots: slots, signups: signups}
}

// CommitBooking appends one signup row per booked slot and rewrites each
// slot's taken cell, all in one batch.
func (c *Committer) CommitBooking(ctx context.Context, drafts []signup.Draft, taken map[slot.ID]int) error {
	ops := make([]rowstore.Op, 0, len(taken)+1)
	ops = append(ops, c.signups.AppendOp(drafts))
	for id, n := range taken {
		ops = append(ops, c.slots.SetTakenOp(id, n))
	}

	if err := c.gw.BatchUpdate(ctx, ops); err != nil {
		return infra.WrapStoreErr(infra.KindStoreFailure, "failed to commit booking batch", err)
	}
	return nil
}

// CommitCancellation rewrites the signup's status cell and the slot's
// taken cell in one batch.
func (c *Committer) CommitCancellation(ctx context.Context, id signup.ID, status signup.Status, slotID slot.ID, newTaken int) error {
	ops := []rowstore.Op{
		c.signups.SetStatusOp(id, status),
		c.slots.SetTakenOp(slotID, newTaken),
	}

	if err := c.gw.BatchUpdate(ctx, ops); err != nil {
		return infra.WrapStoreErr(infra.KindStoreFailure, "failed to commit cancellation batch", err)
	}
	return nil
}
