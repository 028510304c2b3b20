package sheetrepo

import (
	"context"
	"log/slog"

	"slotbooking/internal/domain/slot"
	"slotbooking/internal/infra"
	"slotbooking/internal/infra/rowstore"
)

// Slot sheet columns.
const (
	slotColDate = iota
	slotColLabel
	slotColCapacity
	slotColTaken
	slotColCount
)

type SlotRepository struct {
	gw     rowstore.Gateway
	sheet  string
	logger *slog.Logger
}

func NewSlotRepository(gw rowstore.Gateway, sheet string, logger *slog.Logger) *SlotRepository {
	return &SlotRepository{gw: gw, sheet: sheet, logger: logger}
}

// FindAll returns every well-formed slot row. Malformed rows (blank
// date/label, non-positive capacity) are logged and skipped, never
// surfaced.
func (r *SlotRepository) FindAll(ctx context.Context) ([]slot.Slot, error) {
	rows, err := r.gw.Get(ctx, rowstore.Range{Sheet: r.sheet})
	if err != nil {
		return nil, infra.WrapStoreErr(infra.KindStoreFailure, "failed to read slot rows", err)
	}

	slots := make([]slot.Slot, 0, len(rows))
	for i, row := range rows {
		s, ok := r.parseRow(slot.ID(dataRowToID(i+1)), row)
		if !ok {
			continue
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// FindByIDs batch-fetches the authoritative row for each requested slot.
// IDs whose row is missing or malformed are absent from the result map;
// the caller decides what that means.
func (r *SlotRepository) FindByIDs(ctx context.Context, ids []slot.ID) (map[slot.ID]slot.Slot, error) {
	if len(ids) == 0 {
		return map[slot.ID]slot.Slot{}, nil
	}

	// IDs that cannot map to a data row are left out of the result, the
	// same as a missing row; the caller classifies them as not found.
	fetchable := make([]slot.ID, 0, len(ids))
	ranges := make([]rowstore.Range, 0, len(ids))
	for _, id := range ids {
		row := idToDataRow(int(id))
		if row < 1 {
			continue
		}
		fetchable = append(fetchable, id)
		ranges = append(ranges, rowstore.Range{Sheet: r.sheet, StartRow: row, EndRow: row})
	}
	if len(ranges) == 0 {
		return map[slot.ID]slot.Slot{}, nil
	}

	results, err := r.gw.BatchGet(ctx, ranges)
	if err != nil {
		return nil, infra.WrapStoreErr(infra.KindStoreFailure, "failed to batch-read slot rows", err)
	}

	found := make(map[slot.ID]slot.Slot, len(fetchable))
	for i, rows := range results {
		if len(rows) == 0 {
			continue
		}
		if s, ok := r.parseRow(fetchable[i], rows[0]); ok {
			found[fetchable[i]] = s
		}
	}
	return found, nil
}

// Append adds slot rows in one batch mutation.
func (r *SlotRepository) Append(ctx context.Context, slots []slot.Slot) error {
	rows := make([]rowstore.Row, len(slots))
	for i, s := range slots {
		rows[i] = rowstore.Row{s.Date, s.Label, s.Capacity, s.Taken}
	}
	if err := r.gw.BatchUpdate(ctx, []rowstore.Op{rowstore.AppendRows(r.sheet, rows)}); err != nil {
		return infra.WrapStoreErr(infra.KindStoreFailure, "failed to append slot rows", err)
	}
	return nil
}

// Remove deletes one slot row.
func (r *SlotRepository) Remove(ctx context.Context, id slot.ID) error {
	op := rowstore.DeleteRow(r.sheet, idToDataRow(int(id)))
	if err := r.gw.BatchUpdate(ctx, []rowstore.Op{op}); err != nil {
		return infra.WrapStoreErr(infra.KindStoreFailure, "failed to delete slot row", err)
	}
	return nil
}

// SetTakenOp builds the cell mutation for a slot's taken count so the
// caller can fold it into a larger batch.
func (r *SlotRepository) SetTakenOp(id slot.ID, taken int) rowstore.Op {
	return rowstore.UpdateCells(r.sheet, idToDataRow(int(id)), map[int]any{slotColTaken: taken})
}

func (r *SlotRepository) parseRow(id slot.ID, row rowstore.Row) (slot.Slot, bool) {
	if len(row) < slotColCount-1 { // taken may be absent on fresh rows
		return slot.Slot{}, false
	}
	s, err := slot.New(
		id,
		cellString(row, slotColDate),
		cellString(row, slotColLabel),
		cellInt(row, slotColCapacity),
		cellInt(row, slotColTaken),
	)
	if err != nil {
		r.logger.Warn("skipping malformed slot row", "slot_id", int(id), "error", err)
		return slot.Slot{}, false
	}
	return s, true
}
