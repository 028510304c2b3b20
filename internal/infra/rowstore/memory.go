package rowstore

import (
	"context"
	"sync"

	"slotbooking/internal/pkg/errs"
)

// MemoryGateway is a process-local store with the same contract as the
// remote one, including the "one BatchUpdate is applied as a unit" rule.
// It backs the unit suites and the memory driver for local development.
type MemoryGateway struct {
	mu     sync.Mutex
	sheets map[string][]Row
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{sheets: make(map[string][]Row)}
}

// Seed replaces a sheet's data rows.
func (g *MemoryGateway) Seed(sheet string, rows []Row) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sheets[sheet] = append([]Row(nil), rows...)
}

// Rows returns a copy of a sheet's data rows.
func (g *MemoryGateway) Rows(sheet string) []Row {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Row(nil), g.sheets[sheet]...)
}

func (g *MemoryGateway) Get(ctx context.Context, rng Range) ([]Row, error) {
	rows, err := g.BatchGet(ctx, []Range{rng})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (g *MemoryGateway) BatchGet(ctx context.Context, ranges []Range) ([][]Row, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([][]Row, len(ranges))
	for i, rng := range ranges {
		out[i] = g.slice(rng)
	}
	return out, nil
}

func (g *MemoryGateway) BatchUpdate(ctx context.Context, ops []Op) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Validate every op before touching anything so a batch either fully
	// applies or leaves the store untouched, matching the remote store's
	// unit-of-application guarantee.
	for _, op := range ops {
		switch {
		case op.Append != nil:
		case op.Update != nil:
			rows := g.sheets[op.Update.Sheet]
			if op.Update.Row < 1 || op.Update.Row > len(rows) {
				return errs.Newf("update targets missing row %d in sheet %q", op.Update.Row, op.Update.Sheet)
			}
		case op.Delete != nil:
			rows := g.sheets[op.Delete.Sheet]
			if op.Delete.Row < 1 || op.Delete.Row > len(rows) {
				return errs.Newf("delete targets missing row %d in sheet %q", op.Delete.Row, op.Delete.Sheet)
			}
		default:
			return errs.New("empty op in batch update")
		}
	}

	for _, op := range ops {
		switch {
		case op.Append != nil:
			for _, row := range op.Append.Rows {
				g.sheets[op.Append.Sheet] = append(g.sheets[op.Append.Sheet], append(Row(nil), row...))
			}
		case op.Update != nil:
			row := g.sheets[op.Update.Sheet][op.Update.Row-1]
			for col, val := range op.Update.Cells {
				for len(row) <= col {
					row = append(row, "")
				}
				row[col] = val
			}
			g.sheets[op.Update.Sheet][op.Update.Row-1] = row
		case op.Delete != nil:
			rows := g.sheets[op.Delete.Sheet]
			g.sheets[op.Delete.Sheet] = append(rows[:op.Delete.Row-1], rows[op.Delete.Row:]...)
		}
	}
	return nil
}

func (g *MemoryGateway) slice(rng Range) []Row {
	rows := g.sheets[rng.Sheet]
	start := rng.StartRow
	if start < 1 {
		start = 1
	}
	end := rng.EndRow
	if end < 1 || end > len(rows) {
		end = len(rows)
	}
	if start > len(rows) {
		return nil
	}
	out := make([]Row, 0, end-start+1)
	for _, row := range rows[start-1 : end] {
		out = append(out, append(Row(nil), row...))
	}
	return out
}
