//go:build unit

package rowstore_test

import (
	"context"
	"testing"

	"slotbooking/internal/infra/rowstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rowstore.MemoryGateway {
	gw := rowstore.NewMemoryGateway()
	gw.Seed("slots", []rowstore.Row{
		{"2025-06-20", "Morning", 5, 0},
		{"2025-06-20", "Afternoon", 3, 1},
		{"2025-06-21", "Morning", 2, 2},
	})
	return gw
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("unbounded range returns every data row", func(t *testing.T) {
		rows, err := seeded().Get(ctx, rowstore.Range{Sheet: "slots"})
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("single-row range", func(t *testing.T) {
		rows, err := seeded().Get(ctx, rowstore.Range{Sheet: "slots", StartRow: 2, EndRow: 2})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Afternoon", rows[0][1])
	})

	t.Run("range past the end is empty, not an error", func(t *testing.T) {
		rows, err := seeded().Get(ctx, rowstore.Range{Sheet: "slots", StartRow: 9, EndRow: 9})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("unknown sheet is empty", func(t *testing.T) {
		rows, err := seeded().Get(ctx, rowstore.Range{Sheet: "nope"})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestBatchGet(t *testing.T) {
	ctx := context.Background()

	results, err := seeded().BatchGet(ctx, []rowstore.Range{
		{Sheet: "slots", StartRow: 1, EndRow: 1},
		{Sheet: "slots", StartRow: 3, EndRow: 3},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Morning", results[0][0][1])
	assert.Equal(t, "2025-06-21", results[1][0][0])
}

func TestBatchUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("append, update and delete apply together", func(t *testing.T) {
		gw := seeded()
		ops := []rowstore.Op{
			rowstore.AppendRows("slots", []rowstore.Row{{"2025-06-22", "Evening", 4, 0}}),
			rowstore.UpdateCells("slots", 1, map[int]any{3: 2}),
			rowstore.DeleteRow("slots", 3),
		}
		require.NoError(t, gw.BatchUpdate(ctx, ops))

		rows := gw.Rows("slots")
		require.Len(t, rows, 3)
		assert.Equal(t, 2, rows[0][3])
		assert.Equal(t, "Afternoon", rows[1][1])
		assert.Equal(t, "Evening", rows[2][1])
	})

	t.Run("one bad op rejects the whole batch", func(t *testing.T) {
		gw := seeded()
		ops := []rowstore.Op{
			rowstore.AppendRows("slots", []rowstore.Row{{"2025-06-22", "Evening", 4, 0}}),
			rowstore.UpdateCells("slots", 99, map[int]any{3: 2}),
		}
		err := gw.BatchUpdate(ctx, ops)
		require.Error(t, err)

		// The valid append before the bad update must not have applied.
		assert.Len(t, gw.Rows("slots"), 3)
	})

	t.Run("delete targeting a missing row rejects the batch", func(t *testing.T) {
		gw := seeded()
		err := gw.BatchUpdate(ctx, []rowstore.Op{rowstore.DeleteRow("slots", 4)})
		require.Error(t, err)
		assert.Len(t, gw.Rows("slots"), 3)
	})

	t.Run("empty op rejects the batch", func(t *testing.T) {
		gw := seeded()
		err := gw.BatchUpdate(ctx, []rowstore.Op{{}})
		assert.Error(t, err)
	})

	t.Run("update extends a short row to reach the target column", func(t *testing.T) {
		gw := rowstore.NewMemoryGateway()
		gw.Seed("slots", []rowstore.Row{{"2025-06-20", "Morning", 5}})

		require.NoError(t, gw.BatchUpdate(ctx, []rowstore.Op{
			rowstore.UpdateCells("slots", 1, map[int]any{3: 1}),
		}))

		rows := gw.Rows("slots")
		require.Len(t, rows[0], 4)
		assert.Equal(t, 1, rows[0][3])
	})
}

func TestRowsReturnsCopies(t *testing.T) {
	gw := seeded()

	rows := gw.Rows("slots")
	rows[0][1] = "tampered"

	fresh := gw.Rows("slots")
	assert.Equal(t, "Morning", fresh[0][1])
}
