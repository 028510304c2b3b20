//go:build unit

package slot_test

import (
	"testing"

	"slotbooking/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		s, err := slot.New(2, "2025-06-20", "Morning 9-11", 5, 2)
		require.NoError(t, err)

		assert.Equal(t, slot.ID(2), s.ID)
		assert.Equal(t, "2025-06-20", s.Date)
		assert.Equal(t, "Morning 9-11", s.Label)
		assert.Equal(t, 5, s.Capacity)
		assert.Equal(t, 2, s.Taken)
	})

	t.Run("malformed rows are rejected", func(t *testing.T) {
		cases := []struct {
			name     string
			date     string
			label    string
			capacity int
			errIs    error
		}{
			{name: "blank date", date: "", label: "Morning", capacity: 5, errIs: slot.ErrMissingDate},
			{name: "blank label", date: "2025-06-20", label: "", capacity: 5, errIs: slot.ErrMissingLabel},
			{name: "zero capacity", date: "2025-06-20", label: "Morning", capacity: 0, errIs: slot.ErrInvalidCapacity},
			{name: "negative capacity", date: "2025-06-20", label: "Morning", capacity: -3, errIs: slot.ErrInvalidCapacity},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := slot.New(2, tc.date, tc.label, tc.capacity, 0)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("taken count is clamped, not rejected", func(t *testing.T) {
		cases := []struct {
			name      string
			taken     int
			wantTaken int
		}{
			{name: "negative clamps to zero", taken: -2, wantTaken: 0},
			{name: "over capacity clamps to capacity", taken: 7, wantTaken: 5},
			{name: "exact capacity stays", taken: 5, wantTaken: 5},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				s, err := slot.New(2, "2025-06-20", "Morning", 5, tc.taken)
				require.NoError(t, err)
				assert.Equal(t, tc.wantTaken, s.Taken)
			})
		}
	})
}

func TestAvailable(t *testing.T) {
	cases := []struct {
		name     string
		capacity int
		taken    int
		want     int
	}{
		{name: "empty slot", capacity: 5, taken: 0, want: 5},
		{name: "partially taken", capacity: 5, taken: 3, want: 2},
		{name: "exactly full", capacity: 5, taken: 5, want: 0},
		{name: "over capacity still reports zero", capacity: 5, taken: 7, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := slot.Slot{Capacity: tc.capacity, Taken: tc.taken}
			assert.Equal(t, tc.want, s.Available())
		})
	}
}

func TestIsFull(t *testing.T) {
	// Exact capacity must count as full: a last-seat booking that lands
	// taken==capacity leaves no room for one more.
	assert.False(t, slot.Slot{Capacity: 2, Taken: 1}.IsFull())
	assert.True(t, slot.Slot{Capacity: 2, Taken: 2}.IsFull())
	assert.True(t, slot.Slot{Capacity: 2, Taken: 3}.IsFull())
}

func TestOnOrAfter(t *testing.T) {
	s := slot.Slot{Date: "2025-06-20"}

	assert.True(t, s.OnOrAfter("2025-06-20"))
	assert.True(t, s.OnOrAfter("2025-06-19"))
	assert.False(t, s.OnOrAfter("2025-06-21"))
}
