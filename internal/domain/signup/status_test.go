//go:build unit

package signup_test

import (
	"testing"
	"time"

	"slotbooking/internal/domain/signup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		name          string
		raw           string
		wantActive    bool
		wantCancelled bool
	}{
		{name: "empty cell is active", raw: "", wantActive: true},
		{name: "explicit ACTIVE", raw: "ACTIVE", wantActive: true},
		{name: "ACTIVE with trailing text", raw: "ACTIVE (walk-in)", wantActive: true},
		{name: "CANCELLED with timestamp", raw: "CANCELLED:2025-06-15T10:30:00Z", wantCancelled: true},
		{name: "bare CANCELLED", raw: "CANCELLED", wantCancelled: true},
		{name: "CANCELLED with garbage timestamp", raw: "CANCELLED:yesterday", wantCancelled: true},
		{name: "unrecognized value is neither", raw: "PENDING"},
		{name: "lowercase active is not recognized", raw: "active"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := signup.ParseStatus(tc.raw)
			assert.Equal(t, tc.wantActive, s.IsActive())
			assert.Equal(t, tc.wantCancelled, s.IsCancelled())
		})
	}
}

func TestCancelledTime(t *testing.T) {
	t.Run("well-formed timestamp round-trips", func(t *testing.T) {
		s := signup.ParseStatus("CANCELLED:2025-06-15T10:30:00Z")

		got, ok := s.CancelledTime()
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC), got)
	})

	t.Run("missing timestamp reports no time", func(t *testing.T) {
		_, ok := signup.ParseStatus("CANCELLED").CancelledTime()
		assert.False(t, ok)
	})

	t.Run("active status reports no time", func(t *testing.T) {
		_, ok := signup.Active().CancelledTime()
		assert.False(t, ok)
	})
}

func TestEncode(t *testing.T) {
	t.Run("active encodes as the plain marker", func(t *testing.T) {
		assert.Equal(t, "ACTIVE", signup.Active().Encode())
	})

	t.Run("cancelled encodes marker plus RFC3339 timestamp", func(t *testing.T) {
		at := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
		assert.Equal(t, "CANCELLED:2025-06-15T10:30:00Z", signup.CancelledAt(at).Encode())
	})

	t.Run("encode then parse preserves the variant", func(t *testing.T) {
		at := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
		parsed := signup.ParseStatus(signup.CancelledAt(at).Encode())

		assert.True(t, parsed.IsCancelled())
		got, ok := parsed.CancelledTime()
		require.True(t, ok)
		assert.True(t, got.Equal(at))
	})
}
