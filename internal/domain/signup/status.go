package signup

import (
	"strings"
	"time"
)

const (
	activeMarker    = "ACTIVE"
	cancelledMarker = "CANCELLED"
)

type statusKind int

const (
	kindActive statusKind = iota
	kindCancelled
	kindUnknown
)

// Status is the tagged form of the store's string-encoded status cell.
// The raw string is parsed exactly once at the store boundary; business
// logic works with the variant, never with string prefixes.
//
// Store encoding: an empty cell, "ACTIVE", or anything starting with
// "ACTIVE" is active; "CANCELLED:<timestamp>" is cancelled. Anything
// else is preserved as unknown: not active, not cancelled.
type Status struct {
	kind        statusKind
	cancelledAt time.Time
}

func Active() Status {
	return Status{kind: kindActive}
}

func CancelledAt(t time.Time) Status {
	return Status{kind: kindCancelled, cancelledAt: t}
}

func ParseStatus(raw string) Status {
	switch {
	case raw == "" || strings.HasPrefix(raw, activeMarker):
		return Status{kind: kindActive}
	case strings.HasPrefix(raw, cancelledMarker):
		s := Status{kind: kindCancelled}
		if rest, ok := strings.CutPrefix(raw, cancelledMarker+":"); ok {
			if t, err := time.Parse(time.RFC3339, rest); err == nil {
				s.cancelledAt = t
			}
		}
		return s
	default:
		return Status{kind: kindUnknown}
	}
}

func (s Status) IsActive() bool {
	return s.kind == kindActive
}

func (s Status) IsCancelled() bool {
	return s.kind == kindCancelled
}

// CancelledTime returns the cancellation timestamp when one was recorded.
func (s Status) CancelledTime() (time.Time, bool) {
	if s.kind != kindCancelled || s.cancelledAt.IsZero() {
		return time.Time{}, false
	}
	return s.cancelledAt, true
}

func (s Status) Encode() string {
	switch s.kind {
	case kindCancelled:
		return cancelledMarker + ":" + s.cancelledAt.Format(time.RFC3339)
	default:
		return activeMarker
	}
}
