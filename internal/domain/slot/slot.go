package slot

import "errors"

var (
	ErrMissingDate     = errors.New("slot date is required")
	ErrMissingLabel    = errors.New("slot label is required")
	ErrInvalidCapacity = errors.New("slot capacity must be positive")
)

// ID is the slot's surrogate key as assigned by the row store. Translating
// it to and from storage row positions is the store adapter's job; nothing
// above that layer may treat an ID as a position.
type ID int

// Slot is a bookable time window on a given date. Date is kept in
// YYYY-MM-DD form so lexicographic comparison is date comparison.
type Slot struct {
	ID       ID
	Date     string
	Label    string
	Capacity int
	Taken    int
}

// New validates a slot read from the store. Blank date/label or a
// non-positive capacity mark the row malformed; an out-of-range taken
// count is clamped into [0, capacity] rather than propagated.
func New(id ID, date, label string, capacity, taken int) (Slot, error) {
	if date == "" {
		return Slot{}, ErrMissingDate
	}
	if label == "" {
		return Slot{}, ErrMissingLabel
	}
	if capacity <= 0 {
		return Slot{}, ErrInvalidCapacity
	}
	if taken < 0 {
		taken = 0
	}
	if taken > capacity {
		taken = capacity
	}
	return Slot{ID: id, Date: date, Label: label, Capacity: capacity, Taken: taken}, nil
}

func (s Slot) Available() int {
	if s.Taken >= s.Capacity {
		return 0
	}
	return s.Capacity - s.Taken
}

// IsFull uses taken >= capacity, never >, so a slot at exact capacity
// is full.
func (s Slot) IsFull() bool {
	return s.Taken >= s.Capacity
}

func (s Slot) OnOrAfter(date string) bool {
	return s.Date >= date
}
