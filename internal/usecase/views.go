package usecase

import "slotbooking/internal/domain/slot"

// Read models returned to the handler layer. RowID fields carry the
// store-assigned surrogate keys clients use in follow-up requests.

type SlotView struct {
	RowID     int
	Date      string
	Label     string
	Capacity  int
	Taken     int
	Available int
}

type DayView struct {
	Date  string
	Slots []SlotView
}

type AvailabilityView struct {
	Days       []DayView
	TotalSlots int
}

type HistoryEntry struct {
	SignupRowID int
	SlotRowID   int
	Date        string
	SlotLabel   string
	Timestamp   string
	Name        string
	Category    string
}

type CancelledSlotView struct {
	SignupRowID int
	SlotRowID   int
	Date        string
	SlotLabel   string
}

func slotToView(s slot.Slot) SlotView {
	return SlotView{
		RowID:     int(s.ID),
		Date:      s.Date,
		Label:     s.Label,
		Capacity:  s.Capacity,
		Taken:     s.Taken,
		Available: s.Available(),
	}
}
