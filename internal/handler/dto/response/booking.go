package response

import (
	"github.com/jinzhu/copier"

	"slotbooking/internal/usecase"
)

type BookingResponse struct {
	Ok          bool           `json:"ok"`
	BookedSlots []SlotResponse `json:"bookedSlots"`
}

func FromBookingResult(result *usecase.BookingResult) *BookingResponse {
	var slots []SlotResponse
	_ = copier.Copy(&slots, &result.BookedSlots)
	return &BookingResponse{Ok: true, BookedSlots: slots}
}

// SlotConflictDetail is attached to 409 responses so clients can drop the
// conflicting slots and resubmit the rest.
type SlotConflictDetail struct {
	SlotRowID int    `json:"slotRowId"`
	Reason    string `json:"reason"`
	Capacity  int    `json:"capacity,omitempty"`
	Taken     int    `json:"taken,omitempty"`
}

type ConflictDetail struct {
	Conflicts []SlotConflictDetail `json:"conflicts"`
	Bookable  int                  `json:"bookable"`
}

func FromConflictError(err *usecase.ConflictError) ConflictDetail {
	detail := ConflictDetail{Conflicts: make([]SlotConflictDetail, 0, len(err.Conflicts)), Bookable: err.Bookable}
	for _, c := range err.Conflicts {
		detail.Conflicts = append(detail.Conflicts, SlotConflictDetail{
			SlotRowID: c.SlotRowID,
			Reason:    string(c.Reason),
			Capacity:  c.Capacity,
			Taken:     c.Taken,
		})
	}
	return detail
}

type CancelledSlotResponse struct {
	SignupRowID int    `json:"signupRowId"`
	SlotRowID   int    `json:"slotRowId"`
	Date        string `json:"date"`
	SlotLabel   string `json:"slotLabel"`
}

type CancelResponse struct {
	Ok            bool                  `json:"ok"`
	CancelledSlot CancelledSlotResponse `json:"cancelledSlot"`
}

func FromCancelledSlotView(view *usecase.CancelledSlotView) *CancelResponse {
	var cancelled CancelledSlotResponse
	_ = copier.Copy(&cancelled, view)
	return &CancelResponse{Ok: true, CancelledSlot: cancelled}
}
