package response

import (
	"github.com/jinzhu/copier"

	"slotbooking/internal/usecase"
)

type SlotResponse struct {
	RowID     int    `json:"rowId"`
	Date      string `json:"date"`
	Label     string `json:"label"`
	Capacity  int    `json:"capacity"`
	Taken     int    `json:"taken"`
	Available int    `json:"available"`
}

type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type ListSlotsResponse struct {
	Ok         bool          `json:"ok"`
	Dates      []DayResponse `json:"dates"`
	TotalSlots int           `json:"totalSlots"`
}

func FromAvailabilityView(view *usecase.AvailabilityView) *ListSlotsResponse {
	resp := &ListSlotsResponse{Ok: true, Dates: make([]DayResponse, 0, len(view.Days)), TotalSlots: view.TotalSlots}
	for _, day := range view.Days {
		var slots []SlotResponse
		_ = copier.Copy(&slots, &day.Slots)
		resp.Dates = append(resp.Dates, DayResponse{Date: day.Date, Slots: slots})
	}
	return resp
}

type HistoryEntryResponse struct {
	SignupRowID int    `json:"signupRowId"`
	SlotRowID   int    `json:"slotRowId"`
	Date        string `json:"date"`
	SlotLabel   string `json:"slotLabel"`
	Timestamp   string `json:"timestamp"`
	Name        string `json:"name"`
	Category    string `json:"category"`
}

type HistoryResponse struct {
	Ok      bool                   `json:"ok"`
	Signups []HistoryEntryResponse `json:"signups"`
}

func FromHistoryEntries(entries []usecase.HistoryEntry) *HistoryResponse {
	signups := make([]HistoryEntryResponse, 0, len(entries))
	_ = copier.Copy(&signups, &entries)
	return &HistoryResponse{Ok: true, Signups: signups}
}
