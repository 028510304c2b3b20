package request

import (
	"slotbooking/internal/domain/slot"
	"slotbooking/internal/usecase"
)

type CreateBookingRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email,omitempty"`
	Category string `json:"category" binding:"required"`
	Notes    string `json:"notes,omitempty"`
	SlotIDs  []int  `json:"slotIds" binding:"required,min=1"`
}

func (r CreateBookingRequest) ToParams() usecase.CreateBookingParams {
	ids := make([]slot.ID, len(r.SlotIDs))
	for i, id := range r.SlotIDs {
		ids[i] = slot.ID(id)
	}
	return usecase.CreateBookingParams{
		Name:     r.Name,
		Phone:    r.Phone,
		Email:    r.Email,
		Category: r.Category,
		Notes:    r.Notes,
		SlotIDs:  ids,
	}
}
