package request

import (
	"slotbooking/internal/domain/signup"
	"slotbooking/internal/domain/slot"
	"slotbooking/internal/usecase"
)

type CancelRequest struct {
	SignupRowID int    `json:"signupRowId" binding:"required"`
	SlotRowID   int    `json:"slotRowId" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
}

func (r CancelRequest) ToParams() usecase.CancelParams {
	return usecase.CancelParams{
		SignupID: signup.ID(r.SignupRowID),
		SlotID:   slot.ID(r.SlotRowID),
		Phone:    r.Phone,
	}
}
