package request

import "slotbooking/internal/usecase"

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type NewSlotRequest struct {
	Date     string `json:"date" binding:"required"`
	Label    string `json:"label" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

type AddSlotsRequest struct {
	Slots []NewSlotRequest `json:"slots" binding:"required,min=1,dive"`
}

func (r AddSlotsRequest) ToParams() []usecase.NewSlotParams {
	params := make([]usecase.NewSlotParams, len(r.Slots))
	for i, s := range r.Slots {
		params[i] = usecase.NewSlotParams{Date: s.Date, Label: s.Label, Capacity: s.Capacity}
	}
	return params
}
