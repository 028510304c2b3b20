package response

type LoginResponse struct {
	Ok bool `json:"ok"`
}

type MeResponse struct {
	Ok    bool `json:"ok"`
	Admin bool `json:"admin"`
}

type AddSlotsResponse struct {
	Ok    bool `json:"ok"`
	Added int  `json:"added"`
}

type RemoveSlotResponse struct {
	Ok bool `json:"ok"`
}
