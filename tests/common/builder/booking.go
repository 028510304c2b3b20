//go:build unit || e2e

package builder

import (
	"slotbooking/internal/domain/slot"
	reqdto "slotbooking/internal/handler/dto/request"
	"slotbooking/internal/usecase"
)

// BookingBuilder assembles booking inputs with sane defaults so each test
// only spells out the field it cares about. The default phone carries
// formatting on purpose: normalization is part of the contract under test.
type BookingBuilder struct {
	name     string
	phone    string
	email    string
	category string
	notes    string
	slotIDs  []int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		name:     "Jane Doe",
		phone:    "(555) 123-4567",
		email:    "jane@example.com",
		category: "general",
		notes:    "",
		slotIDs:  []int{2},
	}
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.name = name
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.phone = phone
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.email = email
	return b
}

func (b *BookingBuilder) WithCategory(category string) *BookingBuilder {
	b.category = category
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.notes = notes
	return b
}

func (b *BookingBuilder) WithSlotIDs(ids ...int) *BookingBuilder {
	b.slotIDs = ids
	return b
}

func (b *BookingBuilder) BuildParams() usecase.CreateBookingParams {
	ids := make([]slot.ID, len(b.slotIDs))
	for i, id := range b.slotIDs {
		ids[i] = slot.ID(id)
	}
	return usecase.CreateBookingParams{
		Name:     b.name,
		Phone:    b.phone,
		Email:    b.email,
		Category: b.category,
		Notes:    b.notes,
		SlotIDs:  ids,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Name:     b.name,
		Phone:    b.phone,
		Email:    b.email,
		Category: b.category,
		Notes:    b.notes,
		SlotIDs:  b.slotIDs,
	}
}
