package signup

import (
	"errors"
	"strings"

	"slotbooking/internal/domain/slot"
	"slotbooking/internal/pkg/phone"
)

const (
	MaxNameLength     = 100
	MaxEmailLength    = 254
	MaxCategoryLength = 50
	MaxNotesLength    = 500
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrInvalidPhone     = errors.New("phone must contain exactly 10 digits")
	ErrInvalidEmail     = errors.New("email is invalid")
	ErrEmailTooLong     = errors.New("email is too long")
	ErrCategoryRequired = errors.New("category is required")
	ErrCategoryTooLong  = errors.New("category is too long")
	ErrNotesTooLong     = errors.New("notes are too long")
)

// ID is the signup row's surrogate key. The store assigns it at append
// time; the service only learns it by re-reading.
type ID int

// Requester is the validated, sanitized booking party. Phone is stored in
// normalized (digits-only) form since it doubles as the identity key.
type Requester struct {
	Name     string
	Phone    string
	Email    string
	Category string
	Notes    string
}

func NewRequester(name, rawPhone, email, category, notes string) (Requester, error) {
	name = sanitize(name)
	email = sanitize(email)
	category = sanitize(category)
	notes = sanitize(notes)

	if name == "" {
		return Requester{}, ErrNameRequired
	}
	if len(name) > MaxNameLength {
		return Requester{}, ErrNameTooLong
	}
	if !phone.Valid(rawPhone) {
		return Requester{}, ErrInvalidPhone
	}
	if email != "" {
		if len(email) > MaxEmailLength {
			return Requester{}, ErrEmailTooLong
		}
		if !strings.Contains(email, "@") {
			return Requester{}, ErrInvalidEmail
		}
	}
	if category == "" {
		return Requester{}, ErrCategoryRequired
	}
	if len(category) > MaxCategoryLength {
		return Requester{}, ErrCategoryTooLong
	}
	if len(notes) > MaxNotesLength {
		return Requester{}, ErrNotesTooLong
	}

	return Requester{
		Name:     name,
		Phone:    phone.Normalize(rawPhone),
		Email:    email,
		Category: category,
		Notes:    notes,
	}, nil
}

// Signup is one reserved seat in one slot. Date and SlotLabel are
// denormalized copies of the slot's descriptive fields at booking time.
type Signup struct {
	ID        ID
	Timestamp string
	Date      string
	SlotLabel string
	Requester Requester
	SlotID    slot.ID
	Status    Status
}

func (s Signup) OwnedBy(normalizedPhone string) bool {
	return s.Requester.Phone == normalizedPhone
}

// Draft is a signup not yet appended to the store; it has no ID until the
// store assigns one.
type Draft struct {
	Timestamp string
	Date      string
	SlotLabel string
	Requester Requester
	SlotID    slot.ID
}

func sanitize(s string) string {
	s = strings.TrimSpace(s)
	// control characters never survive into the store
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
