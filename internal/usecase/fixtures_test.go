//go:build unit

package usecase_test

import (
	"io"
	"log/slog"
	"time"

	"slotbooking/internal/infra/rowstore"
	"slotbooking/internal/infra/sheetrepo"
	"slotbooking/internal/pkg/clock"
	"slotbooking/internal/pkg/permit"
	"slotbooking/internal/pkg/snapcache"
	"slotbooking/internal/usecase"
)

const (
	slotsSheet   = "slots"
	signupsSheet = "signups"

	maxSlotsPerRequest = 4
	guardCeiling       = 3
)

// fixture wires the write side against the in-memory gateway so each test
// exercises the real repositories, committer and ID translation.
type fixture struct {
	mem       *rowstore.MemoryGateway
	slots     *sheetrepo.SlotRepository
	signups   *sheetrepo.SignupRepository
	committer *sheetrepo.Committer
	cache     *usecase.AvailabilityCache
	clock     *clock.MockClock
	guard     *permit.Guard
	logger    *slog.Logger
}

func newFixture() *fixture {
	f := &fixture{mem: rowstore.NewMemoryGateway()}
	f.wire(f.mem)
	return f
}

// newFixtureOn builds the repositories over gw while keeping mem as the
// backing store for seeding and assertions. Tests use it to interpose on
// gateway calls.
func newFixtureOn(mem *rowstore.MemoryGateway, gw rowstore.Gateway) *fixture {
	f := &fixture{mem: mem}
	f.wire(gw)
	return f
}

func (f *fixture) wire(gw rowstore.Gateway) {
	f.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	f.clock = clock.NewMockClock(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	f.cache = snapcache.New[usecase.AvailabilityView](time.Minute, f.clock)
	f.guard = permit.NewGuard(guardCeiling)
	f.slots = sheetrepo.NewSlotRepository(gw, slotsSheet, f.logger)
	f.signups = sheetrepo.NewSignupRepository(gw, signupsSheet)
	f.committer = sheetrepo.NewCommitter(gw, f.slots, f.signups)
}

func (f *fixture) bookings() usecase.BookingCommands {
	return usecase.NewBookingCommands(f.slots, f.signups, f.committer, f.guard, f.cache, f.clock, maxSlotsPerRequest, f.logger)
}

func (f *fixture) availability() usecase.AvailabilityQueries {
	return usecase.NewAvailabilityQueries(f.slots, f.signups, f.cache, f.clock)
}

func (f *fixture) cancellations() usecase.CancellationCommands {
	return usecase.NewCancellationCommands(f.slots, f.signups, f.committer, f.cache, f.clock, f.logger)
}

func (f *fixture) admin() usecase.AdminCommands {
	return usecase.NewAdminCommands(f.slots, f.cache, f.logger)
}

func (f *fixture) seedSlots(rows ...rowstore.Row) {
	f.mem.Seed(slotsSheet, rows)
}

func (f *fixture) seedSignups(rows ...rowstore.Row) {
	f.mem.Seed(signupsSheet, rows)
}

func slotRow(date, label string, capacity, taken int) rowstore.Row {
	return rowstore.Row{date, label, capacity, taken}
}

func signupRowWithEmail(phone, email string, slotID int, status string) rowstore.Row {
	row := signupRow(phone, slotID, status)
	row[4] = email
	return row
}

func signupRow(phone string, slotID int, status string) rowstore.Row {
	return rowstore.Row{
		"2025-06-14 09:00:00",
		"2025-06-20",
		"Morning",
		"Prior Booker",
		"",
		phone,
		"general",
		"",
		slotID,
		status,
	}
}
