package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/VictoriaMetrics/metrics"

	"slotbooking/internal/domain/signup"
	"slotbooking/internal/pkg/clock"
	"slotbooking/internal/pkg/errs"
	"slotbooking/internal/pkg/phone"
)

var (
	ErrInvalidPhone = errs.New("phone must contain exactly 10 digits")
	ErrInvalidEmail = errs.New("email is invalid")
)

var (
	availabilityCacheHits   = metrics.GetOrCreateCounter("availability_cache_hits_total")
	availabilityCacheMisses = metrics.GetOrCreateCounter("availability_cache_misses_total")
)

const dateLayout = "2006-01-02"

type AvailabilityQueries interface {
	ListOpenSlots(ctx context.Context) (*AvailabilityView, error)
	ListHistory(ctx context.Context, rawPhone string) ([]HistoryEntry, error)
	ListHistoryByEmail(ctx context.Context, rawEmail string) ([]HistoryEntry, error)
}

type availabilityQueriesImpl struct {
	slots   SlotRepository
	signups SignupRepository
	cache   *AvailabilityCache
	clock   clock.Clock
}

func NewAvailabilityQueries(
	slots SlotRepository,
	signups SignupRepository,
	cache *AvailabilityCache,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		slots:   slots,
		signups: signups,
		cache:   cache,
		clock:   clk,
	}
}

// ListOpenSlots serves the grouped availability listing from the cache
// when a fresh snapshot exists, otherwise from a live read. Only slots
// dated today or later with at least one free seat appear; days are
// sorted ascending and slots within a day by label.
func (q *availabilityQueriesImpl) ListOpenSlots(ctx context.Context) (*AvailabilityView, error) {
	if view := q.cache.Get(); view != nil {
		availabilityCacheHits.Inc()
		return view, nil
	}
	availabilityCacheMisses.Inc()

	slots, err := q.slots.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	today := q.clock.Now().Format(dateLayout)
	byDate := make(map[string][]SlotView)
	total := 0
	for _, s := range slots {
		if !s.OnOrAfter(today) || s.Available() == 0 {
			continue
		}
		byDate[s.Date] = append(byDate[s.Date], slotToView(s))
		total++
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	// YYYY-MM-DD sorts lexicographically in date order
	sort.Strings(dates)

	view := &AvailabilityView{Days: make([]DayView, 0, len(dates)), TotalSlots: total}
	for _, date := range dates {
		daySlots := byDate[date]
		sort.Slice(daySlots, func(i, j int) bool { return daySlots[i].Label < daySlots[j].Label })
		view.Days = append(view.Days, DayView{Date: date, Slots: daySlots})
	}

	q.cache.Set(view)
	return view, nil
}

// ListHistory returns the requester's active signups. It always reads
// live: a requester checking their own bookings right after a write must
// never see a stale snapshot.
func (q *availabilityQueriesImpl) ListHistory(ctx context.Context, rawPhone string) ([]HistoryEntry, error) {
	if !phone.Valid(rawPhone) {
		return nil, ErrInvalidPhone
	}
	normalized := phone.Normalize(rawPhone)

	signups, err := q.signups.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	entries := make([]HistoryEntry, 0)
	for _, s := range signups {
		if !s.Status.IsActive() || !s.OwnedBy(normalized) {
			continue
		}
		entries = append(entries, historyEntry(s))
	}
	return entries, nil
}

// ListHistoryByEmail is the email-keyed lookup for requesters who booked
// with an email address. Matching is case-insensitive on the stored
// address; signups booked without an email never match.
func (q *availabilityQueriesImpl) ListHistoryByEmail(ctx context.Context, rawEmail string) ([]HistoryEntry, error) {
	email := strings.TrimSpace(rawEmail)
	if email == "" || len(email) > signup.MaxEmailLength || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	signups, err := q.signups.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	entries := make([]HistoryEntry, 0)
	for _, s := range signups {
		if !s.Status.IsActive() || s.Requester.Email == "" || !strings.EqualFold(s.Requester.Email, email) {
			continue
		}
		entries = append(entries, historyEntry(s))
	}
	return entries, nil
}

func historyEntry(s signup.Signup) HistoryEntry {
	return HistoryEntry{
		SignupRowID: int(s.ID),
		SlotRowID:   int(s.SlotID),
		Date:        s.Date,
		SlotLabel:   s.SlotLabel,
		Timestamp:   s.Timestamp,
		Name:        s.Requester.Name,
		Category:    s.Requester.Category,
	}
}
