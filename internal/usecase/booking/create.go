package booking

import (
	"context"
	"fmt"
	"math"

	domain "github.com/dgsoftwash/booking-api/internal/domain/schedule"
	"github.com/dgsoftwash/booking-api/internal/httperr"
	"github.com/dgsoftwash/booking-api/internal/models"
	"github.com/dgsoftwash/booking-api/internal/timezone"
)

// Services that only get quoted after an on-site look.
var notBookable = map[string]bool{
	"heavy-equipment": true,
	"commercial":      true,
}

// Fallback durations (slots) when a service has no catalog row.
var defaultDurations = map[string]int{
	"house-rancher": 2,
	"house-single":  3,
	"house-plus":    4,
	"deck":          2,
	"fence":         2,
	"rv":            1,
	"boat":          1,
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateInput struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM, a slot start

	Service string
	// Calculator-supplied total duration in slots; 0 means "look it up".
	TotalDuration int

	Name    string
	Email   string
	Phone   string
	Address string
	Price   string
	Notes   string
}

type CreateResult struct {
	Bookings []*models.Booking

	// Multi-day placement details. Adjusted is set when day 2 could not
	// start at the first slot and the customer must be told.
	MultiDay bool
	Adjusted bool
	Day2Date string
	Day2Time string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo domain.Repository
}

func NewCreate(repo domain.Repository) *Create {
	return &Create{repo: repo}
}

// Execute validates and commits a booking request. All availability
// re-checks and inserts run inside one transaction so a multi-day job
// can never half-commit and the check-then-insert window stays closed
// to this process's own writes.
func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*CreateResult, error) {

	// --------------------------------------------------
	// 1. Up-front rejections, before any booking-state read
	// --------------------------------------------------
	if notBookable[in.Service] {
		return nil, httperr.ErrBusiness(
			"service_not_bookable",
			"This service requires a custom estimate. Please call or text to book.",
		)
	}

	if !domain.IsValidSlot(in.Time) {
		return nil, httperr.ErrBusiness(
			"invalid_slot",
			"Invalid time slot selected.",
		)
	}

	duration := uc.resolveDuration(ctx, in)

	result := &CreateResult{}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if duration <= domain.SlotsPerDay {
			return uc.placeSingleDay(ctx, tx, in, duration, result)
		}
		return uc.placeMultiDay(ctx, tx, in, duration, result)
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// resolveDuration prefers the calculator's explicit total, then the
// catalog row's configured duration rounded up to whole slots, then the
// static per-key default.
func (uc *Create) resolveDuration(ctx context.Context, in CreateInput) int {
	if in.TotalDuration > 0 {
		return in.TotalDuration
	}
	if svc, err := uc.repo.GetServiceByKey(ctx, in.Service); err == nil && svc.Duration > 0 {
		return int(math.Ceil(svc.Duration))
	}
	if d, ok := defaultDurations[in.Service]; ok {
		return d
	}
	return 1
}

// ======================================================
// SINGLE DAY
// ======================================================

func (uc *Create) placeSingleDay(
	ctx context.Context,
	tx domain.Repository,
	in CreateInput,
	duration int,
	result *CreateResult,
) error {

	startIdx := domain.SlotIndex(in.Time)
	if startIdx+duration > domain.SlotsPerDay {
		return httperr.ErrBusiness(
			"day_overflow",
			"Not enough time remaining in the day for this service.",
		)
	}

	if err := assertWindowFree(ctx, tx, in.Date, startIdx, duration); err != nil {
		return err
	}

	return uc.commitDay(ctx, tx, in, in.Date, in.Time, duration, "", result)
}

// ======================================================
// MULTI DAY
// ======================================================

func (uc *Create) placeMultiDay(
	ctx context.Context,
	tx domain.Repository,
	in CreateInput,
	duration int,
	result *CreateResult,
) error {

	// Day 1 always consumes the entire requested date from the first
	// slot, regardless of the originally requested start time. Any
	// existing booking therefore rules out the whole day, so a slot
	// conflict here surfaces as a day-level rejection.
	if err := assertWindowFree(ctx, tx, in.Date, 0, domain.SlotsPerDay); err != nil {
		if httperr.IsBusiness(err, "slot_unavailable") {
			return httperr.ErrBusiness(
				"day_unavailable",
				"Sorry, that day is not available. Please select another.",
			)
		}
		return err
	}

	day1, err := domain.ParseDate(in.Date, timezone.Location(""))
	if err != nil {
		return httperr.ErrBusiness("invalid_date", "Invalid appointment date.")
	}
	day2Date := domain.NextWorkingDay(day1).Format(domain.DateLayout)
	remainder := duration - domain.SlotsPerDay

	offset, err := findFirstWindow(ctx, tx, day2Date, remainder)
	if err != nil {
		return err
	}
	if offset < 0 {
		return httperr.ErrBusiness(
			"no_day2_window",
			"Sorry, we couldn't fit the second day of this job. Please pick another date or call to schedule.",
		)
	}

	result.MultiDay = true
	result.Adjusted = offset > 0
	result.Day2Date = day2Date
	result.Day2Time = domain.ValidSlots[offset]

	if err := uc.commitDay(ctx, tx, in, in.Date, domain.ValidSlots[0], domain.SlotsPerDay, "", result); err != nil {
		return err
	}

	day2Note := fmt.Sprintf("Day 2 of job started %s", in.Date)
	return uc.commitDay(ctx, tx, in, day2Date, domain.ValidSlots[offset], remainder, day2Note, result)
}

// ======================================================
// SHARED PLACEMENT HELPERS
// ======================================================

// assertWindowFree re-reads the date's bookings and blocks and rejects
// if any slot in [start, start+size) is taken. Runs inside the commit
// transaction: reads are fresh immediately before the insert decision.
func assertWindowFree(
	ctx context.Context,
	tx domain.Repository,
	date string,
	startIdx int,
	size int,
) error {

	blocks, err := tx.ListBlocksForDate(ctx, date)
	if err != nil {
		return err
	}
	dayBlocked, blockedSlots := domain.BlockIndex(blocks)
	if dayBlocked {
		return httperr.ErrBusiness(
			"day_unavailable",
			"Sorry, that day is not available. Please select another.",
		)
	}

	bookings, err := tx.ListBookingsForDate(ctx, date)
	if err != nil {
		return err
	}
	occupied := domain.OccupiedSet(bookings)

	for i := startIdx; i < startIdx+size; i++ {
		slot := domain.ValidSlots[i]
		if occupied[slot] || blockedSlots[slot] {
			return httperr.ErrBusiness(
				"slot_unavailable",
				"Sorry, that time slot is no longer available. Please select another.",
			)
		}
	}

	return nil
}

// findFirstWindow scans the date from slot 0 for the first free window
// of the given size. Returns -1 when none exists, or an error on a
// whole-day block or store failure.
func findFirstWindow(
	ctx context.Context,
	tx domain.Repository,
	date string,
	size int,
) (int, error) {

	blocks, err := tx.ListBlocksForDate(ctx, date)
	if err != nil {
		return -1, err
	}
	dayBlocked, blockedSlots := domain.BlockIndex(blocks)
	if dayBlocked {
		return -1, nil
	}

	bookings, err := tx.ListBookingsForDate(ctx, date)
	if err != nil {
		return -1, err
	}
	occupied := domain.OccupiedSet(bookings)

	for start := 0; start+size <= domain.SlotsPerDay; start++ {
		free := true
		for i := start; i < start+size; i++ {
			slot := domain.ValidSlots[i]
			if occupied[slot] || blockedSlots[slot] {
				free = false
				break
			}
		}
		if free {
			return start, nil
		}
	}

	return -1, nil
}

// commitDay resolves the customer, inserts one booking row and its
// work order.
func (uc *Create) commitDay(
	ctx context.Context,
	tx domain.Repository,
	in CreateInput,
	date string,
	slot string,
	duration int,
	extraNote string,
	result *CreateResult,
) error {

	customer, err := tx.GetOrCreateCustomer(ctx, in.Name, in.Email, in.Phone, in.Address)
	if err != nil {
		return err
	}

	notes := in.Notes
	if extraNote != "" {
		if notes != "" {
			notes += " | "
		}
		notes += extraNote
	}

	b := &models.Booking{
		Date:       date,
		Time:       slot,
		Duration:   duration,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		Service:    in.Service,
		Price:      in.Price,
		Notes:      notes,
		CustomerID: &customer.ID,
	}
	if err := tx.CreateBooking(ctx, b); err != nil {
		return err
	}

	wo := &models.WorkOrder{
		BookingID:  &b.ID,
		CustomerID: &customer.ID,
		Service:    in.Service,
		Price:      in.Price,
	}
	if err := tx.CreateWorkOrder(ctx, wo); err != nil {
		return err
	}

	result.Bookings = append(result.Bookings, b)
	return nil
}
