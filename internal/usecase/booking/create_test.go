package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/dgsoftwash/booking-api/internal/db"
	"github.com/dgsoftwash/booking-api/internal/httperr"
	infraRepo "github.com/dgsoftwash/booking-api/internal/infra/repository"
	"github.com/dgsoftwash/booking-api/internal/models"
)

// 2026-03-06 is a Friday, 03-07 Saturday, 03-08 Sunday, 03-09 Monday.
const (
	friday   = "2026-03-06"
	saturday = "2026-03-07"
	monday   = "2026-03-09"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func newCreate(t *testing.T) (*Create, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewCreate(infraRepo.NewScheduleGormRepository(db)), db
}

func requestFor(date, slot, service string) CreateInput {
	return CreateInput{
		Date:    date,
		Time:    slot,
		Service: service,
		Name:    "Pat Doe",
		Email:   "pat@example.com",
		Phone:   "555-0101",
		Address: "12 Elm St",
		Price:   "$575.00",
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func TestCreateSingleDay(t *testing.T) {
	uc, db := newCreate(t)

	in := requestFor(friday, "10:00", "house-single")
	in.TotalDuration = 3

	got, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, got.Bookings, 1)
	assert.False(t, got.MultiDay)
	assert.Equal(t, friday, got.Bookings[0].Date)
	assert.Equal(t, "10:00", got.Bookings[0].Time)
	assert.Equal(t, 3, got.Bookings[0].Duration)

	assert.Equal(t, int64(1), countRows(t, db, &models.Booking{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.WorkOrder{}))
	assert.Equal(t, int64(1), countRows(t, db, &models.Customer{}))
}

func TestCreateRejectsEstimateOnlyServices(t *testing.T) {
	uc, db := newCreate(t)

	_, err := uc.Execute(context.Background(), requestFor(friday, "09:00", "commercial"))
	assert.True(t, httperr.IsBusiness(err, "service_not_bookable"))

	assert.Equal(t, int64(0), countRows(t, db, &models.Booking{}))
}

func TestCreateRejectsInvalidSlot(t *testing.T) {
	uc, _ := newCreate(t)

	_, err := uc.Execute(context.Background(), requestFor(friday, "16:00", "rv-short"))
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))
}

func TestCreateRejectsOverlap(t *testing.T) {
	uc, db := newCreate(t)

	first := requestFor(friday, "10:00", "house-single")
	first.TotalDuration = 3
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// 12:00 falls inside the 10:00-13:00 window of the first job.
	second := requestFor(friday, "12:00", "rv-short")
	second.TotalDuration = 1
	_, err = uc.Execute(context.Background(), second)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))

	assert.Equal(t, int64(1), countRows(t, db, &models.Booking{}))
}

func TestCreateRejectsDayOverflow(t *testing.T) {
	uc, _ := newCreate(t)

	in := requestFor(friday, "14:00", "house-single")
	in.TotalDuration = 3

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "day_overflow"))
}

func TestCreateRejectsBlockedDay(t *testing.T) {
	uc, db := newCreate(t)
	require.NoError(t, db.Create(&models.Block{Date: friday, Time: models.BlockAllDay}).Error)

	_, err := uc.Execute(context.Background(), requestFor(friday, "09:00", "rv-short"))
	assert.True(t, httperr.IsBusiness(err, "day_unavailable"))
}

func TestCreateRejectsBlockedSlot(t *testing.T) {
	uc, db := newCreate(t)
	require.NoError(t, db.Create(&models.Block{Date: friday, Time: "10:00"}).Error)

	in := requestFor(friday, "09:00", "house-rancher")
	in.TotalDuration = 2

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestCreateMultiDaySpillsToNextWorkingDay(t *testing.T) {
	uc, db := newCreate(t)

	in := requestFor(friday, "11:00", "house-plus")
	in.TotalDuration = 9

	got, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, got.Bookings, 2)
	assert.True(t, got.MultiDay)
	assert.False(t, got.Adjusted)

	// Day 1 claims the whole requested date from the first slot, even
	// though 11:00 was asked for.
	day1 := got.Bookings[0]
	assert.Equal(t, friday, day1.Date)
	assert.Equal(t, "09:00", day1.Time)
	assert.Equal(t, 7, day1.Duration)

	day2 := got.Bookings[1]
	assert.Equal(t, saturday, day2.Date)
	assert.Equal(t, "09:00", day2.Time)
	assert.Equal(t, 2, day2.Duration)
	assert.Contains(t, day2.Notes, "Day 2 of job started "+friday)

	assert.Equal(t, saturday, got.Day2Date)
	assert.Equal(t, "09:00", got.Day2Time)

	// Both days share one customer; each day carries its own work order.
	assert.Equal(t, int64(1), countRows(t, db, &models.Customer{}))
	assert.Equal(t, int64(2), countRows(t, db, &models.WorkOrder{}))
}

func TestCreateMultiDaySkipsSunday(t *testing.T) {
	uc, _ := newCreate(t)

	in := requestFor(saturday, "09:00", "house-plus")
	in.TotalDuration = 8

	got, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, monday, got.Day2Date)
}

func TestCreateMultiDayAdjustsDayTwoStart(t *testing.T) {
	uc, db := newCreate(t)

	// Saturday morning is taken, so day 2 must start later and the
	// caller is told to relay the adjusted time.
	require.NoError(t, db.Create(&models.Booking{
		Date: saturday, Time: "09:00", Duration: 1, Name: "Other",
	}).Error)

	in := requestFor(friday, "09:00", "house-plus")
	in.TotalDuration = 9

	got, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, got.Adjusted)
	assert.Equal(t, "10:00", got.Day2Time)
	assert.Equal(t, saturday, got.Day2Date)
}

func TestCreateMultiDayRollsBackWhenDayTwoFull(t *testing.T) {
	uc, db := newCreate(t)

	require.NoError(t, db.Create(&models.Block{Date: saturday, Time: models.BlockAllDay}).Error)

	in := requestFor(friday, "09:00", "house-plus")
	in.TotalDuration = 9

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "no_day2_window"))

	// Nothing half-committed: day 1 must not exist either.
	assert.Equal(t, int64(0), countRows(t, db, &models.Booking{}))
	assert.Equal(t, int64(0), countRows(t, db, &models.WorkOrder{}))
}

func TestCreateMultiDayRejectsPartiallyBookedFirstDay(t *testing.T) {
	uc, db := newCreate(t)

	taken := requestFor(friday, "13:00", "rv-short")
	taken.TotalDuration = 1
	_, err := uc.Execute(context.Background(), taken)
	require.NoError(t, err)

	// Day 1 of a spillover job needs the whole day, so one existing
	// booking rejects the date itself, not just a slot.
	in := requestFor(friday, "09:00", "house-plus")
	in.TotalDuration = 9

	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "day_unavailable"))

	assert.Equal(t, int64(1), countRows(t, db, &models.Booking{}))
}

func TestCreateDedupesCustomerByPhone(t *testing.T) {
	uc, db := newCreate(t)

	first := requestFor(friday, "09:00", "rv-short")
	first.TotalDuration = 1
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// No email match, but the phone is already on file.
	second := requestFor(saturday, "09:00", "rv-short")
	second.TotalDuration = 1
	second.Email = "pat.new@example.com"
	_, err = uc.Execute(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, int64(1), countRows(t, db, &models.Customer{}))
}

func TestCreateDedupesCustomerByEmail(t *testing.T) {
	uc, db := newCreate(t)

	first := requestFor(friday, "09:00", "rv-short")
	first.TotalDuration = 1
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := requestFor(saturday, "09:00", "rv-short")
	second.TotalDuration = 1
	second.Phone = "555-9999" // same email, different phone
	_, err = uc.Execute(context.Background(), second)
	require.NoError(t, err)

	assert.Equal(t, int64(1), countRows(t, db, &models.Customer{}))
}

func TestCreateResolvesDurationFromCatalog(t *testing.T) {
	uc, db := newCreate(t)

	require.NoError(t, db.Create(&models.Service{
		Key: "house-single", Label: "Single Family House Wash",
		Category: models.CategoryBase, Price: 575, Duration: 2.5,
		Bookable: true, Active: true,
	}).Error)

	got, err := uc.Execute(context.Background(), requestFor(friday, "09:00", "house-single"))
	require.NoError(t, err)

	// 2.5 catalog hours round up to 3 slots.
	assert.Equal(t, 3, got.Bookings[0].Duration)
}

func TestCreateFallsBackToDefaultDuration(t *testing.T) {
	uc, _ := newCreate(t)

	got, err := uc.Execute(context.Background(), requestFor(friday, "09:00", "house-plus"))
	require.NoError(t, err)

	assert.Equal(t, 4, got.Bookings[0].Duration)
}
