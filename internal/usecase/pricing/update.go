package pricing

import (
	"context"
	"strconv"

	"github.com/dgsoftwash/booking-api/internal/httperr"
	"github.com/dgsoftwash/booking-api/internal/models"
)

// Fields an admin may edit directly or schedule for later.
const (
	FieldPrice    = "price"
	FieldDuration = "duration"
	FieldPercent  = "percent"
)

type Update struct {
	repo  Repository
	cache Cache
}

func NewUpdate(repo Repository, cache Cache) *Update {
	return &Update{repo: repo, cache: cache}
}

// Service applies an immediate field change to a service and
// invalidates the catalog cache.
func (uc *Update) Service(ctx context.Context, id uint, field, value string) error {
	parsed, err := ParseFieldValue(field, value)
	if err != nil {
		return err
	}
	if field == FieldPercent {
		return httperr.ErrBusiness("invalid_field", "Services have no percent field.")
	}
	if err := uc.repo.UpdateServiceField(ctx, id, field, parsed); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx)
	return nil
}

// Discount applies an immediate percent change to a discount.
func (uc *Update) Discount(ctx context.Context, id uint, field, value string) error {
	if field != FieldPercent {
		return httperr.ErrBusiness("invalid_field", "Only the percent field can be changed on a discount.")
	}
	parsed, err := ParseFieldValue(field, value)
	if err != nil {
		return err
	}
	if err := uc.repo.UpdateDiscountField(ctx, id, field, parsed); err != nil {
		return err
	}
	uc.cache.Invalidate(ctx)
	return nil
}

type ScheduleInput struct {
	ServiceID     *uint
	DiscountID    *uint
	Field         string
	NewValue      string
	EffectiveDate string // YYYY-MM-DD
}

// Schedule records a future change. Exactly one of service/discount
// must be targeted; the value must parse for its field now so the
// sweep can't fail on garbage later.
func (uc *Update) Schedule(ctx context.Context, in ScheduleInput) (*models.PricingSchedule, error) {
	if (in.ServiceID == nil) == (in.DiscountID == nil) {
		return nil, httperr.ErrBusiness("invalid_target", "Exactly one of service or discount must be targeted.")
	}
	if _, err := ParseFieldValue(in.Field, in.NewValue); err != nil {
		return nil, err
	}

	s := &models.PricingSchedule{
		ServiceID:     in.ServiceID,
		DiscountID:    in.DiscountID,
		Field:         in.Field,
		NewValue:      in.NewValue,
		EffectiveDate: in.EffectiveDate,
	}
	if err := uc.repo.CreateSchedule(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *Update) DeleteSchedule(ctx context.Context, id uint) error {
	return uc.repo.DeleteSchedule(ctx, id)
}

// ParseFieldValue converts the stored string value per field: price is
// an integer, duration and percent are reals.
func ParseFieldValue(field, value string) (any, error) {
	switch field {
	case FieldPrice:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_value", "Price must be a whole number.")
		}
		return n, nil
	case FieldDuration:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_value", "Duration must be a number.")
		}
		return f, nil
	case FieldPercent:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < 0 || f > 100 {
			return nil, httperr.ErrBusiness("invalid_value", "Percent must be between 0 and 100.")
		}
		return f, nil
	default:
		return nil, httperr.ErrBusiness("invalid_field", "Unknown pricing field.")
	}
}
