package pricing

import (
	"context"
	"math"

	"github.com/dgsoftwash/booking-api/internal/models"
)

type QuoteInput struct {
	// Selected service keys, base services and add-ons mixed.
	Services []string
	// Manually toggled discount keys (cash, returning customer, ...).
	Discounts []string
}

type QuoteResult struct {
	Subtotal float64 `json:"subtotal"`
	// The auto tier that applied, empty when none qualified.
	AutoDiscount    string  `json:"auto_discount,omitempty"`
	DiscountPercent float64 `json:"discount_percent"`
	Savings         float64 `json:"savings"`
	Total           float64 `json:"total"`
	// Total job duration in whole slots, for the booking form.
	Duration int `json:"duration"`
}

type Quote struct {
	catalog *GetCatalog
}

func NewQuote(catalog *GetCatalog) *Quote {
	return &Quote{catalog: catalog}
}

// Execute computes the calculator total. Auto-apply tiers key off the
// count of base services only; the single highest-qualifying tier
// applies, never stacked with lower tiers. Manual discounts are
// additive percentages on top.
func (uc *Quote) Execute(ctx context.Context, in QuoteInput) (*QuoteResult, error) {
	catalog, err := uc.catalog.Execute(ctx)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]models.Service, len(catalog.Services))
	for _, s := range catalog.Services {
		byKey[s.Key] = s
	}

	subtotal := 0.0
	rawDuration := 0.0
	baseCount := 0
	for _, key := range in.Services {
		svc, ok := byKey[key]
		if !ok {
			continue
		}
		subtotal += float64(svc.Price)
		rawDuration += svc.Duration
		if svc.Category == models.CategoryBase {
			baseCount++
		}
	}

	result := &QuoteResult{
		Subtotal: round2(subtotal),
		Duration: int(math.Ceil(rawDuration)),
	}

	percent := 0.0

	// Highest qualifying auto tier only.
	var best *models.Discount
	for i := range catalog.Discounts {
		d := catalog.Discounts[i]
		if !d.Auto || baseCount < d.MinServices {
			continue
		}
		if best == nil || d.MinServices > best.MinServices {
			best = &catalog.Discounts[i]
		}
	}
	if best != nil {
		percent += best.Percent
		result.AutoDiscount = best.Key
	}

	wanted := make(map[string]bool, len(in.Discounts))
	for _, k := range in.Discounts {
		wanted[k] = true
	}
	for _, d := range catalog.Discounts {
		if !d.Auto && wanted[d.Key] {
			percent += d.Percent
		}
	}

	savings := subtotal * percent / 100
	result.DiscountPercent = percent
	result.Savings = round2(savings)
	result.Total = round2(subtotal - savings)

	return result, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
