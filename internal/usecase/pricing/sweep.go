package pricing

import (
	"context"
	"log"
	"time"

	"github.com/dgsoftwash/booking-api/internal/timezone"
)

type Sweep struct {
	repo  Repository
	cache Cache
}

func NewSweep(repo Repository, cache Cache) *Sweep {
	return &Sweep{repo: repo, cache: cache}
}

// Execute applies every pending scheduled change whose effective date
// has arrived. Idempotent: the applied flag guards each row, so a
// repeated run is a no-op. Returns how many rows were applied.
func (uc *Sweep) Execute(ctx context.Context) (int, error) {
	due, err := uc.repo.ListDueSchedules(ctx, timezone.Today())
	if err != nil {
		return 0, err
	}

	applied := 0
	for i := range due {
		if err := uc.repo.ApplySchedule(ctx, &due[i]); err != nil {
			log.Printf("pricing sweep: schedule %d failed: %v", due[i].ID, err)
			continue
		}
		applied++
	}

	if applied > 0 {
		uc.cache.Invalidate(ctx)
	}

	return applied, nil
}

// Run executes one sweep immediately, then on every tick until the
// context is cancelled. Errors are logged and the next cycle retries
// naturally since unapplied rows stay unapplied.
func (uc *Sweep) Run(ctx context.Context, interval time.Duration, onApplied func(int)) {
	sweep := func() {
		n, err := uc.Execute(ctx)
		if err != nil {
			log.Printf("pricing sweep failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("pricing sweep applied %d scheduled change(s)", n)
		}
		if onApplied != nil {
			onApplied(n)
		}
	}

	sweep()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep()
		}
	}
}
