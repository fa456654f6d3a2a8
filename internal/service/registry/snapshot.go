package registry

import (
	"context"
	"slices"
	"strings"

	domain "github.com/oshokin/baggage-desk/internal/domain/baggage"
)

// Snapshot copies the registry under a single lock acquisition.
func (r *Registry) Snapshot(_ context.Context) *domain.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	passengers := make([]*domain.Passenger, 0, len(r.passengers))
	for _, p := range r.passengers {
		passengers = append(passengers, p.Clone())
	}

	slices.SortFunc(passengers, func(a, b *domain.Passenger) int {
		return strings.Compare(a.ID, b.ID)
	})

	var total float64

	for _, c := range r.claims {
		if c.Status == domain.ClaimStatusSettled {
			total += c.Payout
		}
	}

	return &domain.Snapshot{
		TakenAt:     r.now(),
		Passengers:  passengers,
		Bags:        r.sortedBags(),
		Claims:      cloneClaims(r.claims),
		TotalPayout: total,
	}
}
