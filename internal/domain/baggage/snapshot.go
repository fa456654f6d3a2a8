package baggage

import "time"

// Snapshot is a consistent copy of a whole registry.
type Snapshot struct {
	// TakenAt is when the snapshot was taken.
	TakenAt time.Time `json:"taken_at"`
	// Passengers is ordered by id.
	Passengers []*Passenger `json:"passengers"`
	// Bags is ordered by tag.
	Bags []*Bag `json:"bags"`
	// Claims is in raise order.
	Claims []*Claim `json:"claims"`
	// TotalPayout sums the payouts of settled claims.
	TotalPayout float64 `json:"total_payout"`
}

// Passenger returns the passenger with the given id from the snapshot.
func (s *Snapshot) Passenger(id string) (*Passenger, bool) {
	for _, p := range s.Passengers {
		if p.ID == id {
			return p, true
		}
	}

	return nil, false
}
