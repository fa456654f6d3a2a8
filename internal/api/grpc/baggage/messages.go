package baggage

import (
	"time"

	domain "github.com/oshokin/baggage-desk/internal/domain/baggage"
)

// RegisterPassengerRequest registers a passenger.
type RegisterPassengerRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FlightNo string `json:"flight_no"`
	Contact  string `json:"contact"`
}

// LocatePassengerRequest looks a passenger up by id.
type LocatePassengerRequest struct {
	PassengerID string `json:"passenger_id"`
}

// UpdateContactRequest changes a passenger's contact.
type UpdateContactRequest struct {
	PassengerID string `json:"passenger_id"`
	Contact     string `json:"contact"`
}

// RegisterBagRequest registers a bag for an existing passenger.
type RegisterBagRequest struct {
	Tag     string  `json:"tag"`
	Weight  float64 `json:"weight"`
	OwnerID string  `json:"owner_id"`
}

// UpdateMovementRequest moves a bag through a checkpoint.
// A zero Timestamp lets the server stamp the checkpoint.
type UpdateMovementRequest struct {
	Tag            string    `json:"tag"`
	CheckpointID   string    `json:"checkpoint_id"`
	CheckpointName string    `json:"checkpoint_name"`
	Timestamp      time.Time `json:"timestamp,omitzero"`
}

// SetBagStatusRequest overwrites a bag's status.
type SetBagStatusRequest struct {
	Tag    string `json:"tag"`
	Status string `json:"status"`
}

// LocateBagRequest looks a bag up by tag.
type LocateBagRequest struct {
	Tag string `json:"tag"`
}

// ListBagsResponse lists bags ordered by tag.
type ListBagsResponse struct {
	Bags []*domain.Bag `json:"bags"`
}

// RaiseClaimRequest raises a claim. Kind is "loss" or "damage".
type RaiseClaimRequest struct {
	Kind        string  `json:"kind"`
	PassengerID string  `json:"passenger_id"`
	BagTag      string  `json:"bag_tag"`
	Amount      float64 `json:"amount"`
}

// LocateClaimRequest looks a claim up by id.
type LocateClaimRequest struct {
	ClaimID string `json:"claim_id"`
}

// ListClaimsRequest lists claims, optionally only those of one passenger.
type ListClaimsRequest struct {
	PassengerID string `json:"passenger_id,omitempty"`
}

// ListClaimsResponse lists claims in raise order.
type ListClaimsResponse struct {
	Claims []*domain.Claim `json:"claims"`
}

// ProcessClaimsResponse lists the settlements made by one processing pass.
type ProcessClaimsResponse struct {
	Settlements []domain.Settlement `json:"settlements"`
}

// JournalResponse lists registry events in order.
type JournalResponse struct {
	Events []domain.Event `json:"events"`
}
