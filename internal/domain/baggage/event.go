package baggage

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names the mutation that produced an event.
type EventKind string

// Journal event kinds.
const (
	EventPassengerRegistered EventKind = "passenger_registered"
	EventContactUpdated      EventKind = "contact_updated"
	EventBagRegistered       EventKind = "bag_registered"
	EventBagMoved            EventKind = "bag_moved"
	EventBagStatusChanged    EventKind = "bag_status_changed"
	EventClaimRaised         EventKind = "claim_raised"
	EventClaimSettled        EventKind = "claim_settled"
)

// Event is a narration entry emitted by a registry mutation.
type Event struct {
	// ID uniquely identifies the event.
	ID uuid.UUID `json:"id"`
	// Kind names the mutation.
	Kind EventKind `json:"kind"`
	// PassengerID is set when the event concerns a passenger.
	PassengerID string `json:"passenger_id,omitempty"`
	// BagTag is set when the event concerns a bag.
	BagTag string `json:"bag_tag,omitempty"`
	// ClaimID is set when the event concerns a claim.
	ClaimID string `json:"claim_id,omitempty"`
	// Message is a human-readable narration.
	Message string `json:"message"`
	// OccurredAt is when the mutation happened.
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent creates an event with a fresh id.
func NewEvent(kind EventKind, message string, at time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Kind:       kind,
		Message:    message,
		OccurredAt: at,
	}
}
