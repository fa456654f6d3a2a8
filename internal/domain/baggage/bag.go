package baggage

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// BagStatus is the handling stage a bag is currently in.
type BagStatus string

// Known bag statuses.
const (
	BagStatusCheckedIn       BagStatus = "CHECKED_IN"
	BagStatusSecurityCleared BagStatus = "SECURITY_CLEARED"
	BagStatusLoaded          BagStatus = "LOADED"
	BagStatusInTransit       BagStatus = "IN_TRANSIT"
	BagStatusArrived         BagStatus = "ARRIVED"
	BagStatusClaimed         BagStatus = "CLAIMED"
	BagStatusLost            BagStatus = "LOST"
	BagStatusDamaged         BagStatus = "DAMAGED"
)

// bagStatuses lists every known status in lifecycle order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var bagStatuses = []BagStatus{
	BagStatusCheckedIn,
	BagStatusSecurityCleared,
	BagStatusLoaded,
	BagStatusInTransit,
	BagStatusArrived,
	BagStatusClaimed,
	BagStatusLost,
	BagStatusDamaged,
}

// BagStatuses returns all known statuses in lifecycle order.
func BagStatuses() []BagStatus {
	return slices.Clone(bagStatuses)
}

// ParseBagStatus converts a label such as "in_transit" or "Arrived" to a BagStatus.
func ParseBagStatus(s string) (BagStatus, error) {
	normalized := BagStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !normalized.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownBagStatus, s)
	}

	return normalized, nil
}

// Valid reports whether the status is one of the known statuses.
func (s BagStatus) Valid() bool {
	return slices.Contains(bagStatuses, s)
}

// Bag is a tracked piece of luggage.
type Bag struct {
	// Tag is the unique bag tag.
	Tag string `json:"tag"`
	// Weight is the bag weight in kilograms.
	Weight float64 `json:"weight"`
	// OwnerID is the passenger id of the owner. It never changes.
	OwnerID string `json:"owner_id"`
	// Route is the append-only list of checkpoints the bag went through.
	Route []Checkpoint `json:"route"`
	// Status is the current handling stage.
	Status BagStatus `json:"status"`
}

// NewBag creates a checked-in bag with an empty route.
func NewBag(tag string, weight float64, ownerID string) (*Bag, error) {
	if tag == "" {
		return nil, fmt.Errorf("%w: bag tag is required", ErrValidation)
	}

	if ownerID == "" {
		return nil, fmt.Errorf("%w: bag owner is required", ErrValidation)
	}

	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	return &Bag{
		Tag:     tag,
		Weight:  weight,
		OwnerID: ownerID,
		Route:   []Checkpoint{},
		Status:  BagStatusCheckedIn,
	}, nil
}

// RecordMovement appends the checkpoint to the route and marks the bag in transit.
// The status is forced to IN_TRANSIT whatever stage the checkpoint names.
func (b *Bag) RecordMovement(cp Checkpoint) {
	b.Route = append(b.Route, cp)
	b.Status = BagStatusInTransit
}

// SetStatus overwrites the status. Any known status is reachable from any other.
func (b *Bag) SetStatus(status BagStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownBagStatus, status)
	}

	b.Status = status

	return nil
}

// LastCheckpoint returns the most recent checkpoint, if any.
func (b *Bag) LastCheckpoint() (Checkpoint, bool) {
	if len(b.Route) == 0 {
		return Checkpoint{}, false
	}

	return b.Route[len(b.Route)-1], true
}

// Clone returns a copy of the bag with its own route slice.
func (b *Bag) Clone() *Bag {
	if b == nil {
		return nil
	}

	cloned := *b
	cloned.Route = slices.Clone(b.Route)

	if cloned.Route == nil {
		cloned.Route = []Checkpoint{}
	}

	return &cloned
}

// String renders the bag as "Bag[tag] 18.5kg Owner:P1 Status:IN_TRANSIT".
func (b *Bag) String() string {
	return fmt.Sprintf("Bag[%s] %.1fkg Owner:%s Status:%s", b.Tag, b.Weight, b.OwnerID, b.Status)
}
