package registry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	domain "github.com/oshokin/baggage-desk/internal/domain/baggage"
	"github.com/oshokin/baggage-desk/internal/logger"
)

// FirstClaimNumber is the number of the first claim raised by a registry.
const FirstClaimNumber = 100

// Registry owns every passenger, bag and claim for its lifetime.
type Registry struct {
	// passengers maps passenger id to passenger.
	passengers map[string]*domain.Passenger
	// bags maps bag tag to bag.
	bags map[string]*domain.Bag
	// claims holds every claim in raise order.
	claims []*domain.Claim
	// claimsByID indexes claims by id.
	claimsByID map[string]*domain.Claim
	// nextClaimNumber is the number given to the next raised claim.
	nextClaimNumber int
	// journal holds events in the order they happened.
	journal []domain.Event
	// now stamps checkpoints, claims and events.
	now func() time.Time
	// mu serializes every operation.
	mu sync.Mutex
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		passengers:      make(map[string]*domain.Passenger),
		bags:            make(map[string]*domain.Bag),
		claims:          []*domain.Claim{},
		claimsByID:      make(map[string]*domain.Claim),
		nextClaimNumber: FirstClaimNumber,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RegisterPassenger adds a passenger. Passenger ids are unique.
func (r *Registry) RegisterPassenger(
	ctx context.Context,
	id, name, flightNo, contact string,
) (*domain.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.passengers[id]; ok {
		return nil, fmt.Errorf("register passenger %q: %w", id, domain.ErrAlreadyExists)
	}

	p, err := domain.NewPassenger(id, name, flightNo, contact)
	if err != nil {
		return nil, fmt.Errorf("register passenger: %w", err)
	}

	r.passengers[id] = p

	event := domain.NewEvent(
		domain.EventPassengerRegistered,
		fmt.Sprintf("Registered %s", p),
		r.now(),
	)
	event.PassengerID = id
	r.record(ctx, event)

	return p.Clone(), nil
}

// LocatePassenger returns the passenger with the given id.
func (r *Registry) LocatePassenger(_ context.Context, id string) (*domain.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.passengers[id]
	if !ok {
		return nil, fmt.Errorf("passenger %q: %w", id, domain.ErrNotFound)
	}

	return p.Clone(), nil
}

// UpdateContact overwrites a passenger's contact string.
func (r *Registry) UpdateContact(ctx context.Context, id, contact string) (*domain.Passenger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.passengers[id]
	if !ok {
		return nil, fmt.Errorf("update contact of %q: %w", id, domain.ErrNotFound)
	}

	p.UpdateContact(contact)

	event := domain.NewEvent(
		domain.EventContactUpdated,
		fmt.Sprintf("Contact of passenger %s updated to %s", id, contact),
		r.now(),
	)
	event.PassengerID = id
	r.record(ctx, event)

	return p.Clone(), nil
}

// RegisterBag adds a checked-in bag owned by an already registered passenger.
func (r *Registry) RegisterBag(ctx context.Context, tag string, weight float64, ownerID string) (*domain.Bag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bags[tag]; ok {
		return nil, fmt.Errorf("register bag %q: %w", tag, domain.ErrAlreadyExists)
	}

	if _, ok := r.passengers[ownerID]; !ok {
		return nil, fmt.Errorf("register bag %q: owner %q: %w", tag, ownerID, domain.ErrNotFound)
	}

	b, err := domain.NewBag(tag, weight, ownerID)
	if err != nil {
		return nil, fmt.Errorf("register bag: %w", err)
	}

	r.bags[tag] = b

	event := domain.NewEvent(domain.EventBagRegistered, fmt.Sprintf("Registered %s", b), r.now())
	event.BagTag = tag
	event.PassengerID = ownerID
	r.record(ctx, event)

	return b.Clone(), nil
}

// UpdateMovement appends the checkpoint to the bag's route and marks it in transit.
func (r *Registry) UpdateMovement(ctx context.Context, tag string, cp domain.Checkpoint) (*domain.Bag, error) {
	if err := cp.Validate(); err != nil {
		return nil, fmt.Errorf("update movement of %q: %w", tag, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.move(ctx, tag, cp)
}

// RecordCheckpoint creates a checkpoint stamped with the registry clock and
// moves the bag through it.
func (r *Registry) RecordCheckpoint(ctx context.Context, tag, checkpointID, checkpointName string) (*domain.Bag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := domain.NewCheckpoint(checkpointID, checkpointName, r.now())
	if err := cp.Validate(); err != nil {
		return nil, fmt.Errorf("update movement of %q: %w", tag, err)
	}

	return r.move(ctx, tag, cp)
}

// move applies a movement. The caller holds the lock.
func (r *Registry) move(ctx context.Context, tag string, cp domain.Checkpoint) (*domain.Bag, error) {
	b, ok := r.bags[tag]
	if !ok {
		return nil, fmt.Errorf("update movement of %q: %w", tag, domain.ErrNotFound)
	}

	b.RecordMovement(cp)

	event := domain.NewEvent(domain.EventBagMoved, fmt.Sprintf("Bag %s moved through %s", tag, cp), r.now())
	event.BagTag = tag
	r.record(ctx, event)

	return b.Clone(), nil
}

// SetBagStatus overwrites the status of a bag.
func (r *Registry) SetBagStatus(ctx context.Context, tag string, status domain.BagStatus) (*domain.Bag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bags[tag]
	if !ok {
		return nil, fmt.Errorf("set status of %q: %w", tag, domain.ErrNotFound)
	}

	if err := b.SetStatus(status); err != nil {
		return nil, fmt.Errorf("set status of %q: %w", tag, err)
	}

	event := domain.NewEvent(
		domain.EventBagStatusChanged,
		fmt.Sprintf("Bag %s status updated to %s", tag, status),
		r.now(),
	)
	event.BagTag = tag
	r.record(ctx, event)

	return b.Clone(), nil
}

// LocateBag returns the bag with the given tag.
func (r *Registry) LocateBag(_ context.Context, tag string) (*domain.Bag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bags[tag]
	if !ok {
		return nil, fmt.Errorf("bag %q: %w", tag, domain.ErrNotFound)
	}

	return b.Clone(), nil
}

// ListBags returns every bag ordered by tag.
func (r *Registry) ListBags(_ context.Context) []*domain.Bag {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sortedBags()
}

// sortedBags clones every bag ordered by tag. The caller holds the lock.
func (r *Registry) sortedBags() []*domain.Bag {
	result := make([]*domain.Bag, 0, len(r.bags))
	for _, b := range r.bags {
		result = append(result, b.Clone())
	}

	slices.SortFunc(result, func(a, b *domain.Bag) int {
		return strings.Compare(a.Tag, b.Tag)
	})

	return result
}

// RaiseClaim opens a claim for a registered passenger and bag. The claim gets
// the next sequential id and is linked to the passenger's claims.
func (r *Registry) RaiseClaim(
	ctx context.Context,
	kind domain.ClaimKind,
	passengerID, bagTag string,
	amount float64,
) (*domain.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.passengers[passengerID]
	if !ok {
		return nil, fmt.Errorf("raise claim: passenger %q: %w", passengerID, domain.ErrNotFound)
	}

	if _, ok = r.bags[bagTag]; !ok {
		return nil, fmt.Errorf("raise claim: bag %q: %w", bagTag, domain.ErrNotFound)
	}

	id := domain.FormatClaimID(r.nextClaimNumber)

	c, err := domain.NewClaim(id, kind, passengerID, bagTag, amount, r.now())
	if err != nil {
		return nil, fmt.Errorf("raise claim: %w", err)
	}

	// The number is only consumed by claims that were actually raised.
	r.nextClaimNumber++
	r.claims = append(r.claims, c)
	r.claimsByID[id] = c
	p.AddClaim(id)

	event := domain.NewEvent(
		domain.EventClaimRaised,
		fmt.Sprintf("Raised %s claim %s for passenger %s", kind, id, p.Name),
		r.now(),
	)
	event.PassengerID = passengerID
	event.BagTag = bagTag
	event.ClaimID = id
	r.record(ctx, event)

	return c.Clone(), nil
}

// LocateClaim returns the claim with the given id.
func (r *Registry) LocateClaim(_ context.Context, id string) (*domain.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.claimsByID[id]
	if !ok {
		return nil, fmt.Errorf("claim %q: %w", id, domain.ErrNotFound)
	}

	return c.Clone(), nil
}

// ProcessClaims settles every open claim in raise order and returns the
// settlements made by this call. Settled and rejected claims are skipped,
// so a second call pays nothing.
func (r *Registry) ProcessClaims(ctx context.Context) ([]domain.Settlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settlements := []domain.Settlement{}

	for _, c := range r.claims {
		if c.Status != domain.ClaimStatusOpen {
			continue
		}

		settlement, err := c.Settle(r.now())
		if err != nil {
			return settlements, fmt.Errorf("settle claim %s: %w", c.ID, err)
		}

		settlements = append(settlements, settlement)

		event := domain.NewEvent(
			domain.EventClaimSettled,
			fmt.Sprintf("%s claim %s settled at %s $%.2f", c.Kind, c.ID, settlement.Policy, settlement.Payout),
			r.now(),
		)
		event.PassengerID = c.PassengerID
		event.BagTag = c.BagTag
		event.ClaimID = c.ID
		r.record(ctx, event)
	}

	logger.DebugKV(ctx, "Claims processed", "settled", len(settlements), "total", len(r.claims))

	return settlements, nil
}

// ListClaims returns every claim in raise order.
func (r *Registry) ListClaims(_ context.Context) []*domain.Claim {
	r.mu.Lock()
	defer r.mu.Unlock()

	return cloneClaims(r.claims)
}

// PassengerClaims returns the claims raised by a passenger in raise order.
func (r *Registry) PassengerClaims(_ context.Context, passengerID string) ([]*domain.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.passengers[passengerID]
	if !ok {
		return nil, fmt.Errorf("claims of %q: %w", passengerID, domain.ErrNotFound)
	}

	result := make([]*domain.Claim, 0, len(p.ClaimIDs))
	for _, id := range p.ClaimIDs {
		result = append(result, r.claimsByID[id].Clone())
	}

	return result, nil
}

// Journal returns every recorded event in order.
func (r *Registry) Journal(_ context.Context) []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.journal)
}

// record appends the event to the journal and narrates it. The caller holds the lock.
func (r *Registry) record(ctx context.Context, event domain.Event) {
	r.journal = append(r.journal, event)

	logger.InfoKV(
		ctx,
		event.Message,
		"event", event.Kind,
		"event_id", event.ID.String(),
	)
}

// cloneClaims deep-copies a claim list.
func cloneClaims(claims []*domain.Claim) []*domain.Claim {
	result := make([]*domain.Claim, 0, len(claims))
	for _, c := range claims {
		result = append(result, c.Clone())
	}

	return result
}
