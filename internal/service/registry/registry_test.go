package registry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/baggage-desk/internal/domain/baggage"
)

// fixedClock returns a clock that advances one second per call.
func fixedClock() func() time.Time {
	var (
		mu      sync.Mutex
		current = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	)

	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()

		current = current.Add(time.Second)

		return current
	}
}

// newSeeded registers Alice with BAG001 and Bob with BAG002.
func newSeeded(t *testing.T) *Registry {
	t.Helper()

	ctx := context.Background()
	r := New(WithClock(fixedClock()))

	_, err := r.RegisterPassenger(ctx, "P1", "Alice", "AI101", "alice@example.com")
	require.NoError(t, err)
	_, err = r.RegisterPassenger(ctx, "P2", "Bob", "AI102", "bob@example.com")
	require.NoError(t, err)
	_, err = r.RegisterBag(ctx, "BAG001", 18.5, "P1")
	require.NoError(t, err)
	_, err = r.RegisterBag(ctx, "BAG002", 22.0, "P2")
	require.NoError(t, err)

	return r
}

// TestRegistry_LossClaimScenario walks a bag through check-in and settles a loss claim.
func TestRegistry_LossClaimScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newSeeded(t)

	bag, err := r.RecordCheckpoint(ctx, "BAG001", "C1", "Check-in")
	require.NoError(t, err)
	require.Equal(t, domain.BagStatusInTransit, bag.Status)
	require.Len(t, bag.Route, 1)
	require.Equal(t, "C1", bag.Route[0].ID)

	claim, err := r.RaiseClaim(ctx, domain.ClaimKindLoss, "P1", "BAG001", 500.0)
	require.NoError(t, err)
	require.Equal(t, "C100", claim.ID)
	require.Equal(t, domain.ClaimStatusOpen, claim.Status)

	settlements, err := r.ProcessClaims(ctx)
	require.NoError(t, err)
	require.Len(t, settlements, 1)

	settled, err := r.LocateClaim(ctx, claim.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ClaimStatusSettled, settled.Status)
	require.InDelta(t, 500.0, settled.Payout, 0)
	require.False(t, settled.SettledAt.IsZero())
}

// TestRegistry_DamageClaimScenario settles a damage claim at half the amount.
func TestRegistry_DamageClaimScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newSeeded(t)

	claim, err := r.RaiseClaim(ctx, domain.ClaimKindDamage, "P2", "BAG002", 300.0)
	require.NoError(t, err)

	_, err = r.ProcessClaims(ctx)
	require.NoError(t, err)

	settled, err := r.LocateClaim(ctx, claim.ID)
	require.NoError(t, err)
	require.InDelta(t, 150.0, settled.Payout, 0)
}

// TestRegistry_ProcessClaimsIdempotent verifies a second pass settles nothing and changes nothing.
func TestRegistry_ProcessClaimsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newSeeded(t)

	_, err := r.RaiseClaim(ctx, domain.ClaimKindLoss, "P1", "BAG001", 500)
	require.NoError(t, err)
	_, err = r.RaiseClaim(ctx, domain.ClaimKindDamage, "P2", "BAG002", 300)
	require.NoError(t, err)

	first, err := r.ProcessClaims(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Equal(t, "C100", first[0].ClaimID)
	require.Equal(t, "C101", first[1].ClaimID)

	afterFirst := r.ListClaims(ctx)

	second, err := r.ProcessClaims(ctx)
	require.NoError(t, err)
	require.Empty(t, second)
	require.Equal(t, afterFirst, r.ListClaims(ctx))
	require.InDelta(t, 650.0, r.Snapshot(ctx).TotalPayout, 0)

	// A claim raised later is settled by the next pass only.
	late, err := r.RaiseClaim(ctx, domain.ClaimKindLoss, "P1", "BAG001", 20)
	require.NoError(t, err)
	require.Equal(t, "C102", late.ID)

	third, err := r.ProcessClaims(ctx)
	require.NoError(t, err)
	require.Len(t, third, 1)
	require.Equal(t, "C102", third[0].ClaimID)
}

// TestRegistry_PassengerClaims checks the passenger's claims share state with the registry.
func TestRegistry_PassengerClaims(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newSeeded(t)

	_, err := r.RaiseClaim(ctx, domain.ClaimKindLoss, "P1", "BAG001", 100)
	require.NoError(t, err)
	_, err = r.RaiseClaim(ctx, domain.ClaimKindDamage, "P2", "BAG002", 40)
	require.NoError(t, err)
	_, err = r.RaiseClaim(ctx, domain.ClaimKindDamage, "P1", "BAG001", 60)
	require.NoError(t, err)

	_, err = r.ProcessClaims(ctx)
	require.NoError(t, err)

	claims, err := r.PassengerClaims(ctx, "P1")
	require.NoError(t, err)
	require.Len(t, claims, 2)
	require.Equal(t, "C100", claims[0].ID)
	require.Equal(t, "C102", claims[1].ID)
	require.Equal(t, domain.ClaimStatusSettled, claims[1].Status)
	require.InDelta(t, 30.0, claims[1].Payout, 0)

	p, err := r.LocatePassenger(ctx, "P1")
	require.NoError(t, err)
	require.Equal(t, []string{"C100", "C102"}, p.ClaimIDs)

	_, err = r.PassengerClaims(ctx, "P9")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// TestRegistry_NotFound ensures unknown identifiers surface ErrNotFound without side effects.
func TestRegistry_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newSeeded(t)
	before := len(r.Journal(ctx))

	bag, err := r.LocateBag(ctx, "UNKNOWN")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.Nil(t, bag)

	_, err = r.RecordCheckpoint(ctx, "UNKNOWN", "C1", "Check-in")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.UpdateMovement(ctx, "UNKNOWN", domain.NewCheckpoint("C1", "Check-in", time.Now()))
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.SetBagStatus(ctx, "UNKNOWN", domain.BagStatusLost)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.UpdateContact(ctx, "P9", "x")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.RegisterBag(ctx, "BAG009", 1, "P9")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.RaiseClaim(ctx, domain.ClaimKindLoss, "P9", "BAG001", 1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.RaiseClaim(ctx, domain.ClaimKindLoss, "P1", "BAG009", 1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.LocateClaim(ctx, "C999")
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.Len(t, r.Journal(ctx), before)
}

// TestRegistry_Duplicates ensures re-registration is rejected and keeps the original entry.
func TestRegistry_Duplicates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newSeeded(t)

	_, err := r.RegisterPassenger(ctx, "P1", "Mallory", "XX000", "m@example.com")
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	p, err := r.LocatePassenger(ctx, "P1")
	require.NoError(t, err)
	require.Equal(t, "Alice", p.Name)

	_, err = r.RegisterBag(ctx, "BAG001", 99, "P2")
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	b, err := r.LocateBag(ctx, "BAG001")
	require.NoError(t, err)
	require.Equal(t, "P1", b.OwnerID)
}

// TestRegistry_InvalidClaims checks validation does not consume claim numbers.
func TestRegistry_InvalidClaims(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newSeeded(t)

	_, err := r.RaiseClaim(ctx, domain.ClaimKindLoss, "P1", "BAG001", 0)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = r.RaiseClaim(ctx, domain.ClaimKindLoss, "P1", "BAG001", -10)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = r.RaiseClaim(ctx, "theft", "P1", "BAG001", 10)
	require.ErrorIs(t, err, domain.ErrUnknownClaimKind)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = r.RaiseClaim(ctx, domain.ClaimKindDamage, "P1", "BAG001", 0)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = r.RegisterBag(ctx, "BAG009", -1, "P1")
	require.ErrorIs(t, err, domain.ErrInvalidWeight)
	require.ErrorIs(t, err, domain.ErrValidation)

	require.Empty(t, r.ListClaims(ctx))

	c, err := r.RaiseClaim(ctx, domain.ClaimKindLoss, "P1", "BAG001", 10)
	require.NoError(t, err)
	require.Equal(t, "C100", c.ID)
}

// TestRegistry_StatusAndContact covers permissive status changes and contact updates.
func TestRegistry_StatusAndContact(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newSeeded(t)

	b, err := r.SetBagStatus(ctx, "BAG001", domain.BagStatusClaimed)
	require.NoError(t, err)
	require.Equal(t, domain.BagStatusClaimed, b.Status)

	b, err = r.SetBagStatus(ctx, "BAG001", domain.BagStatusCheckedIn)
	require.NoError(t, err)
	require.Equal(t, domain.BagStatusCheckedIn, b.Status)

	_, err = r.SetBagStatus(ctx, "BAG001", "VANISHED")
	require.ErrorIs(t, err, domain.ErrUnknownBagStatus)

	p, err := r.UpdateContact(ctx, "P1", "+1-555-0100")
	require.NoError(t, err)
	require.Equal(t, "+1-555-0100", p.Contact)
	require.Equal(t, "Alice", p.Name)
}

// TestRegistry_UpdateMovement keeps the caller's checkpoint as the last route entry.
func TestRegistry_UpdateMovement(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newSeeded(t)

	_, err := r.UpdateMovement(ctx, "BAG001", domain.Checkpoint{Name: "no id"})
	require.ErrorIs(t, err, domain.ErrValidation)

	cp := domain.NewCheckpoint("S1", "Security", time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))

	_, err = r.RecordCheckpoint(ctx, "BAG001", "C1", "Check-in")
	require.NoError(t, err)

	b, err := r.UpdateMovement(ctx, "BAG001", cp)
	require.NoError(t, err)
	require.Len(t, b.Route, 2)
	require.Equal(t, cp, b.Route[1])
	require.Equal(t, domain.BagStatusInTransit, b.Status)
}

// TestRegistry_ReturnsCopies ensures callers cannot mutate registry state through results.
func TestRegistry_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newSeeded(t)

	b, err := r.LocateBag(ctx, "BAG001")
	require.NoError(t, err)

	b.Status = domain.BagStatusLost
	b.Route = append(b.Route, domain.Checkpoint{ID: "X"})

	again, err := r.LocateBag(ctx, "BAG001")
	require.NoError(t, err)
	require.Equal(t, domain.BagStatusCheckedIn, again.Status)
	require.Empty(t, again.Route)
}

// TestRegistry_JournalAndSnapshot checks events are recorded and the snapshot is ordered.
func TestRegistry_JournalAndSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := newSeeded(t)

	_, err := r.RecordCheckpoint(ctx, "BAG002", "C1", "Check-in")
	require.NoError(t, err)
	_, err = r.RaiseClaim(ctx, domain.ClaimKindDamage, "P2", "BAG002", 300)
	require.NoError(t, err)
	_, err = r.ProcessClaims(ctx)
	require.NoError(t, err)

	journal := r.Journal(ctx)
	kinds := make([]domain.EventKind, 0, len(journal))

	for _, e := range journal {
		kinds = append(kinds, e.Kind)
	}

	require.Equal(t, []domain.EventKind{
		domain.EventPassengerRegistered,
		domain.EventPassengerRegistered,
		domain.EventBagRegistered,
		domain.EventBagRegistered,
		domain.EventBagMoved,
		domain.EventClaimRaised,
		domain.EventClaimSettled,
	}, kinds)
	require.Equal(t, "C100", journal[6].ClaimID)
	require.NotEqual(t, journal[0].ID, journal[1].ID)

	snapshot := r.Snapshot(ctx)
	require.Len(t, snapshot.Passengers, 2)
	require.Equal(t, "P1", snapshot.Passengers[0].ID)
	require.Equal(t, "BAG001", snapshot.Bags[0].Tag)
	require.Equal(t, "BAG002", snapshot.Bags[1].Tag)
	require.Len(t, snapshot.Claims, 1)
	require.InDelta(t, 150.0, snapshot.TotalPayout, 0)
}

// TestRegistry_ConcurrentClaims raises claims from many goroutines and checks ids stay unique.
func TestRegistry_ConcurrentClaims(t *testing.T) {
	t.Parallel()

	const workers = 16

	ctx := context.Background()
	r := newSeeded(t)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]struct{}, workers)
	)

	for range workers {
		wg.Go(func() {
			c, err := r.RaiseClaim(ctx, domain.ClaimKindLoss, "P1", "BAG001", 1)
			if err != nil {
				return
			}

			mu.Lock()
			ids[c.ID] = struct{}{}
			mu.Unlock()
		})
	}

	wg.Wait()

	require.Len(t, ids, workers)

	settlements, err := r.ProcessClaims(ctx)
	require.NoError(t, err)
	require.Len(t, settlements, workers)
}
