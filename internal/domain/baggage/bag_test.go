package baggage

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestNewBag_Validation checks required fields and weight bounds.
func TestNewBag_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewBag("", 10, "P1")
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewBag("BAG001", 10, "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = NewBag("BAG001", -1, "P1")
	require.ErrorIs(t, err, ErrInvalidWeight)

	_, err = NewBag("BAG001", math.NaN(), "P1")
	require.ErrorIs(t, err, ErrInvalidWeight)

	b, err := NewBag("BAG001", 0, "P1")
	require.NoError(t, err)
	require.Equal(t, BagStatusCheckedIn, b.Status)
	require.Empty(t, b.Route)
}

// TestBag_RecordMovement verifies the route grows and the bag goes in transit.
func TestBag_RecordMovement(t *testing.T) {
	t.Parallel()

	b, err := NewBag("BAG001", 18.5, "P1")
	require.NoError(t, err)

	_, ok := b.LastCheckpoint()
	require.False(t, ok)

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	checkIn := NewCheckpoint("C1", "Check-in", ts)
	b.RecordMovement(checkIn)

	require.Equal(t, BagStatusInTransit, b.Status)
	require.Len(t, b.Route, 1)

	last, ok := b.LastCheckpoint()
	require.True(t, ok)
	require.Equal(t, checkIn, last)

	// Status is forced back to IN_TRANSIT even after arrival.
	require.NoError(t, b.SetStatus(BagStatusArrived))
	b.RecordMovement(NewCheckpoint("S1", "Security", ts.Add(time.Minute)))
	require.Equal(t, BagStatusInTransit, b.Status)
	require.Len(t, b.Route, 2)
}

// TestBag_SetStatus ensures every known status is reachable and unknown ones are rejected.
func TestBag_SetStatus(t *testing.T) {
	t.Parallel()

	b, err := NewBag("BAG001", 1, "P1")
	require.NoError(t, err)

	for _, status := range BagStatuses() {
		require.NoError(t, b.SetStatus(status))
		require.Equal(t, status, b.Status)
	}

	require.ErrorIs(t, b.SetStatus("TELEPORTED"), ErrUnknownBagStatus)
	require.Equal(t, BagStatusDamaged, b.Status)
}

// TestParseBagStatus checks case-insensitive parsing.
func TestParseBagStatus(t *testing.T) {
	t.Parallel()

	got, err := ParseBagStatus(" in_transit ")
	require.NoError(t, err)
	require.Equal(t, BagStatusInTransit, got)

	_, err = ParseBagStatus("misplaced")
	require.ErrorIs(t, err, ErrUnknownBagStatus)
}

// TestBag_Clone verifies the route slice is not shared.
func TestBag_Clone(t *testing.T) {
	t.Parallel()

	require.Nil(t, (*Bag)(nil).Clone())

	b, err := NewBag("BAG001", 1, "P1")
	require.NoError(t, err)
	b.RecordMovement(NewCheckpoint("C1", "Check-in", time.Now()))

	c := b.Clone()
	require.Equal(t, b, c)
	require.NotSame(t, b, c)

	c.RecordMovement(NewCheckpoint("S1", "Security", time.Now()))
	require.Len(t, b.Route, 1)
}

// TestCheckpoint_Validate requires an id.
func TestCheckpoint_Validate(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, Checkpoint{Name: "Check-in"}.Validate(), ErrValidation)
	require.NoError(t, NewCheckpoint("C1", "Check-in", time.Now()).Validate())
}
