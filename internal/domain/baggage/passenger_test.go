package baggage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestPassenger_ContactAndClaims covers contact updates, claim ordering and cloning.
func TestPassenger_ContactAndClaims(t *testing.T) {
	t.Parallel()

	_, err := NewPassenger("", "Alice", "AI101", "alice@example.com")
	require.ErrorIs(t, err, ErrValidation)

	p, err := NewPassenger("P1", "Alice", "AI101", "alice@example.com")
	require.NoError(t, err)

	p.UpdateContact("+1-555-0100")
	require.Equal(t, "+1-555-0100", p.Contact)

	p.AddClaim("C100")
	p.AddClaim("C102")
	require.Equal(t, []string{"C100", "C102"}, p.ClaimIDs)

	c := p.Clone()
	require.Equal(t, p, c)

	c.AddClaim("C103")
	require.Len(t, p.ClaimIDs, 2)
	require.Nil(t, (*Passenger)(nil).Clone())
}
