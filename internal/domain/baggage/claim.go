package baggage

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ClaimKind selects the settlement policy of a claim.
type ClaimKind string

// Known claim kinds.
const (
	ClaimKindLoss   ClaimKind = "loss"
	ClaimKindDamage ClaimKind = "damage"
)

// ClaimStatus is the lifecycle stage of a claim.
type ClaimStatus string

// Claim statuses. A claim moves from OPEN to SETTLED exactly once.
// REJECTED is reserved; no settlement policy produces it.
const (
	ClaimStatusOpen     ClaimStatus = "OPEN"
	ClaimStatusSettled  ClaimStatus = "SETTLED"
	ClaimStatusRejected ClaimStatus = "REJECTED"
)

// DamageDepreciation is the share of the claimed amount paid for damage claims.
const DamageDepreciation = 0.5

// claimIDPrefix prefixes every claim number.
const claimIDPrefix = "C"

// FormatClaimID renders a claim number as a claim id, e.g. 100 -> "C100".
func FormatClaimID(number int) string {
	return claimIDPrefix + strconv.Itoa(number)
}

// ParseClaimKind converts a label to a ClaimKind, ignoring case and surrounding spaces.
func ParseClaimKind(s string) (ClaimKind, error) {
	kind := ClaimKind(strings.ToLower(strings.TrimSpace(s)))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownClaimKind, s)
	}

	return kind, nil
}

// Valid reports whether the kind is known.
func (k ClaimKind) Valid() bool {
	return k == ClaimKindLoss || k == ClaimKindDamage
}

// Policy returns the settlement policy for the kind.
// Unknown kinds get nil; callers validate kinds before raising claims.
//
//nolint:ireturn // Policies are selected by kind.
func (k ClaimKind) Policy() SettlementPolicy {
	switch k {
	case ClaimKindLoss:
		return lossPolicy{}
	case ClaimKindDamage:
		return damagePolicy{ratio: DamageDepreciation}
	default:
		return nil
	}
}

// SettlementPolicy computes the payout for a claimed amount.
type SettlementPolicy interface {
	// Payout returns the amount paid out for the claimed amount.
	Payout(amount float64) float64
	// Describe returns a short label of the policy for narration.
	Describe() string
}

// lossPolicy pays the full claimed amount.
type lossPolicy struct{}

// Payout returns the claimed amount unchanged.
func (lossPolicy) Payout(amount float64) float64 { return amount }

// Describe returns "full amount".
func (lossPolicy) Describe() string { return "full amount" }

// damagePolicy pays a fixed share of the claimed amount.
type damagePolicy struct {
	// ratio is the paid share of the claimed amount.
	ratio float64
}

// Payout returns the depreciated amount.
func (p damagePolicy) Payout(amount float64) float64 { return amount * p.ratio }

// Describe returns the paid share as a percentage.
func (p damagePolicy) Describe() string {
	return fmt.Sprintf("%g%% payout", p.ratio*100)
}

// Claim is a monetary request raised by a passenger against a bag.
type Claim struct {
	// ID is the unique claim id, e.g. "C100".
	ID string `json:"id"`
	// Kind selects the settlement policy.
	Kind ClaimKind `json:"kind"`
	// PassengerID is the claimant.
	PassengerID string `json:"passenger_id"`
	// BagTag is the bag the claim is about.
	BagTag string `json:"bag_tag"`
	// Amount is the claimed value.
	Amount float64 `json:"amount"`
	// Status is the lifecycle stage.
	Status ClaimStatus `json:"status"`
	// Payout is the settled amount. It is zero until the claim is settled.
	Payout float64 `json:"payout"`
	// RaisedAt is when the claim was raised.
	RaisedAt time.Time `json:"raised_at"`
	// SettledAt is when the claim was settled, zero while open.
	SettledAt time.Time `json:"settled_at,omitzero"`
}

// NewClaim creates an open claim.
func NewClaim(id string, kind ClaimKind, passengerID, bagTag string, amount float64, at time.Time) (*Claim, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClaimKind, kind)
	}

	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	return &Claim{
		ID:          id,
		Kind:        kind,
		PassengerID: passengerID,
		BagTag:      bagTag,
		Amount:      amount,
		Status:      ClaimStatusOpen,
		RaisedAt:    at,
	}, nil
}

// Settlement records a single settled claim.
type Settlement struct {
	// ClaimID is the settled claim.
	ClaimID string `json:"claim_id"`
	// Kind is the claim kind that selected the policy.
	Kind ClaimKind `json:"kind"`
	// Amount is the claimed value.
	Amount float64 `json:"amount"`
	// Payout is the amount paid out.
	Payout float64 `json:"payout"`
	// Policy describes the applied policy.
	Policy string `json:"policy"`
}

// Settle applies the kind's policy and marks the claim settled.
// Only open claims can be settled.
func (c *Claim) Settle(at time.Time) (Settlement, error) {
	if c.Status != ClaimStatusOpen {
		return Settlement{}, fmt.Errorf("%w: %s is %s", ErrClaimNotOpen, c.ID, c.Status)
	}

	policy := c.Kind.Policy()
	if policy == nil {
		return Settlement{}, fmt.Errorf("%w: %q", ErrUnknownClaimKind, c.Kind)
	}

	c.Payout = policy.Payout(c.Amount)
	c.Status = ClaimStatusSettled
	c.SettledAt = at

	return Settlement{
		ClaimID: c.ID,
		Kind:    c.Kind,
		Amount:  c.Amount,
		Payout:  c.Payout,
		Policy:  policy.Describe(),
	}, nil
}

// Clone returns a copy of the claim.
func (c *Claim) Clone() *Claim {
	if c == nil {
		return nil
	}

	cloned := *c

	return &cloned
}

// String renders the claim as "C100 | P1 | Bag:BAG001 | $500.00 | Status:OPEN".
func (c *Claim) String() string {
	return fmt.Sprintf("%s | %s | Bag:%s | $%.2f | Status:%s", c.ID, c.PassengerID, c.BagTag, c.Amount, c.Status)
}
