// Package baggage contains core domain types for baggage tracking and claims.
//
// It defines Passenger, Bag (with its Checkpoint route history), Claim and the
// settlement policies applied to loss and damage claims. Entities reference
// each other by stable identifiers and expose Clone helpers so the registry
// never leaks internal state.
package baggage
