package baggage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a passenger, bag or claim is not registered.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when an identifier is already registered.
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation is returned when a required field is missing or malformed.
	// The specific validation errors below wrap it.
	ErrValidation = errors.New("validation error")
	// ErrInvalidAmount is returned for claim amounts that are not positive.
	ErrInvalidAmount = fmt.Errorf("%w: claim amount must be positive", ErrValidation)
	// ErrInvalidWeight is returned for negative bag weights.
	ErrInvalidWeight = fmt.Errorf("%w: bag weight must not be negative", ErrValidation)
	// ErrUnknownClaimKind is returned when a claim kind label is not recognized.
	ErrUnknownClaimKind = fmt.Errorf("%w: unknown claim kind", ErrValidation)
	// ErrUnknownBagStatus is returned when a bag status label is not recognized.
	ErrUnknownBagStatus = fmt.Errorf("%w: unknown bag status", ErrValidation)
	// ErrClaimNotOpen is returned when settling a claim that is no longer open.
	ErrClaimNotOpen = errors.New("claim is not open")
)
