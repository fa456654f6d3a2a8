package baggage

import (
	"fmt"
	"slices"
)

// Passenger is a traveller who owns bags and may raise claims.
type Passenger struct {
	// ID is the unique passenger id.
	ID string `json:"id"`
	// Name is the passenger's full name.
	Name string `json:"name"`
	// FlightNo is the flight the passenger is booked on.
	FlightNo string `json:"flight_no"`
	// Contact is an e-mail or phone number. It is the only mutable profile field.
	Contact string `json:"contact"`
	// ClaimIDs lists the claims raised by this passenger in raise order.
	ClaimIDs []string `json:"claim_ids"`
}

// NewPassenger creates a passenger without claims.
func NewPassenger(id, name, flightNo, contact string) (*Passenger, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: passenger id is required", ErrValidation)
	}

	return &Passenger{
		ID:       id,
		Name:     name,
		FlightNo: flightNo,
		Contact:  contact,
		ClaimIDs: []string{},
	}, nil
}

// UpdateContact overwrites the contact string.
func (p *Passenger) UpdateContact(contact string) {
	p.Contact = contact
}

// AddClaim appends a claim id to the passenger's claims.
func (p *Passenger) AddClaim(claimID string) {
	p.ClaimIDs = append(p.ClaimIDs, claimID)
}

// Clone returns a copy of the passenger with its own claim list.
func (p *Passenger) Clone() *Passenger {
	if p == nil {
		return nil
	}

	cloned := *p
	cloned.ClaimIDs = slices.Clone(p.ClaimIDs)

	if cloned.ClaimIDs == nil {
		cloned.ClaimIDs = []string{}
	}

	return &cloned
}

// String renders the passenger profile on one line.
func (p *Passenger) String() string {
	return fmt.Sprintf("Passenger[%s] %s Flight:%s Contact:%s", p.ID, p.Name, p.FlightNo, p.Contact)
}
