package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario is the YAML document replayed against a registry.
type Scenario struct {
	Passengers []PassengerStep `yaml:"passengers"`
	Bags       []BagStep       `yaml:"bags"`
	Movements  []MovementStep  `yaml:"movements"`
	Statuses   []StatusStep    `yaml:"statuses"`
	Claims     []ClaimStep     `yaml:"claims"`
	// Process settles open claims after all steps when true or unset.
	Process *bool `yaml:"process,omitempty"`
}

// PassengerStep registers a passenger.
type PassengerStep struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	FlightNo string `yaml:"flight"`
	Contact  string `yaml:"contact"`
}

// BagStep registers a bag.
type BagStep struct {
	Tag    string  `yaml:"tag"`
	Weight float64 `yaml:"weight"`
	Owner  string  `yaml:"owner"`
}

// MovementStep moves a bag through a checkpoint. Without At the scan is
// stamped by the registry clock.
type MovementStep struct {
	Bag            string    `yaml:"bag"`
	CheckpointID   string    `yaml:"checkpoint_id"`
	CheckpointName string    `yaml:"checkpoint_name"`
	At             time.Time `yaml:"at,omitempty"`
}

// StatusStep sets a bag status after the movements.
type StatusStep struct {
	Bag    string `yaml:"bag"`
	Status string `yaml:"status"`
}

// ClaimStep raises a claim.
type ClaimStep struct {
	Kind      string  `yaml:"kind"`
	Passenger string  `yaml:"passenger"`
	Bag       string  `yaml:"bag"`
	Amount    float64 `yaml:"amount"`
}

// ShouldProcess reports whether claims are settled at the end of the replay.
func (s *Scenario) ShouldProcess() bool {
	return s.Process == nil || *s.Process
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var scenario Scenario
	if err = yaml.Unmarshal(contents, &scenario); err != nil {
		return nil, fmt.Errorf("unmarshal scenario: %w", err)
	}

	return &scenario, nil
}

// SecurityScanAt is when BAG001 passes security in DefaultScenario.
var SecurityScanAt = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

// DefaultScenario is the two-passenger demo: Alice loses BAG001 and claims
// 500, Bob's BAG002 is damaged and he claims 300.
func DefaultScenario() *Scenario {
	return &Scenario{
		Passengers: []PassengerStep{
			{ID: "P1", Name: "Alice", FlightNo: "AI101", Contact: "alice@example.com"},
			{ID: "P2", Name: "Bob", FlightNo: "AI102", Contact: "bob@example.com"},
		},
		Bags: []BagStep{
			{Tag: "BAG001", Weight: 18.5, Owner: "P1"},
			{Tag: "BAG002", Weight: 22.0, Owner: "P2"},
		},
		Movements: []MovementStep{
			{Bag: "BAG001", CheckpointID: "C1", CheckpointName: "Check-in"},
			{Bag: "BAG001", CheckpointID: "S1", CheckpointName: "Security", At: SecurityScanAt},
			{Bag: "BAG002", CheckpointID: "C1", CheckpointName: "Check-in"},
		},
		Claims: []ClaimStep{
			{Kind: "loss", Passenger: "P1", Bag: "BAG001", Amount: 500.0},
			{Kind: "damage", Passenger: "P2", Bag: "BAG002", Amount: 300.0},
		},
	}
}
