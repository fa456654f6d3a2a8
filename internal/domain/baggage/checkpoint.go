package baggage

import (
	"fmt"
	"time"
)

// Checkpoint is a scan event marking a bag's passage through a handling stage.
type Checkpoint struct {
	// ID identifies the scanning point, e.g. "C1".
	ID string `json:"id"`
	// Name is the human-readable stage name, e.g. "Check-in".
	Name string `json:"name"`
	// Timestamp is when the bag was scanned.
	Timestamp time.Time `json:"timestamp"`
}

// NewCheckpoint creates a checkpoint scanned at the given moment.
func NewCheckpoint(id, name string, at time.Time) Checkpoint {
	return Checkpoint{
		ID:        id,
		Name:      name,
		Timestamp: at,
	}
}

// Validate ensures the checkpoint carries an identifier.
func (c Checkpoint) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: checkpoint id is required", ErrValidation)
	}

	return nil
}

// String renders the checkpoint as "[id] name at timestamp".
func (c Checkpoint) String() string {
	return fmt.Sprintf("[%s] %s at %s", c.ID, c.Name, c.Timestamp.Format(time.RFC3339))
}
