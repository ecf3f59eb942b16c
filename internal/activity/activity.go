// Package activity holds what every category record shares: identity, ownership, timestamp and the
// emission snapshot computed at write time.
package activity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"carbon-footprint/backend/internal/emission"
)

// ErrNotFound is returned when an update, delete or lookup references an unknown record id.
var ErrNotFound = errors.New("record not found")

// Meta is embedded in every category record.
// Emission is a snapshot under the factor table in effect when the record was written; it is never
// accepted from callers and never recomputed on read.
type Meta struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	RecordedAt time.Time `json:"dateTime"`
	Emission   float64   `json:"emission"`
}

// GetMeta returns the embedded metadata.
func (m *Meta) GetMeta() *Meta { return m }

// Stamp defaults RecordedAt to now when unset.
func (m *Meta) Stamp(now time.Time) {
	if m.RecordedAt.IsZero() {
		m.RecordedAt = now
	}
}

// ValidateOwner returns emission.ErrInvalidArgument when the record has no owning user.
func (m *Meta) ValidateOwner() error {
	if strings.TrimSpace(m.UserID) == "" {
		return fmt.Errorf("%w: user id is required", emission.ErrInvalidArgument)
	}
	return nil
}

// Record is implemented by every category record through the embedded Meta.
type Record interface {
	GetMeta() *Meta
}

// TotalEmission sums the emission snapshot of each record.
func TotalEmission[T Record](records []T) float64 {
	var total float64
	for _, r := range records {
		total += r.GetMeta().Emission
	}
	return total
}
