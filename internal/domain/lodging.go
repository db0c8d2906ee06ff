package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lodging asserts that one piece of accommodation covers an inclusive range
// of days: the guest occupies every day in [Start, End]. Both bounds are
// day-aligned.
//
// A lodging with a blank Name is a filler — a record synthesized by the
// partition maintainer solely to close a coverage gap. Fillers persist like
// any other lodging.
type Lodging struct {
	ID     uuid.UUID `json:"id"`
	TripID uuid.UUID `json:"trip_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`

	Name     string `json:"name,omitempty"`
	Location string `json:"location"`

	// PricePerNight is nil when the user entered no price.
	PricePerNight *float64 `json:"price_per_night,omitempty"`
	Currency      string   `json:"currency,omitempty"`
}

// IsFiller reports whether this lodging was synthesized to close a gap.
func (l Lodging) IsFiller() bool {
	return l.Name == ""
}

// Covers reports whether day d (day-aligned) falls within [Start, End].
func (l Lodging) Covers(d time.Time) bool {
	return !d.Before(l.Start) && !d.After(l.End)
}

// Label returns the human-readable name for this lodging, falling back to
// its location for fillers.
func (l Lodging) Label() string {
	return FirstNonBlank(l.Name, l.Location)
}
