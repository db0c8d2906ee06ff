// Package domain contains the core data types for the trip planner.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (timeline, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip represents a single date-bounded trip.
// A trip is the top-level aggregate; lodgings, activities, and day plans
// belong to a trip and are deleted together with it.
//
// StartDay and EndDay are day-aligned (midnight UTC) and inclusive:
// the trip occupies every calendar day in [StartDay, EndDay].
type Trip struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	StartDay time.Time `json:"start_day"`
	EndDay   time.Time `json:"end_day"`

	// StartingPoint is where the trip departs from on the first day.
	StartingPoint string `json:"starting_point"`

	// EndingPoint is where the trip arrives on the last day.
	// Blank means "same as StartingPoint"; resolution happens at read time,
	// the stored value stays blank.
	EndingPoint string `json:"ending_point,omitempty"`

	// DefaultLocation is the location inherited by filler lodgings that are
	// synthesized to close coverage gaps. Blank falls back to StartingPoint.
	DefaultLocation string `json:"default_location,omitempty"`

	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResolvedEndingPoint returns EndingPoint, or StartingPoint when blank.
func (t Trip) ResolvedEndingPoint() string {
	return FirstNonBlank(t.EndingPoint, t.StartingPoint)
}

// FillerLocation returns the location a synthesized filler lodging inherits.
func (t Trip) FillerLocation() string {
	return FirstNonBlank(t.DefaultLocation, t.StartingPoint)
}
