package domain

import "time"

// TripDriveSegment is one point-to-point leg of driving within a single day.
// Segments are derived from lodgings, activities, and day plans on every
// read — they are never persisted and never mutated in place.
type TripDriveSegment struct {
	// Day is the day-aligned date this leg belongs to.
	Day time.Time `json:"day"`

	// DayNumber is 1-based within the trip (start day = 1).
	DayNumber int `json:"day_number"`

	// FromLabel / ToLabel are human-readable ("Hotel Roma", "Uffizi").
	FromLabel string `json:"from_label"`
	ToLabel   string `json:"to_label"`

	// FromLocation / ToLocation are geocodable strings.
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`

	// DistanceKm is the leg distance. Zero or negative means unknown; such
	// legs appear only in the all-pairs projection.
	DistanceKm float64 `json:"distance_km"`
}
