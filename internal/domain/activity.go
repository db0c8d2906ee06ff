package domain

import (
	"time"

	"github.com/google/uuid"
)

// TravelDayPosition says where on a moving day an activity happens relative
// to arriving at the day's destination.
type TravelDayPosition string

const (
	// PositionBeforeArrival places the activity on the way to the destination.
	PositionBeforeArrival TravelDayPosition = "before_arrival"

	// PositionAfterArrival places the activity after checking in. This is the
	// default and the only meaningful value on a staying day.
	PositionAfterArrival TravelDayPosition = "after_arrival"
)

// Activity is one planned stop on a single day of the trip.
// Activities on the same day are totally ordered by OrderIndex.
type Activity struct {
	ID     uuid.UUID `json:"id"`
	TripID uuid.UUID `json:"trip_id"`

	// Day is day-aligned and must lie within [Trip.StartDay, Trip.EndDay].
	Day time.Time `json:"day"`

	// OrderIndex is non-negative and unique within the same day.
	OrderIndex int `json:"order_index"`

	Name            string `json:"name"`
	Location        string `json:"location"`
	DurationMinutes int    `json:"duration_minutes"`

	// DrivingDistanceToKm is the distance from the previous point in the
	// day's chain to this activity. Zero or negative means unknown.
	DrivingDistanceToKm float64 `json:"driving_distance_to_km,omitempty"`

	// ReturnDrivingDistanceKm is the distance from this activity back to the
	// day's destination. Only the last activity of a chain uses it.
	// Zero or negative means unknown.
	ReturnDrivingDistanceKm float64 `json:"return_driving_distance_km,omitempty"`

	TravelDayPosition TravelDayPosition `json:"travel_day_position"`

	// IsDelay marks an entry that represents waiting time rather than a
	// place; delays are excluded from drive-segment building.
	IsDelay bool `json:"is_delay,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// ActivityLabel returns the human-readable name, falling back to location.
func (a Activity) ActivityLabel() string {
	return FirstNonBlank(a.Name, a.Location)
}
