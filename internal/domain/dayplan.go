package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default departure time for a freshly created day plan.
const (
	DefaultDepartureHour   = 8
	DefaultDepartureMinute = 0
)

// DayPlan holds the per-day settings a user can tune. At most one plan
// exists per (trip, day); plans are created lazily with defaults when
// first requested.
type DayPlan struct {
	ID     uuid.UUID `json:"id"`
	TripID uuid.UUID `json:"trip_id"`

	// Day is day-aligned; the plan applies to this calendar day only.
	Day time.Time `json:"day"`

	DepartureHour   int `json:"departure_hour"`
	DepartureMinute int `json:"departure_minute"`

	// MovingDayDrivingDistanceKm is the single-leg distance for a moving day
	// with no before-arrival activities. Zero or negative means unknown.
	MovingDayDrivingDistanceKm float64 `json:"moving_day_driving_distance_km,omitempty"`
}

// NewDayPlan returns a plan for the given day with default values.
func NewDayPlan(tripID uuid.UUID, day time.Time) DayPlan {
	return DayPlan{
		TripID:          tripID,
		Day:             DayAlign(day),
		DepartureHour:   DefaultDepartureHour,
		DepartureMinute: DefaultDepartureMinute,
	}
}
