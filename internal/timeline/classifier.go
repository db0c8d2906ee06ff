package timeline

import (
	"time"

	"github.com/csaszi/trip-planner/internal/domain"
)

// DayStatus is the classification of one calendar day of a trip.
//
// Moving and HasLodging are independent: the first and last days are always
// moving even with an empty lodging set, and a day without coverage is not
// "staying" — it is a distinct state consumers must surface as such.
type DayStatus struct {
	Day       time.Time
	DayNumber int

	// Moving is true when the day involves a change of base location.
	Moving bool

	// HasLodging is false when no lodging interval covers the day.
	HasLodging bool

	// Lodging is the interval covering the day, nil when HasLodging is false.
	Lodging *domain.Lodging
}

// ClassifyDays classifies every day in [trip.StartDay, trip.EndDay]:
//
//   - the first day is always moving (travel from the starting point),
//   - the last day is always moving (travel to the ending point),
//   - a day without coverage is not moving,
//   - an interior covered day whose previous day is uncovered is moving,
//   - a day whose lodging location differs from the previous day's is moving,
//   - everything else is staying.
//
// The lodging set is sorted once and shared across all days.
func ClassifyDays(trip domain.Trip, lodgings []domain.Lodging) []DayStatus {
	sorted := make([]domain.Lodging, len(lodgings))
	copy(sorted, lodgings)
	sortByStart(sorted)

	days := domain.DaysIn(trip.StartDay, trip.EndDay)
	statuses := make([]DayStatus, 0, len(days))
	for i, d := range days {
		today := coverage(sorted, d)
		status := DayStatus{
			Day:        d,
			DayNumber:  i + 1,
			HasLodging: today != nil,
			Lodging:    today,
		}

		switch {
		case d.Equal(trip.StartDay) || d.Equal(trip.EndDay):
			status.Moving = true
		case today == nil:
			status.Moving = false
		default:
			prev := coverage(sorted, domain.PrevDay(d))
			status.Moving = prev == nil || prev.Location != today.Location
		}

		statuses = append(statuses, status)
	}
	return statuses
}

// coverage returns the interval covering day d, or nil. The returned pointer
// addresses a copy so callers cannot mutate the sorted set.
func coverage(sorted []domain.Lodging, d time.Time) *domain.Lodging {
	for _, l := range sorted {
		if l.Covers(d) {
			cov := l
			return &cov
		}
		if l.Start.After(d) {
			break
		}
	}
	return nil
}
