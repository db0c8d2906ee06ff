// Package timeline implements the trip timeline engine: maintaining the
// lodging partition of a trip's day range, classifying days as moving or
// staying, and deriving drive segments from the partition plus per-day
// activities.
//
// All functions are pure and total over immutable snapshots of domain
// values. Nothing here performs I/O or persists its output — callers
// recompute derived views on every read.
package timeline

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/csaszi/trip-planner/internal/domain"
)

// InsertLodging merges next into the set, resolving overlaps: existing
// intervals fully inside [next.Start, next.End] are dropped; partially
// overlapped intervals are cut down to their non-overlapping remainder,
// splitting into two pieces when next is strictly nested. The right piece
// of a split receives a fresh identity — it is a distinct record from then
// on — while the left piece keeps the original's.
//
// Insert does not fill boundary gaps against the trip window; only
// UpdateLodging and DeleteLodging restore full coverage. Callers must not
// assume gapless coverage after a bare insert.
//
// Precondition: next.Start <= next.End, both day-aligned. Degenerate ranges
// are a caller contract violation.
func InsertLodging(lodgings []domain.Lodging, next domain.Lodging) []domain.Lodging {
	result := resolveOverlaps(lodgings, next)
	result = append(result, next)
	sortByStart(result)
	return result
}

// UpdateLodging applies the same overlap resolution as InsertLodging, but
// against every interval other than the one sharing updated's ID, so an
// in-place edit never collides with its own previous range. After merging,
// boundary gaps against the trip window are closed with synthesized filler
// lodgings (blank name, trip's default location).
func UpdateLodging(trip domain.Trip, lodgings []domain.Lodging, updated domain.Lodging) []domain.Lodging {
	others := make([]domain.Lodging, 0, len(lodgings))
	for _, l := range lodgings {
		if l.ID != updated.ID {
			others = append(others, l)
		}
	}
	result := resolveOverlaps(others, updated)
	result = append(result, updated)
	sortByStart(result)
	return fillBoundaries(trip, result)
}

// DeleteLodging removes the interval with the given ID. When lodgings
// remain, coverage is restored by stretching: the first interval down to
// the trip's start day, the last up to the trip's end day, and across every
// interior gap the earlier interval absorbs the missing days (left-biased).
// An emptied set stays empty — no coverage anywhere.
func DeleteLodging(trip domain.Trip, lodgings []domain.Lodging, id uuid.UUID) []domain.Lodging {
	result := make([]domain.Lodging, 0, len(lodgings))
	for _, l := range lodgings {
		if l.ID != id {
			result = append(result, l)
		}
	}
	if len(result) == 0 {
		return result
	}
	sortByStart(result)

	if result[0].Start.After(trip.StartDay) {
		result[0].Start = trip.StartDay
	}
	if result[len(result)-1].End.Before(trip.EndDay) {
		result[len(result)-1].End = trip.EndDay
	}
	for i := 0; i < len(result)-1; i++ {
		if domain.NextDay(result[i].End).Before(result[i+1].Start) {
			result[i].End = domain.PrevDay(result[i+1].Start)
		}
	}
	return result
}

// resolveOverlaps returns existing with every overlap against next cut away.
// Kept pieces appear in their original order; the caller sorts afterwards.
func resolveOverlaps(existing []domain.Lodging, next domain.Lodging) []domain.Lodging {
	result := make([]domain.Lodging, 0, len(existing)+1)
	for _, e := range existing {
		switch {
		case e.End.Before(next.Start) || e.Start.After(next.End):
			// Disjoint.
			result = append(result, e)
		case !e.Start.Before(next.Start) && !e.End.After(next.End):
			// Fully contained in next — dropped.
		default:
			if e.Start.Before(next.Start) {
				left := e
				left.End = domain.PrevDay(next.Start)
				result = append(result, left)
			}
			if e.End.After(next.End) {
				right := e
				right.ID = uuid.New()
				right.Start = domain.NextDay(next.End)
				result = append(result, right)
			}
		}
	}
	return result
}

// fillBoundaries synthesizes filler lodgings so the sorted set reaches both
// edges of the trip window. Interior gaps are left alone.
func fillBoundaries(trip domain.Trip, sorted []domain.Lodging) []domain.Lodging {
	if len(sorted) == 0 {
		return sorted
	}
	if sorted[0].Start.After(trip.StartDay) {
		filler := newFiller(trip, trip.StartDay, domain.PrevDay(sorted[0].Start))
		sorted = append([]domain.Lodging{filler}, sorted...)
	}
	if last := sorted[len(sorted)-1]; last.End.Before(trip.EndDay) {
		filler := newFiller(trip, domain.NextDay(last.End), trip.EndDay)
		sorted = append(sorted, filler)
	}
	return sorted
}

// newFiller builds a synthesized lodging covering [start, end]. The blank
// name is what marks it as a filler.
func newFiller(trip domain.Trip, start, end time.Time) domain.Lodging {
	return domain.Lodging{
		ID:       uuid.New(),
		TripID:   trip.ID,
		Start:    start,
		End:      end,
		Location: trip.FillerLocation(),
	}
}

func sortByStart(lodgings []domain.Lodging) {
	sort.Slice(lodgings, func(i, j int) bool {
		return lodgings[i].Start.Before(lodgings[j].Start)
	})
}
