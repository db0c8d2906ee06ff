package timeline

import (
	"sort"
	"time"

	"github.com/csaszi/trip-planner/internal/domain"
)

// point is a resolved origin or destination within a day's chain.
type point struct {
	label    string
	location string
}

// BuildSegments derives the chronological list of point-to-point drive
// segments for the whole trip. Days come in ascending order; within a day,
// legs follow the before-arrival chain, the arrival leg, the after-arrival
// chain, and a single closing leg back to the day's base.
//
// requireKnownDistance selects the projection: true omits legs whose
// distance is zero or negative (numeric aggregation, e.g. fuel cost); false
// keeps every logical leg (route enumeration, e.g. a textual description
// for a toll lookup).
func BuildSegments(
	trip domain.Trip,
	lodgings []domain.Lodging,
	activities []domain.Activity,
	plans []domain.DayPlan,
	requireKnownDistance bool,
) []domain.TripDriveSegment {
	statuses := ClassifyDays(trip, lodgings)
	byDay := activitiesByDay(activities)
	planByDay := plansByDay(plans)

	b := segmentBuilder{requireKnown: requireKnownDistance}
	for _, status := range statuses {
		acts := byDay[status.Day]
		if status.Moving {
			b.movingDay(trip, status, statuses, acts, planByDay[status.Day])
		} else {
			b.stayingDay(trip, status, acts)
		}
	}
	return b.segments
}

type segmentBuilder struct {
	requireKnown bool
	segments     []domain.TripDriveSegment
}

// movingDay emits the legs of a day that changes base location.
func (b *segmentBuilder) movingDay(
	trip domain.Trip,
	status DayStatus,
	statuses []DayStatus,
	acts []domain.Activity,
	plan domain.DayPlan,
) {
	origin := resolveOrigin(trip, status, statuses)
	dest := resolveDestination(trip, status)

	var before, after []domain.Activity
	for _, a := range acts {
		if a.TravelDayPosition == domain.PositionBeforeArrival {
			before = append(before, a)
		} else {
			after = append(after, a)
		}
	}

	if len(before) == 0 {
		b.emit(status, origin, dest, plan.MovingDayDrivingDistanceKm)
	} else {
		b.chain(status, origin, dest, before)
	}

	if len(after) > 0 {
		b.chain(status, dest, dest, after)
	}
}

// stayingDay emits the legs of a day spent at one base: base → activities →
// base. Days without activities emit nothing.
func (b *segmentBuilder) stayingDay(trip domain.Trip, status DayStatus, acts []domain.Activity) {
	if len(acts) == 0 {
		return
	}
	base := lodgingPoint(trip, status.Lodging)
	b.chain(status, base, base, acts)
}

// chain emits from → act[0] → … → act[last] → to. Each inner leg uses the
// activity's DrivingDistanceToKm; the single closing leg uses the last
// activity's ReturnDrivingDistanceKm.
func (b *segmentBuilder) chain(status DayStatus, from, to point, acts []domain.Activity) {
	cur := from
	for _, a := range acts {
		next := point{label: a.ActivityLabel(), location: a.Location}
		b.emit(status, cur, next, a.DrivingDistanceToKm)
		cur = next
	}
	b.emit(status, cur, to, acts[len(acts)-1].ReturnDrivingDistanceKm)
}

func (b *segmentBuilder) emit(status DayStatus, from, to point, distanceKm float64) {
	if b.requireKnown && distanceKm <= 0 {
		return
	}
	b.segments = append(b.segments, domain.TripDriveSegment{
		Day:          status.Day,
		DayNumber:    status.DayNumber,
		FromLabel:    from.label,
		ToLabel:      to.label,
		FromLocation: from.location,
		ToLocation:   to.location,
		DistanceKm:   distanceKm,
	})
}

// resolveOrigin picks the day's starting point: the trip's starting point on
// day one, otherwise the previous day's lodging, otherwise the trip's
// starting point again.
func resolveOrigin(trip domain.Trip, status DayStatus, statuses []DayStatus) point {
	if status.Day.Equal(trip.StartDay) {
		return point{label: trip.StartingPoint, location: trip.StartingPoint}
	}
	if prev := statuses[status.DayNumber-2].Lodging; prev != nil {
		return point{label: prev.Label(), location: prev.Location}
	}
	return point{label: trip.StartingPoint, location: trip.StartingPoint}
}

// resolveDestination picks the day's end point: the trip's ending point on
// the final day, otherwise today's lodging.
func resolveDestination(trip domain.Trip, status DayStatus) point {
	if status.Day.Equal(trip.EndDay) {
		end := trip.ResolvedEndingPoint()
		return point{label: end, location: end}
	}
	return lodgingPoint(trip, status.Lodging)
}

// lodgingPoint resolves a lodging into a chain point, degrading to the
// trip's default location and then its starting point when the day has no
// coverage. A missing base never fails the computation.
func lodgingPoint(trip domain.Trip, l *domain.Lodging) point {
	if l != nil {
		return point{label: l.Label(), location: l.Location}
	}
	loc := trip.FillerLocation()
	return point{label: loc, location: loc}
}

// activitiesByDay groups non-delay activities by day, each group sorted by
// OrderIndex. Delay entries never participate in segment building.
func activitiesByDay(activities []domain.Activity) map[time.Time][]domain.Activity {
	byDay := make(map[time.Time][]domain.Activity)
	for _, a := range activities {
		if a.IsDelay {
			continue
		}
		day := domain.DayAlign(a.Day)
		byDay[day] = append(byDay[day], a)
	}
	for day := range byDay {
		acts := byDay[day]
		sort.Slice(acts, func(i, j int) bool { return acts[i].OrderIndex < acts[j].OrderIndex })
	}
	return byDay
}

func plansByDay(plans []domain.DayPlan) map[time.Time]domain.DayPlan {
	byDay := make(map[time.Time]domain.DayPlan, len(plans))
	for _, p := range plans {
		byDay[domain.DayAlign(p.Day)] = p
	}
	return byDay
}
