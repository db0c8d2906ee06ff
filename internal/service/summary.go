package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/csaszi/trip-planner/internal/domain"
	"github.com/csaszi/trip-planner/internal/repo"
	"github.com/csaszi/trip-planner/internal/timeline"
)

// SummaryService exposes the derived views of a trip: per-day
// classification, drive segments, fuel-cost estimates, and the textual
// route description. Everything here is recomputed from the persisted
// entities on every call; nothing is cached or stored.
type SummaryService struct {
	trips      repo.TripRepo
	lodgings   repo.LodgingRepo
	activities repo.ActivityRepo
	plans      repo.DayPlanRepo
}

// NewSummaryService constructs a SummaryService backed by the provided repos.
func NewSummaryService(
	trips repo.TripRepo,
	lodgings repo.LodgingRepo,
	activities repo.ActivityRepo,
	plans repo.DayPlanRepo,
) *SummaryService {
	return &SummaryService{trips: trips, lodgings: lodgings, activities: activities, plans: plans}
}

// FuelEstimate is the cost projection over all known-distance segments.
type FuelEstimate struct {
	// TotalDistanceKm sums every segment with a known distance.
	TotalDistanceKm float64 `json:"total_distance_km"`

	// Liters = TotalDistanceKm / 100 × consumption (l/100km).
	Liters float64 `json:"liters"`

	// Cost = Liters × price per liter.
	Cost float64 `json:"cost"`

	// SegmentCount is how many segments carried a known distance.
	SegmentCount int `json:"segment_count"`
}

// Days returns the moving/staying classification for every day of the trip.
func (s *SummaryService) Days(ctx context.Context, tripID uuid.UUID) ([]timeline.DayStatus, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.SummaryService.Days: %w", err)
	}
	lodgings, err := s.lodgings.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.SummaryService.Days: %w", err)
	}
	return timeline.ClassifyDays(trip, lodgings), nil
}

// Segments returns the trip's drive segments. knownOnly selects the
// numeric-aggregation projection, which omits legs without a known distance.
func (s *SummaryService) Segments(ctx context.Context, tripID uuid.UUID, knownOnly bool) ([]domain.TripDriveSegment, error) {
	trip, lodgings, activities, plans, err := s.load(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.SummaryService.Segments: %w", err)
	}
	segments := timeline.BuildSegments(trip, lodgings, activities, plans, knownOnly)
	if segments == nil {
		return []domain.TripDriveSegment{}, nil
	}
	return segments, nil
}

// Fuel computes the fuel cost of all known-distance segments.
// consumption is liters per 100 km and must be positive; pricePerLiter must
// not be negative.
func (s *SummaryService) Fuel(ctx context.Context, tripID uuid.UUID, consumption, pricePerLiter float64) (FuelEstimate, error) {
	if consumption <= 0 {
		return FuelEstimate{}, fmt.Errorf("%w: consumption must be positive", domain.ErrValidation)
	}
	if pricePerLiter < 0 {
		return FuelEstimate{}, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	segments, err := s.Segments(ctx, tripID, true)
	if err != nil {
		return FuelEstimate{}, err
	}

	var est FuelEstimate
	for _, seg := range segments {
		est.TotalDistanceKm += seg.DistanceKm
		est.SegmentCount++
	}
	est.Liters = est.TotalDistanceKm / 100 * consumption
	est.Cost = est.Liters * pricePerLiter
	return est, nil
}

// RouteDescription renders every logical leg of the trip as one line of
// text, in chronological order. The all-pairs projection is used so legs
// without a known distance still appear — the text feeds map-free consumers
// such as a toll and vignette lookup.
func (s *SummaryService) RouteDescription(ctx context.Context, tripID uuid.UUID) ([]string, error) {
	segments, err := s.Segments(ctx, tripID, false)
	if err != nil {
		return nil, fmt.Errorf("service.SummaryService.RouteDescription: %w", err)
	}

	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		lines = append(lines, fmt.Sprintf("Day %d (%s): %s -> %s",
			seg.DayNumber, seg.Day.Format("2006-01-02"), seg.FromLocation, seg.ToLocation))
	}
	return lines, nil
}

func (s *SummaryService) load(ctx context.Context, tripID uuid.UUID) (domain.Trip, []domain.Lodging, []domain.Activity, []domain.DayPlan, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, nil, nil, err
	}
	lodgings, err := s.lodgings.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, nil, nil, err
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, nil, nil, err
	}
	plans, err := s.plans.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, nil, nil, err
	}
	return trip, lodgings, activities, plans, nil
}
