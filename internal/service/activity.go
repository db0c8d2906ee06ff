package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/csaszi/trip-planner/internal/domain"
	"github.com/csaszi/trip-planner/internal/repo"
)

// ActivityService implements business logic for Activity operations.
// It holds the trip repo as well because every activity must lie within its
// parent trip's day range, and order indexes are unique per day.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService backed by the provided repos.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create validates the activity against its parent trip, then persists it.
// Returns domain.ErrNotFound if the parent trip does not exist and
// domain.ErrValidation if input violates business rules.
func (s *ActivityService) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, activity.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	normalizeActivity(&activity)
	if err := s.validateActivity(ctx, trip, activity); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.activities.Create(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single activity by ID, scoped to the given tripID.
func (s *ActivityService) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	result, err := s.activities.GetByID(ctx, tripID, activityID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.GetByID: %w", err)
	}
	return result, nil
}

// ListByTripID returns all activities for a trip ordered by day, then order index.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ActivityService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByTripID: %w", err)
	}
	if activities == nil {
		return []domain.Activity{}, nil
	}
	return activities, nil
}

// Update validates and persists changes to an existing activity.
func (s *ActivityService) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	trip, err := s.trips.GetByID(ctx, activity.TripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	normalizeActivity(&activity)
	if err := s.validateActivity(ctx, trip, activity); err != nil {
		return domain.Activity{}, err
	}
	result, err := s.activities.Update(ctx, activity)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Update: %w", err)
	}
	return result, nil
}

// Delete removes an activity by ID, scoped to the given tripID.
func (s *ActivityService) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	if err := s.activities.Delete(ctx, tripID, activityID); err != nil {
		return fmt.Errorf("service.ActivityService.Delete: %w", err)
	}
	return nil
}

func normalizeActivity(a *domain.Activity) {
	a.Day = domain.DayAlign(a.Day)
	if a.TravelDayPosition == "" {
		a.TravelDayPosition = domain.PositionAfterArrival
	}
}

// validateActivity enforces business rules common to Create and Update.
//   - Location must be non-empty (an activity is a place in the day's chain).
//   - Day must lie within the trip's bounds.
//   - OrderIndex must be non-negative and unique within the same day.
//   - DurationMinutes must not be negative.
//   - TravelDayPosition must be a known value.
func (s *ActivityService) validateActivity(ctx context.Context, trip domain.Trip, a domain.Activity) error {
	if strings.TrimSpace(a.Location) == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if a.Day.Before(trip.StartDay) || a.Day.After(trip.EndDay) {
		return fmt.Errorf("%w: day is outside the trip's range", domain.ErrValidation)
	}
	if a.OrderIndex < 0 {
		return fmt.Errorf("%w: order_index must not be negative", domain.ErrValidation)
	}
	if a.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration_minutes must not be negative", domain.ErrValidation)
	}
	if a.TravelDayPosition != domain.PositionBeforeArrival && a.TravelDayPosition != domain.PositionAfterArrival {
		return fmt.Errorf("%w: travel_day_position must be %q or %q",
			domain.ErrValidation, domain.PositionBeforeArrival, domain.PositionAfterArrival)
	}

	existing, err := s.activities.ListByTripID(ctx, trip.ID)
	if err != nil {
		return fmt.Errorf("service.ActivityService.validateActivity: %w", err)
	}
	for _, other := range existing {
		if other.ID != a.ID && domain.SameDay(other.Day, a.Day) && other.OrderIndex == a.OrderIndex {
			return fmt.Errorf("%w: order_index %d is already taken on this day", domain.ErrValidation, a.OrderIndex)
		}
	}
	return nil
}
