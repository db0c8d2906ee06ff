package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/csaszi/trip-planner/internal/domain"
	"github.com/csaszi/trip-planner/internal/repo"
)

// DayPlanService implements business logic for DayPlan operations.
// Plans are created lazily: requesting a day that has no plan yet persists
// and returns one with default values.
type DayPlanService struct {
	trips repo.TripRepo
	plans repo.DayPlanRepo
}

// NewDayPlanService constructs a DayPlanService backed by the provided repos.
func NewDayPlanService(trips repo.TripRepo, plans repo.DayPlanRepo) *DayPlanService {
	return &DayPlanService{trips: trips, plans: plans}
}

// Get returns the plan for one day of a trip, creating it with defaults on
// first request. Returns domain.ErrValidation when the day lies outside the
// trip's range.
func (s *DayPlanService) Get(ctx context.Context, tripID uuid.UUID, day time.Time) (domain.DayPlan, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayPlanService.Get: %w", err)
	}
	day = domain.DayAlign(day)
	if err := validatePlanDay(trip, day); err != nil {
		return domain.DayPlan{}, err
	}

	plan, err := s.plans.GetByTripAndDay(ctx, tripID, day)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.DayPlan{}, fmt.Errorf("service.DayPlanService.Get: %w", err)
	}

	created, err := s.plans.Upsert(ctx, domain.NewDayPlan(tripID, day))
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayPlanService.Get: create default: %w", err)
	}
	return created, nil
}

// Update validates and persists per-day settings.
func (s *DayPlanService) Update(ctx context.Context, plan domain.DayPlan) (domain.DayPlan, error) {
	trip, err := s.trips.GetByID(ctx, plan.TripID)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayPlanService.Update: %w", err)
	}
	plan.Day = domain.DayAlign(plan.Day)
	if err := validatePlanDay(trip, plan.Day); err != nil {
		return domain.DayPlan{}, err
	}
	if err := validatePlan(plan); err != nil {
		return domain.DayPlan{}, err
	}

	result, err := s.plans.Upsert(ctx, plan)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("service.DayPlanService.Update: %w", err)
	}
	return result, nil
}

func validatePlanDay(trip domain.Trip, day time.Time) error {
	if day.Before(trip.StartDay) || day.After(trip.EndDay) {
		return fmt.Errorf("%w: day is outside the trip's range", domain.ErrValidation)
	}
	return nil
}

func validatePlan(plan domain.DayPlan) error {
	if plan.DepartureHour < 0 || plan.DepartureHour > 23 {
		return fmt.Errorf("%w: departure_hour must be between 0 and 23", domain.ErrValidation)
	}
	if plan.DepartureMinute < 0 || plan.DepartureMinute > 59 {
		return fmt.Errorf("%w: departure_minute must be between 0 and 59", domain.ErrValidation)
	}
	return nil
}
