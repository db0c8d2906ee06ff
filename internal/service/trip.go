// Package service contains the business logic for the trip planner API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls and the timeline engine. No SQL lives here — services depend on
// repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/csaszi/trip-planner/internal/domain"
	"github.com/csaszi/trip-planner/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	repo repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r}
}

// Create validates and persists a new trip. Day bounds are aligned to
// midnight UTC before storage.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	alignTripDays(&trip)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrNotFound if no trip with that ID exists.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips ordered by start day descending.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates and updates an existing trip.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	alignTripDays(&trip)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID together with all of its child entities.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

func alignTripDays(trip *domain.Trip) {
	trip.StartDay = domain.DayAlign(trip.StartDay)
	trip.EndDay = domain.DayAlign(trip.EndDay)
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name and StartingPoint must be non-empty (whitespace-only rejected).
//   - EndDay must not be before StartDay.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.StartingPoint) == "" {
		return fmt.Errorf("%w: starting_point is required", domain.ErrValidation)
	}
	if trip.EndDay.Before(trip.StartDay) {
		return fmt.Errorf("%w: end_day must not be before start_day", domain.ErrValidation)
	}
	return nil
}
