package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/csaszi/trip-planner/internal/domain"
	"github.com/csaszi/trip-planner/internal/repo"
	"github.com/csaszi/trip-planner/internal/timeline"
)

// LodgingService implements lodging edits. Every mutation loads the trip's
// current lodging set, runs the partition maintainer over it, and persists
// the normalized result as a whole — the replace-and-persist model. The
// returned slice is always the full new set, never the single edited record.
type LodgingService struct {
	trips    repo.TripRepo
	lodgings repo.LodgingRepo
}

// NewLodgingService constructs a LodgingService backed by the provided repos.
func NewLodgingService(trips repo.TripRepo, lodgings repo.LodgingRepo) *LodgingService {
	return &LodgingService{trips: trips, lodgings: lodgings}
}

// ListByTripID returns the trip's lodgings ordered by start day.
// Always returns a non-nil slice so callers can safely range over it.
func (s *LodgingService) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Lodging, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.LodgingService.ListByTripID: %w", err)
	}
	lodgings, err := s.lodgings.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LodgingService.ListByTripID: %w", err)
	}
	if lodgings == nil {
		return []domain.Lodging{}, nil
	}
	return lodgings, nil
}

// Insert adds a new lodging, resolving overlaps against the existing set.
// Note that a bare insert does not extend coverage to the trip's edges; only
// Update and Delete restore full boundary coverage.
func (s *LodgingService) Insert(ctx context.Context, tripID uuid.UUID, lodging domain.Lodging) ([]domain.Lodging, error) {
	trip, current, err := s.snapshot(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LodgingService.Insert: %w", err)
	}
	alignLodgingDays(&lodging)
	if err := validateLodging(lodging); err != nil {
		return nil, err
	}
	lodging.TripID = tripID
	if lodging.ID == uuid.Nil {
		lodging.ID = uuid.New()
	}

	result := timeline.InsertLodging(current, lodging)
	if err := s.persist(ctx, trip.ID, result); err != nil {
		return nil, fmt.Errorf("service.LodgingService.Insert: %w", err)
	}
	return result, nil
}

// Update edits an existing lodging in place, resolving overlaps against all
// other lodgings and closing boundary gaps with synthesized fillers.
// Returns domain.ErrNotFound when the lodging does not belong to the trip.
func (s *LodgingService) Update(ctx context.Context, tripID uuid.UUID, lodging domain.Lodging) ([]domain.Lodging, error) {
	trip, current, err := s.snapshot(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LodgingService.Update: %w", err)
	}
	if !containsLodging(current, lodging.ID) {
		return nil, fmt.Errorf("service.LodgingService.Update: %w", domain.ErrNotFound)
	}
	alignLodgingDays(&lodging)
	if err := validateLodging(lodging); err != nil {
		return nil, err
	}
	lodging.TripID = tripID

	result := timeline.UpdateLodging(trip, current, lodging)
	if err := s.persist(ctx, trip.ID, result); err != nil {
		return nil, fmt.Errorf("service.LodgingService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a lodging; the remaining set (when non-empty) is stretched
// back over the whole trip window.
// Returns domain.ErrNotFound when the lodging does not belong to the trip.
func (s *LodgingService) Delete(ctx context.Context, tripID, lodgingID uuid.UUID) ([]domain.Lodging, error) {
	trip, current, err := s.snapshot(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LodgingService.Delete: %w", err)
	}
	if !containsLodging(current, lodgingID) {
		return nil, fmt.Errorf("service.LodgingService.Delete: %w", domain.ErrNotFound)
	}

	result := timeline.DeleteLodging(trip, current, lodgingID)
	if err := s.persist(ctx, trip.ID, result); err != nil {
		return nil, fmt.Errorf("service.LodgingService.Delete: %w", err)
	}
	if result == nil {
		return []domain.Lodging{}, nil
	}
	return result, nil
}

// snapshot loads the trip and its current lodging set.
func (s *LodgingService) snapshot(ctx context.Context, tripID uuid.UUID) (domain.Trip, []domain.Lodging, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, err
	}
	current, err := s.lodgings.ListByTripID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, err
	}
	return trip, current, nil
}

func (s *LodgingService) persist(ctx context.Context, tripID uuid.UUID, lodgings []domain.Lodging) error {
	return s.lodgings.ReplaceByTripID(ctx, tripID, lodgings)
}

func containsLodging(lodgings []domain.Lodging, id uuid.UUID) bool {
	for _, l := range lodgings {
		if l.ID == id {
			return true
		}
	}
	return false
}

func alignLodgingDays(l *domain.Lodging) {
	l.Start = domain.DayAlign(l.Start)
	l.End = domain.DayAlign(l.End)
}

// validateLodging guards the partition maintainer's precondition: the engine
// itself is total only over well-formed ranges, so the degenerate ones are
// rejected here at the caller boundary.
func validateLodging(l domain.Lodging) error {
	if l.End.Before(l.Start) {
		return fmt.Errorf("%w: end must not be before start", domain.ErrValidation)
	}
	if l.PricePerNight != nil && *l.PricePerNight < 0 {
		return fmt.Errorf("%w: price_per_night must not be negative", domain.ErrValidation)
	}
	return nil
}
