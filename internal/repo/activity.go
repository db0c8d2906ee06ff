package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/csaszi/trip-planner/internal/domain"
)

// ActivityRepo defines the persistence operations for Activities.
// All write and single-read operations are scoped by tripID to enforce ownership.
type ActivityRepo interface {
	// Create inserts a new activity and returns the persisted record.
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// GetByID retrieves a single activity, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)

	// ListByTripID returns all activities for a trip ordered by day, then
	// order_index, ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)

	// Update overwrites the mutable fields of an activity, scoped to its tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// Delete removes an activity by ID, scoped to the given tripID.
	// Returns domain.ErrNotFound if no activity with that ID exists under that trip.
	Delete(ctx context.Context, tripID, activityID uuid.UUID) error
}

// pgActivityRepo is the Postgres implementation of ActivityRepo.
type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, trip_id, day, order_index, name, location, duration_minutes,
	driving_distance_to_km, return_driving_distance_km, travel_day_position, is_delay, notes`

func (r *pgActivityRepo) Create(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (trip_id, day, order_index, name, location, duration_minutes,
			driving_distance_to_km, return_driving_distance_km, travel_day_position, is_delay, notes)
		VALUES (@trip_id, @day, @order_index, @name, @location, @duration_minutes,
			@driving_distance_to_km, @return_driving_distance_km, @travel_day_position, @is_delay, @notes)
		RETURNING ` + activityColumns

	row := r.db.QueryRow(ctx, q, activityArgs(activity))
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE id = @id AND trip_id = @trip_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": activityID, "trip_id": tripID})
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE trip_id = @trip_id
		ORDER BY day ASC, order_index ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.ListByTripID: rows: %w", err)
	}

	return activities, nil
}

func (r *pgActivityRepo) Update(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	const q = `
		UPDATE activities
		SET day                        = @day,
		    order_index                = @order_index,
		    name                       = @name,
		    location                   = @location,
		    duration_minutes           = @duration_minutes,
		    driving_distance_to_km     = @driving_distance_to_km,
		    return_driving_distance_km = @return_driving_distance_km,
		    travel_day_position        = @travel_day_position,
		    is_delay                   = @is_delay,
		    notes                      = @notes
		WHERE id = @id AND trip_id = @trip_id
		RETURNING ` + activityColumns

	args := activityArgs(activity)
	args["id"] = activity.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanActivity(row)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgActivityRepo) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	const q = `DELETE FROM activities WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": activityID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ActivityRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func activityArgs(a domain.Activity) pgx.NamedArgs {
	return pgx.NamedArgs{
		"trip_id":                    a.TripID,
		"day":                        a.Day,
		"order_index":                a.OrderIndex,
		"name":                       a.Name,
		"location":                   a.Location,
		"duration_minutes":           a.DurationMinutes,
		"driving_distance_to_km":     a.DrivingDistanceToKm,
		"return_driving_distance_km": a.ReturnDrivingDistanceKm,
		"travel_day_position":        string(a.TravelDayPosition),
		"is_delay":                   a.IsDelay,
		"notes":                      a.Notes,
	}
}

// scanActivity maps a single database row into a domain.Activity.
func scanActivity(s scanner) (domain.Activity, error) {
	var (
		a        domain.Activity
		id       pgtype.UUID
		tripID   pgtype.UUID
		day      pgtype.Date
		position string
	)

	err := s.Scan(&id, &tripID, &day, &a.OrderIndex, &a.Name, &a.Location, &a.DurationMinutes,
		&a.DrivingDistanceToKm, &a.ReturnDrivingDistanceKm, &position, &a.IsDelay, &a.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}

	a.ID = uuid.UUID(id.Bytes)
	a.TripID = uuid.UUID(tripID.Bytes)
	a.Day = domain.DayAlign(day.Time)
	a.TravelDayPosition = domain.TravelDayPosition(position)

	return a, nil
}
