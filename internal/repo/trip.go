// Package repo contains all database access logic for the trip planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/csaszi/trip-planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips ordered by start_day descending.
	List(ctx context.Context) ([]domain.Trip, error)

	// Update overwrites the mutable fields of an existing trip and returns the
	// updated record. Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip by ID together with all of its lodgings,
	// activities, and day plans (ON DELETE CASCADE).
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, name, start_day, end_day, starting_point, ending_point,
	default_location, notes, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (name, start_day, end_day, starting_point, ending_point, default_location, notes)
		VALUES (@name, @start_day, @end_day, @starting_point, @ending_point, @default_location, @notes)
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, tripArgs(trip))
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips ordered by start_day descending (most recent first).
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips ORDER BY start_day DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET name             = @name,
		    start_day        = @start_day,
		    end_day          = @end_day,
		    starting_point   = @starting_point,
		    ending_point     = @ending_point,
		    default_location = @default_location,
		    notes            = @notes,
		    updated_at       = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := tripArgs(trip)
	args["id"] = trip.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func tripArgs(trip domain.Trip) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":             trip.Name,
		"start_day":        trip.StartDay,
		"end_day":          trip.EndDay,
		"starting_point":   trip.StartingPoint,
		"ending_point":     trip.EndingPoint,
		"default_location": trip.DefaultLocation,
		"notes":            trip.Notes,
	}
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// Day columns come back as DATE values; they are already day-aligned but the
// pgtype.Date zone is normalized to UTC here.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t        domain.Trip
		id       pgtype.UUID
		startDay pgtype.Date
		endDay   pgtype.Date
	)

	err := s.Scan(&id, &t.Name, &startDay, &endDay, &t.StartingPoint, &t.EndingPoint,
		&t.DefaultLocation, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartDay = domain.DayAlign(startDay.Time)
	t.EndDay = domain.DayAlign(endDay.Time)

	return t, nil
}
