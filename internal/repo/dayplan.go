package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/csaszi/trip-planner/internal/domain"
)

// DayPlanRepo defines the persistence operations for DayPlans.
// At most one plan exists per (trip, day); the table enforces this with a
// unique constraint, and Upsert relies on it.
type DayPlanRepo interface {
	// GetByTripAndDay retrieves the plan for one day of a trip.
	// Returns domain.ErrNotFound when the day has no plan yet — the service
	// layer turns that into a lazily created default.
	GetByTripAndDay(ctx context.Context, tripID uuid.UUID, day time.Time) (domain.DayPlan, error)

	// ListByTripID returns all plans for a trip ordered by day ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.DayPlan, error)

	// Upsert inserts the plan or, when one already exists for (trip, day),
	// overwrites its mutable fields. Returns the persisted record.
	Upsert(ctx context.Context, plan domain.DayPlan) (domain.DayPlan, error)
}

// pgDayPlanRepo is the Postgres implementation of DayPlanRepo.
type pgDayPlanRepo struct {
	db db
}

// NewDayPlanRepo constructs a DayPlanRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDayPlanRepo(db db) DayPlanRepo {
	return &pgDayPlanRepo{db: db}
}

const dayPlanColumns = `id, trip_id, day, departure_hour, departure_minute, moving_day_driving_distance_km`

func (r *pgDayPlanRepo) GetByTripAndDay(ctx context.Context, tripID uuid.UUID, day time.Time) (domain.DayPlan, error) {
	const q = `SELECT ` + dayPlanColumns + ` FROM day_plans WHERE trip_id = @trip_id AND day = @day`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID, "day": domain.DayAlign(day)})
	result, err := scanDayPlan(row)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("repo.DayPlanRepo.GetByTripAndDay: %w", err)
	}
	return result, nil
}

func (r *pgDayPlanRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.DayPlan, error) {
	const q = `
		SELECT ` + dayPlanColumns + `
		FROM day_plans
		WHERE trip_id = @trip_id
		ORDER BY day ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.DayPlanRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var plans []domain.DayPlan
	for rows.Next() {
		p, err := scanDayPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DayPlanRepo.ListByTripID: scan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DayPlanRepo.ListByTripID: rows: %w", err)
	}

	return plans, nil
}

func (r *pgDayPlanRepo) Upsert(ctx context.Context, plan domain.DayPlan) (domain.DayPlan, error) {
	const q = `
		INSERT INTO day_plans (trip_id, day, departure_hour, departure_minute, moving_day_driving_distance_km)
		VALUES (@trip_id, @day, @departure_hour, @departure_minute, @moving_day_driving_distance_km)
		ON CONFLICT (trip_id, day) DO UPDATE
		SET departure_hour                 = EXCLUDED.departure_hour,
		    departure_minute               = EXCLUDED.departure_minute,
		    moving_day_driving_distance_km = EXCLUDED.moving_day_driving_distance_km
		RETURNING ` + dayPlanColumns

	args := pgx.NamedArgs{
		"trip_id":                        plan.TripID,
		"day":                            domain.DayAlign(plan.Day),
		"departure_hour":                 plan.DepartureHour,
		"departure_minute":               plan.DepartureMinute,
		"moving_day_driving_distance_km": plan.MovingDayDrivingDistanceKm,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDayPlan(row)
	if err != nil {
		return domain.DayPlan{}, fmt.Errorf("repo.DayPlanRepo.Upsert: %w", err)
	}
	return result, nil
}

// scanDayPlan maps a single database row into a domain.DayPlan.
func scanDayPlan(s scanner) (domain.DayPlan, error) {
	var (
		p      domain.DayPlan
		id     pgtype.UUID
		tripID pgtype.UUID
		day    pgtype.Date
	)

	err := s.Scan(&id, &tripID, &day, &p.DepartureHour, &p.DepartureMinute, &p.MovingDayDrivingDistanceKm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DayPlan{}, domain.ErrNotFound
		}
		return domain.DayPlan{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	p.Day = domain.DayAlign(day.Time)

	return p, nil
}
