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

// LodgingRepo defines the persistence operations for Lodgings.
//
// Lodging edits replace the whole set for a trip: the service runs the
// partition maintainer over an in-memory snapshot and persists the
// normalized result verbatim (fillers and split fragments included).
// IDs are assigned by the caller, never by the database, so split
// fragments keep the identity the engine gave them.
type LodgingRepo interface {
	// ListByTripID returns all lodgings for a trip ordered by start ascending.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Lodging, error)

	// ReplaceByTripID deletes the trip's lodging set and inserts the given
	// one in a single transaction-friendly sequence of statements. The
	// enclosing application serializes mutations per trip, so no two
	// replaces race on the same trip.
	ReplaceByTripID(ctx context.Context, tripID uuid.UUID, lodgings []domain.Lodging) error
}

// pgLodgingRepo is the Postgres implementation of LodgingRepo.
type pgLodgingRepo struct {
	db db
}

// NewLodgingRepo constructs a LodgingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewLodgingRepo(db db) LodgingRepo {
	return &pgLodgingRepo{db: db}
}

const lodgingColumns = `id, trip_id, start_day, end_day, name, location, price_per_night, currency`

func (r *pgLodgingRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Lodging, error) {
	const q = `
		SELECT ` + lodgingColumns + `
		FROM lodgings
		WHERE trip_id = @trip_id
		ORDER BY start_day ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.LodgingRepo.ListByTripID: %w", err)
	}
	defer rows.Close()

	var lodgings []domain.Lodging
	for rows.Next() {
		l, err := scanLodging(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.LodgingRepo.ListByTripID: scan: %w", err)
		}
		lodgings = append(lodgings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.LodgingRepo.ListByTripID: rows: %w", err)
	}

	return lodgings, nil
}

func (r *pgLodgingRepo) ReplaceByTripID(ctx context.Context, tripID uuid.UUID, lodgings []domain.Lodging) error {
	const del = `DELETE FROM lodgings WHERE trip_id = @trip_id`
	if _, err := r.db.Exec(ctx, del, pgx.NamedArgs{"trip_id": tripID}); err != nil {
		return fmt.Errorf("repo.LodgingRepo.ReplaceByTripID: delete: %w", err)
	}

	const ins = `
		INSERT INTO lodgings (id, trip_id, start_day, end_day, name, location, price_per_night, currency)
		VALUES (@id, @trip_id, @start_day, @end_day, @name, @location, @price_per_night, @currency)`

	for _, l := range lodgings {
		args := pgx.NamedArgs{
			"id":              l.ID,
			"trip_id":         tripID,
			"start_day":       l.Start,
			"end_day":         l.End,
			"name":            l.Name,
			"location":        l.Location,
			"price_per_night": l.PricePerNight, // nil becomes NULL
			"currency":        l.Currency,
		}
		if _, err := r.db.Exec(ctx, ins, args); err != nil {
			return fmt.Errorf("repo.LodgingRepo.ReplaceByTripID: insert %s: %w", l.ID, err)
		}
	}
	return nil
}

// scanLodging maps a single database row into a domain.Lodging.
func scanLodging(s scanner) (domain.Lodging, error) {
	var (
		l      domain.Lodging
		id     pgtype.UUID
		tripID pgtype.UUID
		start  pgtype.Date
		end    pgtype.Date
		price  pgtype.Float8
	)

	err := s.Scan(&id, &tripID, &start, &end, &l.Name, &l.Location, &price, &l.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Lodging{}, domain.ErrNotFound
		}
		return domain.Lodging{}, err
	}

	l.ID = uuid.UUID(id.Bytes)
	l.TripID = uuid.UUID(tripID.Bytes)
	l.Start = domain.DayAlign(start.Time)
	l.End = domain.DayAlign(end.Time)
	if price.Valid {
		p := price.Float64
		l.PricePerNight = &p
	}

	return l, nil
}
