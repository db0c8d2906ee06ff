package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csaszi/trip-planner/internal/domain"
	"github.com/csaszi/trip-planner/internal/repo"
)

func activityFixture(trip domain.Trip) domain.Activity {
	return domain.Activity{
		TripID:                  trip.ID,
		Day:                     trip.StartDay.AddDate(0, 0, 2),
		OrderIndex:              0,
		Name:                    "Colosseum",
		Location:                "Rome",
		DurationMinutes:         120,
		DrivingDistanceToKm:     5,
		ReturnDrivingDistanceKm: 5,
		TravelDayPosition:       domain.PositionAfterArrival,
	}
}

func TestActivityRepo_CreateAndGet(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	r := repo.NewActivityRepo(tx)

	created, err := r.Create(ctx, activityFixture(trip))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := r.GetByID(ctx, trip.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Colosseum", got.Name)
	assert.Equal(t, domain.PositionAfterArrival, got.TravelDayPosition)
	assert.Equal(t, 5.0, got.DrivingDistanceToKm)
	assert.True(t, got.Day.Equal(trip.StartDay.AddDate(0, 0, 2)))
}

func TestActivityRepo_GetByID_ScopedToTrip(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	r := repo.NewActivityRepo(tx)

	created, err := r.Create(ctx, activityFixture(trip))
	require.NoError(t, err)

	// Same activity ID under a different trip must not resolve.
	_, err = r.GetByID(ctx, uuid.New(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityRepo_ListByTripID_Ordering(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	r := repo.NewActivityRepo(tx)

	second := activityFixture(trip)
	second.OrderIndex = 1
	second.Name = "Vatican"
	_, err := r.Create(ctx, second)
	require.NoError(t, err)

	first := activityFixture(trip)
	_, err = r.Create(ctx, first)
	require.NoError(t, err)

	earlier := activityFixture(trip)
	earlier.Day = trip.StartDay
	earlier.Name = "Departure coffee"
	_, err = r.Create(ctx, earlier)
	require.NoError(t, err)

	got, err := r.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Departure coffee", got[0].Name, "ordered by day first")
	assert.Equal(t, "Colosseum", got[1].Name, "then by order_index")
	assert.Equal(t, "Vatican", got[2].Name)
}

func TestActivityRepo_Update(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	r := repo.NewActivityRepo(tx)

	created, err := r.Create(ctx, activityFixture(trip))
	require.NoError(t, err)

	created.Name = "Colosseum at dusk"
	created.IsDelay = false
	created.ReturnDrivingDistanceKm = 7.5

	got, err := r.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Colosseum at dusk", got.Name)
	assert.Equal(t, 7.5, got.ReturnDrivingDistanceKm)
}

func TestActivityRepo_Delete(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	r := repo.NewActivityRepo(tx)

	created, err := r.Create(ctx, activityFixture(trip))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, trip.ID, created.ID))

	_, err = r.GetByID(ctx, trip.ID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityRepo_Delete_NotFound(t *testing.T) {
	tx := newTestTx(t)
	trip := createTrip(t, tx)
	r := repo.NewActivityRepo(tx)

	err := r.Delete(context.Background(), trip.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
