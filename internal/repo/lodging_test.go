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

func TestLodgingRepo_ReplaceAndList(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	r := repo.NewLodgingRepo(tx)

	price := 120.50
	set := []domain.Lodging{
		{
			ID: uuid.New(), TripID: trip.ID,
			Start: trip.StartDay, End: trip.StartDay.AddDate(0, 0, 4),
			Name: "Hotel Roma", Location: "Rome",
			PricePerNight: &price, Currency: "EUR",
		},
		{
			ID: uuid.New(), TripID: trip.ID,
			Start: trip.StartDay.AddDate(0, 0, 5), End: trip.EndDay,
			Location: "Florence", // filler: no name
		},
	}

	require.NoError(t, r.ReplaceByTripID(ctx, trip.ID, set))

	got, err := r.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, set[0].ID, got[0].ID, "application-assigned IDs persist verbatim")
	assert.Equal(t, "Hotel Roma", got[0].Name)
	require.NotNil(t, got[0].PricePerNight)
	assert.Equal(t, 120.50, *got[0].PricePerNight)
	assert.Equal(t, "EUR", got[0].Currency)

	assert.Equal(t, set[1].ID, got[1].ID)
	assert.True(t, got[1].IsFiller())
	assert.Nil(t, got[1].PricePerNight)
	assert.True(t, got[0].Start.Before(got[1].Start), "ordered by start day")
}

func TestLodgingRepo_ReplaceOverwritesPreviousSet(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	r := repo.NewLodgingRepo(tx)

	first := []domain.Lodging{{
		ID: uuid.New(), TripID: trip.ID,
		Start: trip.StartDay, End: trip.EndDay,
		Name: "Hotel Roma", Location: "Rome",
	}}
	require.NoError(t, r.ReplaceByTripID(ctx, trip.ID, first))

	second := []domain.Lodging{{
		ID: uuid.New(), TripID: trip.ID,
		Start: trip.StartDay, End: trip.EndDay,
		Name: "Casa Firenze", Location: "Florence",
	}}
	require.NoError(t, r.ReplaceByTripID(ctx, trip.ID, second))

	got, err := r.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, got, 1, "the old set is gone")
	assert.Equal(t, second[0].ID, got[0].ID)
}

func TestLodgingRepo_ReplaceWithEmptySetClears(t *testing.T) {
	tx := newTestTx(t)
	ctx := context.Background()
	trip := createTrip(t, tx)
	r := repo.NewLodgingRepo(tx)

	require.NoError(t, r.ReplaceByTripID(ctx, trip.ID, []domain.Lodging{{
		ID: uuid.New(), TripID: trip.ID,
		Start: trip.StartDay, End: trip.EndDay,
		Name: "Hotel Roma", Location: "Rome",
	}}))

	require.NoError(t, r.ReplaceByTripID(ctx, trip.ID, nil))

	got, err := r.ListByTripID(ctx, trip.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLodgingRepo_ListByTripID_EmptyTrip(t *testing.T) {
	tx := newTestTx(t)
	trip := createTrip(t, tx)
	r := repo.NewLodgingRepo(tx)

	got, err := r.ListByTripID(context.Background(), trip.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
