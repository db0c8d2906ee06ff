package distance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csaszi/trip-planner/internal/adapters/distance"
)

func TestStaticEstimator_KnownPair(t *testing.T) {
	e := distance.NewStaticEstimator([]distance.StaticPair{
		{From: "Budapest", To: "Vienna", Km: 243, Minutes: 150},
	})

	est, err := e.Estimate(context.Background(), "Budapest", "Vienna")

	require.NoError(t, err)
	assert.Equal(t, 243.0, est.DistanceKm)
	assert.Equal(t, 150*time.Minute, est.Duration)
}

func TestStaticEstimator_PairsAreDirectional(t *testing.T) {
	e := distance.NewStaticEstimator([]distance.StaticPair{
		{From: "Budapest", To: "Vienna", Km: 243, Minutes: 150},
	})

	_, err := e.Estimate(context.Background(), "Vienna", "Budapest")
	assert.Error(t, err)
}

func TestStaticEstimator_UnknownPair(t *testing.T) {
	e := distance.NewStaticEstimator(nil)

	_, err := e.Estimate(context.Background(), "Budapest", "Vienna")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pair")
}
