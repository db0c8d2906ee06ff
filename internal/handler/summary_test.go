package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csaszi/trip-planner/internal/domain"
	"github.com/csaszi/trip-planner/internal/handler"
	"github.com/csaszi/trip-planner/internal/ports"
	"github.com/csaszi/trip-planner/internal/service"
	"github.com/csaszi/trip-planner/internal/timeline"
)

func TestListDays_200(t *testing.T) {
	trip := tripFixture()
	covered := lodgingFixture(trip.ID)

	h := newHTTPHandler(serverMocks{summary: &mockSummaryServicer{
		days: func(_ context.Context, tripID uuid.UUID) ([]timeline.DayStatus, error) {
			return []timeline.DayStatus{
				{Day: trip.StartDay, DayNumber: 1, Moving: true, HasLodging: true, Lodging: &covered},
				{Day: trip.StartDay.AddDate(0, 0, 1), DayNumber: 2},
			}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/trips/"+trip.ID.String()+"/days", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[[]handler.DayResponse](t, rec.Body)
	require.Len(t, resp, 2)
	assert.True(t, resp[0].Moving)
	assert.Equal(t, "Hotel Roma", resp[0].LodgingLabel)
	assert.False(t, resp[1].HasLodging)
	assert.Empty(t, resp[1].LodgingLabel, "uncovered days carry no label")
}

func TestListSegments_KnownOnlyQuery(t *testing.T) {
	trip := tripFixture()
	var gotKnownOnly bool

	h := newHTTPHandler(serverMocks{summary: &mockSummaryServicer{
		segments: func(_ context.Context, _ uuid.UUID, knownOnly bool) ([]domain.TripDriveSegment, error) {
			gotKnownOnly = knownOnly
			return []domain.TripDriveSegment{}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet,
		"/trips/"+trip.ID.String()+"/segments?known_only=true", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotKnownOnly)

	req = httptest.NewRequest(http.MethodGet, "/trips/"+trip.ID.String()+"/segments", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, gotKnownOnly, "the all-pairs projection is the default")
}

func TestGetFuelEstimate_200(t *testing.T) {
	trip := tripFixture()

	h := newHTTPHandler(serverMocks{summary: &mockSummaryServicer{
		fuel: func(_ context.Context, _ uuid.UUID, consumption, price float64) (service.FuelEstimate, error) {
			assert.Equal(t, 8.5, consumption)
			assert.Equal(t, 1.65, price)
			return service.FuelEstimate{TotalDistanceKm: 400, Liters: 34, Cost: 56.1, SegmentCount: 3}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet,
		"/trips/"+trip.ID.String()+"/fuel-estimate?consumption=8.5&price=1.65", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[service.FuelEstimate](t, rec.Body)
	assert.Equal(t, 400.0, resp.TotalDistanceKm)
	assert.Equal(t, 3, resp.SegmentCount)
}

func TestGetFuelEstimate_422_BadQuery(t *testing.T) {
	trip := tripFixture()
	h := newHTTPHandler(serverMocks{summary: &mockSummaryServicer{}})

	for _, query := range []string{"", "?consumption=abc&price=1.5", "?consumption=8"} {
		req := httptest.NewRequest(http.MethodGet,
			"/trips/"+trip.ID.String()+"/fuel-estimate"+query, nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "query: %q", query)
	}
}

func TestGetRouteDescription_200(t *testing.T) {
	trip := tripFixture()

	h := newHTTPHandler(serverMocks{summary: &mockSummaryServicer{
		routeDescription: func(_ context.Context, _ uuid.UUID) ([]string, error) {
			return []string{"Day 1 (2025-06-01): Budapest -> Rome"}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet,
		"/trips/"+trip.ID.String()+"/route-description", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string][]string](t, rec.Body)
	require.Len(t, resp["lines"], 1)
	assert.Equal(t, "Day 1 (2025-06-01): Budapest -> Rome", resp["lines"][0])
}

// ---- GET /distance ---------------------------------------------------------

func TestGetDistance_200(t *testing.T) {
	h := newHTTPHandler(serverMocks{estimates: &mockEstimateServicer{
		distance: func(_ context.Context, origin, destination string) (ports.DistanceEstimate, error) {
			assert.Equal(t, "Budapest", origin)
			assert.Equal(t, "Vienna", destination)
			return ports.DistanceEstimate{DistanceKm: 243, Duration: 150 * time.Minute}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/distance?from=Budapest&to=Vienna", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[map[string]float64](t, rec.Body)
	assert.Equal(t, 243.0, resp["distance_km"])
	assert.Equal(t, 150.0, resp["duration_minutes"])
}

func TestGetDistance_422_MissingEndpoints(t *testing.T) {
	h := newHTTPHandler(serverMocks{estimates: &mockEstimateServicer{
		distance: func(_ context.Context, origin, destination string) (ports.DistanceEstimate, error) {
			return ports.DistanceEstimate{}, domain.ErrValidation
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/distance?from=Budapest", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetDistance_502_EstimatorDown(t *testing.T) {
	h := newHTTPHandler(serverMocks{estimates: &mockEstimateServicer{
		distance: func(_ context.Context, _, _ string) (ports.DistanceEstimate, error) {
			return ports.DistanceEstimate{}, errors.New("routing api timeout")
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/distance?from=Budapest&to=Vienna", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	resp := decodeBody[handler.ErrorResponse](t, rec.Body)
	assert.Equal(t, "estimator_unavailable", resp.Error.Code)
}
