package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csaszi/trip-planner/internal/domain"
	"github.com/csaszi/trip-planner/internal/handler"
)

func TestInsertLodging_201_ReturnsFullSet(t *testing.T) {
	trip := tripFixture()
	a := lodgingFixture(trip.ID)
	b := lodgingFixture(trip.ID)
	b.Name, b.Location = "Casa Firenze", "Florence"

	h := newHTTPHandler(serverMocks{lodgings: &mockLodgingServicer{
		insert: func(_ context.Context, tripID uuid.UUID, l domain.Lodging) ([]domain.Lodging, error) {
			assert.Equal(t, trip.ID, tripID)
			assert.Equal(t, uuid.Nil, l.ID)
			assert.Equal(t, "Casa Firenze", l.Name)
			return []domain.Lodging{a, b}, nil
		},
	}})

	body := jsonBody(t, map[string]any{
		"start":    "2025-06-04",
		"end":      "2025-06-06",
		"name":     "Casa Firenze",
		"location": "Florence",
	})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+trip.ID.String()+"/lodgings", body)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[[]handler.LodgingResponse](t, rec.Body)
	require.Len(t, resp, 2, "a mutation responds with the whole normalized set")
	assert.Equal(t, a.ID, resp[0].ID)
	assert.Equal(t, b.ID, resp[1].ID)
}

func TestUpdateLodging_200_MarksFillers(t *testing.T) {
	trip := tripFixture()
	edited := lodgingFixture(trip.ID)
	filler := lodgingFixture(trip.ID)
	filler.Name = "" // synthesized gap cover
	filler.Location = "Budapest"

	h := newHTTPHandler(serverMocks{lodgings: &mockLodgingServicer{
		update: func(_ context.Context, tripID uuid.UUID, l domain.Lodging) ([]domain.Lodging, error) {
			assert.Equal(t, edited.ID, l.ID, "the ID comes from the URL")
			return []domain.Lodging{edited, filler}, nil
		},
	}})

	body := jsonBody(t, map[string]any{
		"start":    "2025-06-01",
		"end":      "2025-06-08",
		"name":     "Hotel Roma",
		"location": "Rome",
	})
	req := httptest.NewRequest(http.MethodPut,
		"/trips/"+trip.ID.String()+"/lodgings/"+edited.ID.String(), body)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[[]handler.LodgingResponse](t, rec.Body)
	require.Len(t, resp, 2)
	assert.False(t, resp[0].IsFiller)
	assert.True(t, resp[1].IsFiller)
}

func TestUpdateLodging_404(t *testing.T) {
	trip := tripFixture()
	h := newHTTPHandler(serverMocks{lodgings: &mockLodgingServicer{
		update: func(_ context.Context, _ uuid.UUID, _ domain.Lodging) ([]domain.Lodging, error) {
			return nil, fmt.Errorf("service: %w", domain.ErrNotFound)
		},
	}})

	body := jsonBody(t, map[string]any{
		"start": "2025-06-01", "end": "2025-06-05", "location": "Rome",
	})
	req := httptest.NewRequest(http.MethodPut,
		"/trips/"+trip.ID.String()+"/lodgings/"+uuid.NewString(), body)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeBody[handler.ErrorResponse](t, rec.Body)
	assert.Equal(t, "lodging not found", resp.Error.Message)
}

func TestDeleteLodging_200_EmptySet(t *testing.T) {
	trip := tripFixture()
	target := lodgingFixture(trip.ID)

	h := newHTTPHandler(serverMocks{lodgings: &mockLodgingServicer{
		delete: func(_ context.Context, tripID, lodgingID uuid.UUID) ([]domain.Lodging, error) {
			assert.Equal(t, target.ID, lodgingID)
			return []domain.Lodging{}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodDelete,
		"/trips/"+trip.ID.String()+"/lodgings/"+target.ID.String(), nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "removing the last lodging leaves an empty set, not null")
}

func TestListLodgings_200(t *testing.T) {
	trip := tripFixture()
	a := lodgingFixture(trip.ID)

	h := newHTTPHandler(serverMocks{lodgings: &mockLodgingServicer{
		listByTripID: func(_ context.Context, tripID uuid.UUID) ([]domain.Lodging, error) {
			return []domain.Lodging{a}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodGet, "/trips/"+trip.ID.String()+"/lodgings", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[[]handler.LodgingResponse](t, rec.Body)
	require.Len(t, resp, 1)
	assert.Equal(t, "2025-06-01", resp[0].Start.Format("2006-01-02"))
}
