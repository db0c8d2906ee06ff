package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/csaszi/trip-planner/internal/domain"
)

// TripRequest is the JSON body for creating or updating a trip.
type TripRequest struct {
	Name            string `json:"name"`
	StartDay        Date   `json:"start_day"`
	EndDay          Date   `json:"end_day"`
	StartingPoint   string `json:"starting_point"`
	EndingPoint     string `json:"ending_point,omitempty"`
	DefaultLocation string `json:"default_location,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// TripResponse is the JSON rendering of a trip.
type TripResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	StartDay        Date      `json:"start_day"`
	EndDay          Date      `json:"end_day"`
	StartingPoint   string    `json:"starting_point"`
	EndingPoint     string    `json:"ending_point,omitempty"`
	DefaultLocation string    `json:"default_location,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req TripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	created, err := s.trips.Create(r.Context(), requestToTrip(uuid.Nil, req))
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	data := make([]TripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, data)
}

// GetTrip handles GET /trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	var req TripRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	updated, err := s.trips.Update(r.Context(), requestToTrip(id, req))
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{tripID}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func requestToTrip(id uuid.UUID, req TripRequest) domain.Trip {
	return domain.Trip{
		ID:              id,
		Name:            req.Name,
		StartDay:        req.StartDay.Time,
		EndDay:          req.EndDay.Time,
		StartingPoint:   req.StartingPoint,
		EndingPoint:     req.EndingPoint,
		DefaultLocation: req.DefaultLocation,
		Notes:           req.Notes,
	}
}

func tripToResponse(t domain.Trip) TripResponse {
	return TripResponse{
		ID:              t.ID,
		Name:            t.Name,
		StartDay:        NewDate(t.StartDay),
		EndDay:          NewDate(t.EndDay),
		StartingPoint:   t.StartingPoint,
		EndingPoint:     t.EndingPoint,
		DefaultLocation: t.DefaultLocation,
		Notes:           t.Notes,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
