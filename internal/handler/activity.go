package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/csaszi/trip-planner/internal/domain"
)

// ActivityRequest is the JSON body for creating or updating an activity.
type ActivityRequest struct {
	Day                     Date    `json:"day"`
	OrderIndex              int     `json:"order_index"`
	Name                    string  `json:"name,omitempty"`
	Location                string  `json:"location"`
	DurationMinutes         int     `json:"duration_minutes"`
	DrivingDistanceToKm     float64 `json:"driving_distance_to_km,omitempty"`
	ReturnDrivingDistanceKm float64 `json:"return_driving_distance_km,omitempty"`
	TravelDayPosition       string  `json:"travel_day_position,omitempty"`
	IsDelay                 bool    `json:"is_delay,omitempty"`
	Notes                   string  `json:"notes,omitempty"`
}

// ActivityResponse is the JSON rendering of one activity.
type ActivityResponse struct {
	ID                      uuid.UUID `json:"id"`
	TripID                  uuid.UUID `json:"trip_id"`
	Day                     Date      `json:"day"`
	OrderIndex              int       `json:"order_index"`
	Name                    string    `json:"name,omitempty"`
	Location                string    `json:"location"`
	DurationMinutes         int       `json:"duration_minutes"`
	DrivingDistanceToKm     float64   `json:"driving_distance_to_km,omitempty"`
	ReturnDrivingDistanceKm float64   `json:"return_driving_distance_km,omitempty"`
	TravelDayPosition       string    `json:"travel_day_position"`
	IsDelay                 bool      `json:"is_delay,omitempty"`
	Notes                   string    `json:"notes,omitempty"`
}

// CreateActivity handles POST /trips/{tripID}/activities.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	created, err := s.activities.Create(r.Context(), requestToActivity(uuid.Nil, tripID, req))
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// ListActivities handles GET /trips/{tripID}/activities.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	activities, err := s.activities.ListByTripID(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	data := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		data[i] = activityToResponse(a)
	}
	writeJSON(w, http.StatusOK, data)
}

// GetActivity handles GET /trips/{tripID}/activities/{activityID}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	activityID, err := uuidParam(r, "activityID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	activity, err := s.activities.GetByID(r.Context(), tripID, activityID)
	if err != nil {
		writeServiceError(w, err, "activity")
		return
	}

	writeJSON(w, http.StatusOK, activityToResponse(activity))
}

// UpdateActivity handles PUT /trips/{tripID}/activities/{activityID}.
func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	activityID, err := uuidParam(r, "activityID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	var req ActivityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	updated, err := s.activities.Update(r.Context(), requestToActivity(activityID, tripID, req))
	if err != nil {
		writeServiceError(w, err, "activity")
		return
	}

	writeJSON(w, http.StatusOK, activityToResponse(updated))
}

// DeleteActivity handles DELETE /trips/{tripID}/activities/{activityID}.
func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	activityID, err := uuidParam(r, "activityID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	if err := s.activities.Delete(r.Context(), tripID, activityID); err != nil {
		writeServiceError(w, err, "activity")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

func requestToActivity(id, tripID uuid.UUID, req ActivityRequest) domain.Activity {
	return domain.Activity{
		ID:                      id,
		TripID:                  tripID,
		Day:                     req.Day.Time,
		OrderIndex:              req.OrderIndex,
		Name:                    req.Name,
		Location:                req.Location,
		DurationMinutes:         req.DurationMinutes,
		DrivingDistanceToKm:     req.DrivingDistanceToKm,
		ReturnDrivingDistanceKm: req.ReturnDrivingDistanceKm,
		TravelDayPosition:       domain.TravelDayPosition(req.TravelDayPosition),
		IsDelay:                 req.IsDelay,
		Notes:                   req.Notes,
	}
}

func activityToResponse(a domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:                      a.ID,
		TripID:                  a.TripID,
		Day:                     NewDate(a.Day),
		OrderIndex:              a.OrderIndex,
		Name:                    a.Name,
		Location:                a.Location,
		DurationMinutes:         a.DurationMinutes,
		DrivingDistanceToKm:     a.DrivingDistanceToKm,
		ReturnDrivingDistanceKm: a.ReturnDrivingDistanceKm,
		TravelDayPosition:       string(a.TravelDayPosition),
		IsDelay:                 a.IsDelay,
		Notes:                   a.Notes,
	}
}
