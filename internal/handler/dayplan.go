package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/csaszi/trip-planner/internal/domain"
)

// DayPlanRequest is the JSON body for updating a day plan.
type DayPlanRequest struct {
	DepartureHour              int     `json:"departure_hour"`
	DepartureMinute            int     `json:"departure_minute"`
	MovingDayDrivingDistanceKm float64 `json:"moving_day_driving_distance_km,omitempty"`
}

// DayPlanResponse is the JSON rendering of one day plan.
type DayPlanResponse struct {
	ID                         uuid.UUID `json:"id"`
	TripID                     uuid.UUID `json:"trip_id"`
	Day                        Date      `json:"day"`
	DepartureHour              int       `json:"departure_hour"`
	DepartureMinute            int       `json:"departure_minute"`
	MovingDayDrivingDistanceKm float64   `json:"moving_day_driving_distance_km,omitempty"`
}

// GetDayPlan handles GET /trips/{tripID}/days/{date}/plan.
// A day without a plan gets one created with defaults on first request.
func (s *Server) GetDayPlan(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	day, err := dateParam(r, "date")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	plan, err := s.plans.Get(r.Context(), tripID, day)
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, dayPlanToResponse(plan))
}

// UpdateDayPlan handles PUT /trips/{tripID}/days/{date}/plan.
func (s *Server) UpdateDayPlan(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	day, err := dateParam(r, "date")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	var req DayPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	updated, err := s.plans.Update(r.Context(), domain.DayPlan{
		TripID:                     tripID,
		Day:                        day,
		DepartureHour:              req.DepartureHour,
		DepartureMinute:            req.DepartureMinute,
		MovingDayDrivingDistanceKm: req.MovingDayDrivingDistanceKm,
	})
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, dayPlanToResponse(updated))
}

func dayPlanToResponse(p domain.DayPlan) DayPlanResponse {
	return DayPlanResponse{
		ID:                         p.ID,
		TripID:                     p.TripID,
		Day:                        NewDate(p.Day),
		DepartureHour:              p.DepartureHour,
		DepartureMinute:            p.DepartureMinute,
		MovingDayDrivingDistanceKm: p.MovingDayDrivingDistanceKm,
	}
}
