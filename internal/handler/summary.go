package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/csaszi/trip-planner/internal/domain"
	"github.com/csaszi/trip-planner/internal/timeline"
)

// DayResponse is the JSON rendering of one classified day.
// "no accommodation" days are the ones with has_lodging=false and
// moving=false — clients must render them distinctly from staying days.
type DayResponse struct {
	Day          Date   `json:"day"`
	DayNumber    int    `json:"day_number"`
	Moving       bool   `json:"moving"`
	HasLodging   bool   `json:"has_lodging"`
	LodgingLabel string `json:"lodging_label,omitempty"`
}

// SegmentResponse is the JSON rendering of one drive segment.
type SegmentResponse struct {
	Day          Date    `json:"day"`
	DayNumber    int     `json:"day_number"`
	FromLabel    string  `json:"from_label"`
	ToLabel      string  `json:"to_label"`
	FromLocation string  `json:"from_location"`
	ToLocation   string  `json:"to_location"`
	DistanceKm   float64 `json:"distance_km"`
}

// ListDays handles GET /trips/{tripID}/days.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	days, err := s.summary.Days(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	data := make([]DayResponse, len(days))
	for i, d := range days {
		data[i] = dayToResponse(d)
	}
	writeJSON(w, http.StatusOK, data)
}

// ListSegments handles GET /trips/{tripID}/segments.
// ?known_only=true selects the numeric-aggregation projection that omits
// legs without a known distance.
func (s *Server) ListSegments(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	knownOnly := r.URL.Query().Get("known_only") == "true"

	segments, err := s.summary.Segments(r.Context(), tripID, knownOnly)
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	data := make([]SegmentResponse, len(segments))
	for i, seg := range segments {
		data[i] = segmentToResponse(seg)
	}
	writeJSON(w, http.StatusOK, data)
}

// GetFuelEstimate handles GET /trips/{tripID}/fuel-estimate.
// ?consumption= is liters per 100 km, ?price= is the price per liter.
func (s *Server) GetFuelEstimate(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	consumption, err := floatQuery(r, "consumption")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	price, err := floatQuery(r, "price")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	estimate, err := s.summary.Fuel(r.Context(), tripID, consumption, price)
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, estimate)
}

// GetRouteDescription handles GET /trips/{tripID}/route-description.
func (s *Server) GetRouteDescription(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	lines, err := s.summary.RouteDescription(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"lines": lines})
}

// GetDistance handles GET /distance?from=&to= — the estimator pass-through
// the UI uses to pre-fill activity and day-plan distances.
func (s *Server) GetDistance(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	est, err := s.estimates.Distance(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		// Estimation goes over the network; its failures are the upstream
		// service's, not ours.
		writeJSON(w, http.StatusBadGateway, ErrorResponse{
			Error: ErrorDetail{Code: "estimator_unavailable", Message: "distance estimation failed"},
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"distance_km":      est.DistanceKm,
		"duration_minutes": int(est.Duration.Minutes()),
	})
}

func floatQuery(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q (want a number)", name, raw)
	}
	return v, nil
}

func dayToResponse(d timeline.DayStatus) DayResponse {
	resp := DayResponse{
		Day:        NewDate(d.Day),
		DayNumber:  d.DayNumber,
		Moving:     d.Moving,
		HasLodging: d.HasLodging,
	}
	if d.Lodging != nil {
		resp.LodgingLabel = d.Lodging.Label()
	}
	return resp
}

func segmentToResponse(seg domain.TripDriveSegment) SegmentResponse {
	return SegmentResponse{
		Day:          NewDate(seg.Day),
		DayNumber:    seg.DayNumber,
		FromLabel:    seg.FromLabel,
		ToLabel:      seg.ToLabel,
		FromLocation: seg.FromLocation,
		ToLocation:   seg.ToLocation,
		DistanceKm:   seg.DistanceKm,
	}
}
