package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/csaszi/trip-planner/internal/domain"
)

// LodgingRequest is the JSON body for inserting or updating a lodging.
type LodgingRequest struct {
	Start         Date     `json:"start"`
	End           Date     `json:"end"`
	Name          string   `json:"name,omitempty"`
	Location      string   `json:"location"`
	PricePerNight *float64 `json:"price_per_night,omitempty"`
	Currency      string   `json:"currency,omitempty"`
}

// LodgingResponse is the JSON rendering of one lodging interval.
type LodgingResponse struct {
	ID            uuid.UUID `json:"id"`
	TripID        uuid.UUID `json:"trip_id"`
	Start         Date      `json:"start"`
	End           Date      `json:"end"`
	Name          string    `json:"name,omitempty"`
	Location      string    `json:"location"`
	PricePerNight *float64  `json:"price_per_night,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	IsFiller      bool      `json:"is_filler"`
}

// ListLodgings handles GET /trips/{tripID}/lodgings.
func (s *Server) ListLodgings(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	lodgings, err := s.lodgings.ListByTripID(r.Context(), tripID)
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusOK, lodgingsToResponse(lodgings))
}

// InsertLodging handles POST /trips/{tripID}/lodgings.
// The response body is the full normalized lodging set, not just the new record.
func (s *Server) InsertLodging(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	var req LodgingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	result, err := s.lodgings.Insert(r.Context(), tripID, requestToLodging(uuid.Nil, req))
	if err != nil {
		writeServiceError(w, err, "trip")
		return
	}

	writeJSON(w, http.StatusCreated, lodgingsToResponse(result))
}

// UpdateLodging handles PUT /trips/{tripID}/lodgings/{lodgingID}.
// The response body is the full normalized lodging set.
func (s *Server) UpdateLodging(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	lodgingID, err := uuidParam(r, "lodgingID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	var req LodgingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	result, err := s.lodgings.Update(r.Context(), tripID, requestToLodging(lodgingID, req))
	if err != nil {
		writeServiceError(w, err, "lodging")
		return
	}

	writeJSON(w, http.StatusOK, lodgingsToResponse(result))
}

// DeleteLodging handles DELETE /trips/{tripID}/lodgings/{lodgingID}.
// The response body is the remaining lodging set, stretched back over the
// trip window (or empty when the last lodging was removed).
func (s *Server) DeleteLodging(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "tripID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	lodgingID, err := uuidParam(r, "lodgingID")
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}

	result, err := s.lodgings.Delete(r.Context(), tripID, lodgingID)
	if err != nil {
		writeServiceError(w, err, "lodging")
		return
	}

	writeJSON(w, http.StatusOK, lodgingsToResponse(result))
}

// --- mapping helpers --------------------------------------------------------

func requestToLodging(id uuid.UUID, req LodgingRequest) domain.Lodging {
	return domain.Lodging{
		ID:            id,
		Start:         req.Start.Time,
		End:           req.End.Time,
		Name:          req.Name,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		Currency:      req.Currency,
	}
}

func lodgingToResponse(l domain.Lodging) LodgingResponse {
	return LodgingResponse{
		ID:            l.ID,
		TripID:        l.TripID,
		Start:         NewDate(l.Start),
		End:           NewDate(l.End),
		Name:          l.Name,
		Location:      l.Location,
		PricePerNight: l.PricePerNight,
		Currency:      l.Currency,
		IsFiller:      l.IsFiller(),
	}
}

func lodgingsToResponse(lodgings []domain.Lodging) []LodgingResponse {
	data := make([]LodgingResponse, len(lodgings))
	for i, l := range lodgings {
		data[i] = lodgingToResponse(l)
	}
	return data
}
