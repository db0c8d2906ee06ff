package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/csaszi/trip-planner/internal/domain"
)

// Date is a calendar day on the wire, formatted "2006-01-02". It marshals
// to and from a bare date string and always carries midnight UTC.
type Date struct {
	time.Time
}

// NewDate wraps a day-aligned time.Time for JSON rendering.
func NewDate(t time.Time) Date {
	return Date{domain.DayAlign(t)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format("2006-01-02"))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	d.Time = t
	return nil
}

// writeJSON renders v with the given status. Encoding failures are beyond
// repair at this point (headers already sent), so they are swallowed.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON parses the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// uuidParam extracts a UUID path parameter by name.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

// dateParam extracts a "2006-01-02" path parameter by name.
func dateParam(r *http.Request, name string) (time.Time, error) {
	raw := chi.URLParam(r, name)
	t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (want YYYY-MM-DD)", name, raw)
	}
	return t, nil
}

// writeServiceError maps a service-layer error onto an HTTP response.
// The resource name feeds the 404 message ("trip not found", etc.).
func writeServiceError(w http.ResponseWriter, err error, resource string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody(resource+" not found"))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
	default:
		writeJSON(w, http.StatusInternalServerError, internalBody())
	}
}
