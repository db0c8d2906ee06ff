// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into resource
// files (trip.go, lodging.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/csaszi/trip-planner/internal/domain"
	"github.com/csaszi/trip-planner/internal/ports"
	"github.com/csaszi/trip-planner/internal/service"
	"github.com/csaszi/trip-planner/internal/timeline"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// LodgingServicer defines the lodging edit operations. Every mutation
// returns the full normalized lodging set, not the single edited record.
type LodgingServicer interface {
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Lodging, error)
	Insert(ctx context.Context, tripID uuid.UUID, lodging domain.Lodging) ([]domain.Lodging, error)
	Update(ctx context.Context, tripID uuid.UUID, lodging domain.Lodging) ([]domain.Lodging, error)
	Delete(ctx context.Context, tripID, lodgingID uuid.UUID) ([]domain.Lodging, error)
}

// ActivityServicer defines the business operations the activity handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	Update(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, tripID, activityID uuid.UUID) error
}

// DayPlanServicer defines the lazily-created per-day plan operations.
type DayPlanServicer interface {
	Get(ctx context.Context, tripID uuid.UUID, day time.Time) (domain.DayPlan, error)
	Update(ctx context.Context, plan domain.DayPlan) (domain.DayPlan, error)
}

// SummaryServicer defines the derived, recomputed-on-read views.
type SummaryServicer interface {
	Days(ctx context.Context, tripID uuid.UUID) ([]timeline.DayStatus, error)
	Segments(ctx context.Context, tripID uuid.UUID, knownOnly bool) ([]domain.TripDriveSegment, error)
	Fuel(ctx context.Context, tripID uuid.UUID, consumption, pricePerLiter float64) (service.FuelEstimate, error)
	RouteDescription(ctx context.Context, tripID uuid.UUID) ([]string, error)
}

// EstimateServicer resolves driving distances for the UI's pre-fill flows.
type EstimateServicer interface {
	Distance(ctx context.Context, origin, destination string) (ports.DistanceEstimate, error)
}

// Server holds the dependencies of every HTTP handler.
type Server struct {
	trips      TripServicer
	lodgings   LodgingServicer
	activities ActivityServicer
	plans      DayPlanServicer
	summary    SummaryServicer
	estimates  EstimateServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	trips TripServicer,
	lodgings LodgingServicer,
	activities ActivityServicer,
	plans DayPlanServicer,
	summary SummaryServicer,
	estimates EstimateServicer,
) *Server {
	return &Server{
		trips:      trips,
		lodgings:   lodgings,
		activities: activities,
		plans:      plans,
		summary:    summary,
		estimates:  estimates,
	}
}

// Routes returns the router with every endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/distance", s.GetDistance)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)

		r.Route("/{tripID}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Route("/lodgings", func(r chi.Router) {
				r.Get("/", s.ListLodgings)
				r.Post("/", s.InsertLodging)
				r.Put("/{lodgingID}", s.UpdateLodging)
				r.Delete("/{lodgingID}", s.DeleteLodging)
			})

			r.Route("/activities", func(r chi.Router) {
				r.Get("/", s.ListActivities)
				r.Post("/", s.CreateActivity)
				r.Get("/{activityID}", s.GetActivity)
				r.Put("/{activityID}", s.UpdateActivity)
				r.Delete("/{activityID}", s.DeleteActivity)
			})

			r.Get("/days", s.ListDays)
			r.Route("/days/{date}/plan", func(r chi.Router) {
				r.Get("/", s.GetDayPlan)
				r.Put("/", s.UpdateDayPlan)
			})

			r.Get("/segments", s.ListSegments)
			r.Get("/fuel-estimate", s.GetFuelEstimate)
			r.Get("/route-description", s.GetRouteDescription)
		})
	})

	return r
}
