package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/csaszi/trip-planner/internal/domain"
	"github.com/csaszi/trip-planner/internal/handler"
	"github.com/csaszi/trip-planner/internal/ports"
	"github.com/csaszi/trip-planner/internal/service"
	"github.com/csaszi/trip-planner/internal/timeline"
)

// Test doubles for the Servicer interfaces. Set only the method fields your
// test needs; an unset method that gets called panics, which is the point.

type mockTripServicer struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	update  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) Update(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, t)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

type mockLodgingServicer struct {
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Lodging, error)
	insert       func(ctx context.Context, tripID uuid.UUID, lodging domain.Lodging) ([]domain.Lodging, error)
	update       func(ctx context.Context, tripID uuid.UUID, lodging domain.Lodging) ([]domain.Lodging, error)
	delete       func(ctx context.Context, tripID, lodgingID uuid.UUID) ([]domain.Lodging, error)
}

func (m *mockLodgingServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Lodging, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockLodgingServicer) Insert(ctx context.Context, tripID uuid.UUID, l domain.Lodging) ([]domain.Lodging, error) {
	return m.insert(ctx, tripID, l)
}
func (m *mockLodgingServicer) Update(ctx context.Context, tripID uuid.UUID, l domain.Lodging) ([]domain.Lodging, error) {
	return m.update(ctx, tripID, l)
}
func (m *mockLodgingServicer) Delete(ctx context.Context, tripID, lodgingID uuid.UUID) ([]domain.Lodging, error) {
	return m.delete(ctx, tripID, lodgingID)
}

var _ handler.LodgingServicer = (*mockLodgingServicer)(nil)

type mockActivityServicer struct {
	create       func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	getByID      func(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
	update       func(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	delete       func(ctx context.Context, tripID, activityID uuid.UUID) error
}

func (m *mockActivityServicer) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityServicer) GetByID(ctx context.Context, tripID, activityID uuid.UUID) (domain.Activity, error) {
	return m.getByID(ctx, tripID, activityID)
}
func (m *mockActivityServicer) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockActivityServicer) Update(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.update(ctx, a)
}
func (m *mockActivityServicer) Delete(ctx context.Context, tripID, activityID uuid.UUID) error {
	return m.delete(ctx, tripID, activityID)
}

var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

type mockDayPlanServicer struct {
	get    func(ctx context.Context, tripID uuid.UUID, day time.Time) (domain.DayPlan, error)
	update func(ctx context.Context, plan domain.DayPlan) (domain.DayPlan, error)
}

func (m *mockDayPlanServicer) Get(ctx context.Context, tripID uuid.UUID, day time.Time) (domain.DayPlan, error) {
	return m.get(ctx, tripID, day)
}
func (m *mockDayPlanServicer) Update(ctx context.Context, plan domain.DayPlan) (domain.DayPlan, error) {
	return m.update(ctx, plan)
}

var _ handler.DayPlanServicer = (*mockDayPlanServicer)(nil)

type mockSummaryServicer struct {
	days             func(ctx context.Context, tripID uuid.UUID) ([]timeline.DayStatus, error)
	segments         func(ctx context.Context, tripID uuid.UUID, knownOnly bool) ([]domain.TripDriveSegment, error)
	fuel             func(ctx context.Context, tripID uuid.UUID, consumption, pricePerLiter float64) (service.FuelEstimate, error)
	routeDescription func(ctx context.Context, tripID uuid.UUID) ([]string, error)
}

func (m *mockSummaryServicer) Days(ctx context.Context, tripID uuid.UUID) ([]timeline.DayStatus, error) {
	return m.days(ctx, tripID)
}
func (m *mockSummaryServicer) Segments(ctx context.Context, tripID uuid.UUID, knownOnly bool) ([]domain.TripDriveSegment, error) {
	return m.segments(ctx, tripID, knownOnly)
}
func (m *mockSummaryServicer) Fuel(ctx context.Context, tripID uuid.UUID, consumption, pricePerLiter float64) (service.FuelEstimate, error) {
	return m.fuel(ctx, tripID, consumption, pricePerLiter)
}
func (m *mockSummaryServicer) RouteDescription(ctx context.Context, tripID uuid.UUID) ([]string, error) {
	return m.routeDescription(ctx, tripID)
}

var _ handler.SummaryServicer = (*mockSummaryServicer)(nil)

type mockEstimateServicer struct {
	distance func(ctx context.Context, origin, destination string) (ports.DistanceEstimate, error)
}

func (m *mockEstimateServicer) Distance(ctx context.Context, origin, destination string) (ports.DistanceEstimate, error) {
	return m.distance(ctx, origin, destination)
}

var _ handler.EstimateServicer = (*mockEstimateServicer)(nil)

// ---- fixture ---------------------------------------------------------------

// serverMocks bundles one mock per Servicer; tests set only what they exercise.
type serverMocks struct {
	trips      *mockTripServicer
	lodgings   *mockLodgingServicer
	activities *mockActivityServicer
	plans      *mockDayPlanServicer
	summary    *mockSummaryServicer
	estimates  *mockEstimateServicer
}

// newHTTPHandler wires a Server with the given mocks into the chi router,
// mirroring exactly how main.go wires it in production.
func newHTTPHandler(m serverMocks) http.Handler {
	srv := handler.NewServer(m.trips, m.lodgings, m.activities, m.plans, m.summary, m.estimates)
	return srv.Routes()
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:            uuid.New(),
		Name:          "Summer Tour",
		StartDay:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDay:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		StartingPoint: "Budapest",
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}
}

func lodgingFixture(tripID uuid.UUID) domain.Lodging {
	return domain.Lodging{
		ID:       uuid.New(),
		TripID:   tripID,
		Start:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Name:     "Hotel Roma",
		Location: "Rome",
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeBody[T any](t *testing.T, body *bytes.Buffer) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}
