// Package integration provides helpers and integration tests for the reward
// flight availability service. Integration tests drive the full stack below
// the wire: HTTP handlers, the use case, and the fixture store.
package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/rewardo/reward-flight-search/internal/adapter/http"
	"github.com/rewardo/reward-flight-search/internal/domain"
	"github.com/rewardo/reward-flight-search/internal/infrastructure/logger"
	"github.com/rewardo/reward-flight-search/internal/infrastructure/timeutil"
	"github.com/rewardo/reward-flight-search/internal/usecase"
	"github.com/rewardo/reward-flight-search/test/mock"
)

// DefaultCarrier is the carrier code all fixture routes are registered under.
const DefaultCarrier = "VS"

// FixtureStart is the first departure date generated by DefaultFixture.
var FixtureStart = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

// FixtureScrapedAt is the capture timestamp stamped on every fixture flight.
var FixtureScrapedAt = time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)

// FixtureDays is the number of consecutive daily flights in DefaultFixture.
const FixtureDays = 30

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.RewardFlightHandler
}

// NewTestServer creates a test server over the given repository, wiring the
// real use case and HTTP adapter under carrier VS.
func NewTestServer(repo domain.RewardFlightRepository) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	uc := usecase.NewRewardSearchUseCase(repo, &usecase.Config{CarrierCode: DefaultCarrier}, logger.Nop().Logger)
	handler := httpAdapter.NewRewardFlightHandler(uc)
	httpAdapter.RegisterRoutes(e, handler, DefaultCarrier)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// NewFixtureServer creates a test server backed by the default fixture data:
// one LHR-JFK flight per day for FixtureDays days starting at FixtureStart.
func NewFixtureServer() *TestServer {
	return NewTestServer(DefaultFixture())
}

// DefaultFixture builds the standard fixture store used across the suite.
func DefaultFixture() *mock.FixtureRepository {
	clock := timeutil.NewMockClock(FixtureScrapedAt)
	flights := mock.GenerateDailyFlights("LHR", "JFK", DefaultCarrier, FixtureStart, FixtureDays, clock)
	return mock.NewFixtureRepository(flights...)
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request against the test server.
func (ts *TestServer) Get(path string) Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// RangeRequest performs a range search over the given dates.
func (ts *TestServer) RangeRequest(origin, destination, from, to, query string) Response {
	path := fmt.Sprintf("/api/v1/airline/vs/reward-flights/origin/%s/destination/%s/from/%s/to/%s",
		origin, destination, from, to)
	if query != "" {
		path += "?" + query
	}
	return ts.Get(path)
}

// CheapestRequest performs a cheapest-by-cabin search.
func (ts *TestServer) CheapestRequest(origin, destination, cabin, query string) Response {
	path := fmt.Sprintf("/api/v1/airline/vs/reward-flights/origin/%s/destination/%s/cabin/%s/cheapest",
		origin, destination, cabin)
	if query != "" {
		path += "?" + query
	}
	return ts.Get(path)
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health")
}

// ParsePage parses the response body as a page of flights.
func (r *Response) ParsePage() (*httpAdapter.PageDTO, error) {
	var page httpAdapter.PageDTO
	if err := json.Unmarshal(r.Body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}
