package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/rewardo/reward-flight-search/internal/adapter/http/response"
	"github.com/rewardo/reward-flight-search/internal/domain"
	"github.com/rewardo/reward-flight-search/internal/usecase"
)

// RewardFlightHandler handles HTTP requests for reward flight endpoints.
type RewardFlightHandler struct {
	useCase usecase.RewardSearchUseCase
}

// NewRewardFlightHandler creates a new RewardFlightHandler with the given use case.
func NewRewardFlightHandler(uc usecase.RewardSearchUseCase) *RewardFlightHandler {
	return &RewardFlightHandler{
		useCase: uc,
	}
}

// RangeSearch handles GET .../reward-flights/origin/{origin}/destination/{destination}/from/{from}/to/{to}
//
// @Summary Search reward flights in a date range
// @Description Returns a paginated list of reward flights on the route departing within the inclusive date range, ordered by departure date.
// @Tags reward-flights
// @Produce json
// @Param origin path string true "Origin IATA airport code" example(LHR)
// @Param destination path string true "Destination IATA airport code" example(JFK)
// @Param from path string true "Start date (YYYY-MM-DD)" example(2024-06-01)
// @Param to path string true "End date (YYYY-MM-DD)" example(2024-06-30)
// @Param page-number query int false "Zero-based page number" default(0)
// @Param page-size query int false "Page size" default(10)
// @Success 200 {object} PageDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Store unavailable"
// @Router /airline/vs/reward-flights/origin/{origin}/destination/{destination}/from/{from}/to/{to} [get]
func (h *RewardFlightHandler) RangeSearch(c echo.Context) error {
	params, err := ParseRangeSearchParams(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.RangeSearch(c.Request().Context(),
		params.Origin, params.Destination, params.FromDate, params.ToDate, params.Page)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.PageResults(c, ToPageDTO(result))
}

// CheapestSearch handles GET .../reward-flights/origin/{origin}/destination/{destination}/cabin/{cabinType}/cheapest
//
// @Summary Search cheapest reward flights by cabin
// @Description Returns a paginated list of reward flights on the route with a bookable offer in the selected cabin, ordered by that cabin's points value ascending.
// @Tags reward-flights
// @Produce json
// @Param origin path string true "Origin IATA airport code" example(LHR)
// @Param destination path string true "Destination IATA airport code" example(JFK)
// @Param cabinType path string true "Cabin class" Enums(ECONOMY, PREMIUM_ECONOMY, BUSINESS)
// @Param page-number query int false "Zero-based page number" default(0)
// @Param page-size query int false "Page size" default(50)
// @Success 200 {object} PageDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Store unavailable"
// @Router /airline/vs/reward-flights/origin/{origin}/destination/{destination}/cabin/{cabinType}/cheapest [get]
func (h *RewardFlightHandler) CheapestSearch(c echo.Context) error {
	params, err := ParseCheapestSearchParams(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.CheapestSearch(c.Request().Context(),
		params.Origin, params.Destination, params.Cabin, params.Page)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.PageResults(c, ToPageDTO(result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *RewardFlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses. A failed
// query is always distinguishable from a query that succeeded with zero
// matches: zero matches are a 200 with an empty content array, failures
// land here.
func (h *RewardFlightHandler) handleError(c echo.Context, err error) error {
	// Store failures (count or page query) surface as 503
	var dae *domain.DataAccessError
	if errors.As(err, &dae) {
		return response.StoreUnavailable(c)
	}

	// A row the mapper refused to fabricate is an internal failure
	var me *domain.MappingError
	if errors.As(err, &me) {
		return response.InternalServerError(c)
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Check for invalid request (domain validation)
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *RewardFlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
