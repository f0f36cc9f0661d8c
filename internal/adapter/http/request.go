// Package http provides the HTTP handler layer for the reward flight API.
// It handles path/query parameter decoding, validation, response formatting,
// and error mapping. Invalid input never reaches the core.
package http

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rewardo/reward-flight-search/internal/domain"
)

// Query parameter names (hyphenated, matching the published API).
const (
	paramPageNumber = "page-number"
	paramPageSize   = "page-size"
)

// Pagination defaults and limits.
const (
	// DefaultRangePageSize is the page size of a range search when the
	// caller omits page-size.
	DefaultRangePageSize = 10

	// DefaultCheapestPageSize is the page size of a cheapest search when
	// the caller omits page-size.
	DefaultCheapestPageSize = 50

	// MaxPageSize caps page-size so one request cannot drag an unbounded
	// slice of the snapshot through the joins.
	MaxPageSize = 200
)

// airportCodePattern matches valid IATA airport codes (3 uppercase letters).
var airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// RangeSearchParams are the decoded parameters of a range search request.
type RangeSearchParams struct {
	Origin      string
	Destination string
	FromDate    time.Time
	ToDate      time.Time
	Page        domain.PageRequest
}

// ParseRangeSearchParams decodes and validates the range search path and
// query parameters. All failures are collected into ValidationErrors so the
// caller sees every bad field at once.
func ParseRangeSearchParams(c echo.Context) (RangeSearchParams, error) {
	errs := &ValidationErrors{}

	params := RangeSearchParams{
		Origin:      parseAirportCode(c.Param("origin"), "origin", errs),
		Destination: parseAirportCode(c.Param("destination"), "destination", errs),
		FromDate:    parseDate(c.Param("from"), "from", errs),
		ToDate:      parseDate(c.Param("to"), "to", errs),
		Page:        parsePageRequest(c, DefaultRangePageSize, errs),
	}

	if errs.HasErrors() {
		return RangeSearchParams{}, errs
	}
	return params, nil
}

// CheapestSearchParams are the decoded parameters of a cheapest search
// request.
type CheapestSearchParams struct {
	Origin      string
	Destination string
	Cabin       domain.CabinClass
	Page        domain.PageRequest
}

// ParseCheapestSearchParams decodes and validates the cheapest search path
// and query parameters.
func ParseCheapestSearchParams(c echo.Context) (CheapestSearchParams, error) {
	errs := &ValidationErrors{}

	params := CheapestSearchParams{
		Origin:      parseAirportCode(c.Param("origin"), "origin", errs),
		Destination: parseAirportCode(c.Param("destination"), "destination", errs),
		Cabin:       parseCabinType(c.Param("cabinType"), errs),
		Page:        parsePageRequest(c, DefaultCheapestPageSize, errs),
	}

	if errs.HasErrors() {
		return CheapestSearchParams{}, errs
	}
	return params, nil
}

// parseAirportCode validates an IATA airport code, normalizing to uppercase.
func parseAirportCode(raw, field string, errs *ValidationErrors) string {
	if raw == "" {
		errs.Add(field, field+" is required")
		return ""
	}

	code := strings.ToUpper(raw)
	if !airportCodePattern.MatchString(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
		return ""
	}
	return code
}

// parseDate parses a YYYY-MM-DD path segment.
func parseDate(raw, field string, errs *ValidationErrors) time.Time {
	if raw == "" {
		errs.Add(field, field+" is required")
		return time.Time{}
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		errs.Add(field, field+" must be a valid date in YYYY-MM-DD format")
		return time.Time{}
	}
	return date
}

// parseCabinType validates the cabin path segment against the searchable
// cabin classes. FIRST is rejected here: the cheapest search does not
// cover it.
func parseCabinType(raw string, errs *ValidationErrors) domain.CabinClass {
	cabin := domain.CabinClass(raw)
	if !cabin.IsSearchable() {
		errs.Add("cabinType", "cabinType must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS")
		return ""
	}
	return cabin
}

// parsePageRequest decodes the page-number and page-size query parameters,
// applying the endpoint's default size. A zero or negative size is rejected
// here so it can never reach the paginator.
func parsePageRequest(c echo.Context, defaultSize int, errs *ValidationErrors) domain.PageRequest {
	page := domain.PageRequest{Number: 0, Size: defaultSize}

	if raw := c.QueryParam(paramPageNumber); raw != "" {
		number, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs.Add(paramPageNumber, paramPageNumber+" must be an integer")
		case number < 0:
			errs.Add(paramPageNumber, paramPageNumber+" must not be negative")
		default:
			page.Number = number
		}
	}

	if raw := c.QueryParam(paramPageSize); raw != "" {
		size, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs.Add(paramPageSize, paramPageSize+" must be an integer")
		case size < 1:
			errs.Add(paramPageSize, paramPageSize+" must be at least 1")
		case size > MaxPageSize:
			errs.Add(paramPageSize, paramPageSize+" must not exceed "+strconv.Itoa(MaxPageSize))
		default:
			page.Size = size
		}
	}

	return page
}
