package domain

import (
	"fmt"
	"regexp"
	"time"
)

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// carrierCodeRegex matches IATA carrier codes (2 uppercase letters or digits).
var carrierCodeRegex = regexp.MustCompile(`^[A-Z0-9]{2}$`)

// RangeCriteria are the parameters of a range search: flights on a route for
// a carrier departing within [FromDate, ToDate] inclusive.
type RangeCriteria struct {
	Origin      string
	Destination string
	CarrierCode string
	FromDate    time.Time
	ToDate      time.Time
	Page        PageRequest
}

// Validate checks the range criteria. Returns an ErrInvalidRequest-wrapped
// error on the first failure.
func (c RangeCriteria) Validate() error {
	if !airportCodeRegex.MatchString(c.Origin) {
		return fmt.Errorf("%w: origin must be a 3-letter IATA code, got %q", ErrInvalidRequest, c.Origin)
	}
	if !airportCodeRegex.MatchString(c.Destination) {
		return fmt.Errorf("%w: destination must be a 3-letter IATA code, got %q", ErrInvalidRequest, c.Destination)
	}
	if !carrierCodeRegex.MatchString(c.CarrierCode) {
		return fmt.Errorf("%w: carrier code must be a 2-character IATA code, got %q", ErrInvalidRequest, c.CarrierCode)
	}
	if c.FromDate.IsZero() || c.ToDate.IsZero() {
		return fmt.Errorf("%w: from and to dates are required", ErrInvalidRequest)
	}
	return c.Page.Validate()
}

// CheapestCriteria are the parameters of a cheapest-by-cabin search: bookable
// offers on a route, ordered by the selected cabin's points value.
type CheapestCriteria struct {
	Origin      string
	Destination string
	Cabin       CabinClass
	Page        PageRequest
}

// Validate checks the cheapest criteria. The cabin must be one of the three
// searchable classes; FIRST is rejected along with unknown values.
func (c CheapestCriteria) Validate() error {
	if !airportCodeRegex.MatchString(c.Origin) {
		return fmt.Errorf("%w: origin must be a 3-letter IATA code, got %q", ErrInvalidRequest, c.Origin)
	}
	if !airportCodeRegex.MatchString(c.Destination) {
		return fmt.Errorf("%w: destination must be a 3-letter IATA code, got %q", ErrInvalidRequest, c.Destination)
	}
	if !c.Cabin.IsSearchable() {
		return fmt.Errorf("%w: cabin must be one of ECONOMY, PREMIUM_ECONOMY, BUSINESS; got %q", ErrInvalidRequest, c.Cabin)
	}
	return c.Page.Validate()
}
