// Package domain contains the core business entities and rules for the reward
// flight search system. These entities are storage-agnostic read-only
// projections; they are constructed fresh per request and never mutated.
package domain

import "time"

// RewardFlight represents one origin/destination/departure/carrier combination
// with up to four independent per-cabin award offers.
type RewardFlight struct {
	// ID is the origin-system-assigned identifier, rendered as a string
	ID string `json:"id"`

	// Origin is the IATA code of the departure airport (e.g., "LHR")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "JFK")
	Destination string `json:"destination"`

	// Departure is the calendar departure date in YYYY-MM-DD format
	Departure string `json:"departure"`

	// CarrierCode is the IATA code of the operating carrier (e.g., "VS")
	CarrierCode string `json:"carrier_code"`

	// ScrapedAt is when this availability snapshot was captured
	ScrapedAt time.Time `json:"scraped_at"`

	// Per-cabin award offers. A slot is nil when the flight has no award
	// inventory in that cabin; absence is meaningful and serializes as null.
	AwardEconomy        *AwardOffer `json:"award_economy"`
	AwardBusiness       *AwardOffer `json:"award_business"`
	AwardPremiumEconomy *AwardOffer `json:"award_premium_economy"`
	AwardFirst          *AwardOffer `json:"award_first"`
}

// AwardOffer is the award inventory for a single cabin of a flight.
// Attribute fields are pointers because source systems may supply any subset;
// the integer and string seat counts are kept distinct and are not assumed
// to agree.
type AwardOffer struct {
	// ID is the identifier of the cabin's award row
	ID string `json:"id"`

	// CabinPointsValue is the loyalty-points cost of a seat in this cabin
	CabinPointsValue *int `json:"cabin_points_value"`

	// IsSaverAward marks the lower-points fare tier
	IsSaverAward *bool `json:"is_saver_award"`

	// CabinClassSeatCount is the number of award seats available
	CabinClassSeatCount *int `json:"cabin_class_seat_count"`

	// CabinClassSeatCountString is the source system's string rendering of
	// the seat count
	CabinClassSeatCountString *string `json:"cabin_class_seat_count_string"`
}

// CabinClass identifies a travel class with its own award inventory.
type CabinClass string

// Cabin classes.
const (
	CabinEconomy        CabinClass = "ECONOMY"
	CabinPremiumEconomy CabinClass = "PREMIUM_ECONOMY"
	CabinBusiness       CabinClass = "BUSINESS"
	CabinFirst          CabinClass = "FIRST"
)

// IsValid reports whether the cabin class is one of the four known cabins.
func (c CabinClass) IsValid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// IsSearchable reports whether the cabin class can be used in a cheapest
// search. First class has no cheapest-first mode; this is a deliberate
// scope limit of the search API, not an oversight.
func (c CabinClass) IsSearchable() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness:
		return true
	default:
		return false
	}
}

// SearchableCabins lists the cabin classes accepted by the cheapest search.
func SearchableCabins() []CabinClass {
	return []CabinClass{CabinEconomy, CabinPremiumEconomy, CabinBusiness}
}

// Offer returns the award offer for the given cabin, or nil when the flight
// carries no award in that cabin.
func (f *RewardFlight) Offer(c CabinClass) *AwardOffer {
	switch c {
	case CabinEconomy:
		return f.AwardEconomy
	case CabinPremiumEconomy:
		return f.AwardPremiumEconomy
	case CabinBusiness:
		return f.AwardBusiness
	case CabinFirst:
		return f.AwardFirst
	default:
		return nil
	}
}

// Bookable reports whether the flight has a bookable offer in the given
// cabin: the offer exists, has a points value, and has at least one seat.
func (f *RewardFlight) Bookable(c CabinClass) bool {
	offer := f.Offer(c)
	if offer == nil {
		return false
	}
	return offer.CabinPointsValue != nil &&
		offer.CabinClassSeatCount != nil &&
		*offer.CabinClassSeatCount > 0
}
