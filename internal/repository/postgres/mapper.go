package postgres

import (
	"errors"
	"strconv"
	"time"

	"github.com/rewardo/reward-flight-search/internal/domain"
)

// errNullColumn marks a required column that the store returned as null.
var errNullColumn = errors.New("value is null")

// awardColumns holds the scan targets for one cabin's joined columns.
// Every field is nullable: the identifier is null whenever the left join
// did not match, and source systems may omit any attribute independently.
type awardColumns struct {
	ID              *int64
	PointsValue     *int32
	IsSaverAward    *bool
	SeatCount       *int32
	SeatCountString *string
}

// flightRow is the scan target for one denormalized result row. Base
// columns are pointers too: the schema declares them NOT NULL, but the
// mapper must detect a violated assumption instead of fabricating values.
type flightRow struct {
	ID          *int64
	Origin      *string
	Destination *string
	Departure   *time.Time
	CarrierCode *string
	ScrapedAt   *time.Time

	Economy        awardColumns
	Business       awardColumns
	PremiumEconomy awardColumns
	First          awardColumns
}

// scanTargets returns the scan destinations in selectColumns order.
func (r *flightRow) scanTargets() []any {
	targets := []any{
		&r.ID,
		&r.Origin,
		&r.Destination,
		&r.Departure,
		&r.CarrierCode,
		&r.ScrapedAt,
	}
	for _, cabin := range []*awardColumns{&r.Economy, &r.Business, &r.PremiumEconomy, &r.First} {
		targets = append(targets,
			&cabin.ID,
			&cabin.PointsValue,
			&cabin.IsSaverAward,
			&cabin.SeatCount,
			&cabin.SeatCountString,
		)
	}
	return targets
}

// mapRow flattens one joined result row back into a nested RewardFlight.
// A null required base column is a *domain.MappingError; defaulting the
// departure date to "" or the capture timestamp to now would fabricate
// data, so neither happens here.
func mapRow(r *flightRow) (domain.RewardFlight, error) {
	var flight domain.RewardFlight

	switch {
	case r.ID == nil:
		return flight, domain.NewMappingError("id", errNullColumn)
	case r.Origin == nil:
		return flight, domain.NewMappingError("origin", errNullColumn)
	case r.Destination == nil:
		return flight, domain.NewMappingError("destination", errNullColumn)
	case r.Departure == nil:
		return flight, domain.NewMappingError("departure", errNullColumn)
	case r.CarrierCode == nil:
		return flight, domain.NewMappingError("carrier_code", errNullColumn)
	case r.ScrapedAt == nil:
		return flight, domain.NewMappingError("scraped_at", errNullColumn)
	}

	flight = domain.RewardFlight{
		ID:                  strconv.FormatInt(*r.ID, 10),
		Origin:              *r.Origin,
		Destination:         *r.Destination,
		Departure:           r.Departure.Format("2006-01-02"),
		CarrierCode:         *r.CarrierCode,
		ScrapedAt:           *r.ScrapedAt,
		AwardEconomy:        mapAward(r.Economy),
		AwardBusiness:       mapAward(r.Business),
		AwardPremiumEconomy: mapAward(r.PremiumEconomy),
		AwardFirst:          mapAward(r.First),
	}
	return flight, nil
}

// mapAward converts one cabin's joined columns into an AwardOffer. The offer
// exists exactly when the join produced a non-null identifier; attribute
// columns populate independently, and a null attribute degrades to absent
// for that field alone. Attributes without an identifier never produce a
// synthetic offer.
func mapAward(c awardColumns) *domain.AwardOffer {
	if c.ID == nil {
		return nil
	}

	offer := &domain.AwardOffer{
		ID:                        strconv.FormatInt(*c.ID, 10),
		CabinClassSeatCountString: c.SeatCountString,
		IsSaverAward:              c.IsSaverAward,
	}
	if c.PointsValue != nil {
		points := int(*c.PointsValue)
		offer.CabinPointsValue = &points
	}
	if c.SeatCount != nil {
		seats := int(*c.SeatCount)
		offer.CabinClassSeatCount = &seats
	}
	return offer
}
