// Package postgres implements the RewardFlightRepository port against the
// reward flight snapshot schema: a reward_flights_latest base table and four
// per-cabin award satellite tables keyed by flight_id.
package postgres

import (
	"fmt"

	"github.com/rewardo/reward-flight-search/internal/domain"
)

// selectColumns is the shared projection of both page queries: the base
// flight columns plus, per cabin, the identifier and four attribute columns
// produced by the left joins. Alias prefixes (ae_, ab_, ape_, af_) keep the
// flattened row unambiguous for the mapper.
const selectColumns = `rfl.id,
	rfl.origin,
	rfl.destination,
	rfl.departure,
	rfl.carrier_code,
	rfl.scraped_at,
	ae.id AS ae_id,
	ae.cabin_points_value AS ae_cabin_points_value,
	ae.is_saver_award AS ae_is_saver_award,
	ae.cabin_class_seat_count AS ae_cabin_class_seat_count,
	ae.cabin_class_seat_count_string AS ae_cabin_class_seat_count_string,
	ab.id AS ab_id,
	ab.cabin_points_value AS ab_cabin_points_value,
	ab.is_saver_award AS ab_is_saver_award,
	ab.cabin_class_seat_count AS ab_cabin_class_seat_count,
	ab.cabin_class_seat_count_string AS ab_cabin_class_seat_count_string,
	ape.id AS ape_id,
	ape.cabin_points_value AS ape_cabin_points_value,
	ape.is_saver_award AS ape_is_saver_award,
	ape.cabin_class_seat_count AS ape_cabin_class_seat_count,
	ape.cabin_class_seat_count_string AS ape_cabin_class_seat_count_string,
	af.id AS af_id,
	af.cabin_points_value AS af_cabin_points_value,
	af.is_saver_award AS af_is_saver_award,
	af.cabin_class_seat_count AS af_cabin_class_seat_count,
	af.cabin_class_seat_count_string AS af_cabin_class_seat_count_string`

// awardJoins left-joins every cabin's satellite table so a flight with no
// award in a cabin still appears, with null columns for that cabin.
const awardJoins = `LEFT JOIN award_economy ae ON ae.flight_id = rfl.id
	LEFT JOIN award_business ab ON ab.flight_id = rfl.id
	LEFT JOIN award_premium_economy ape ON ape.flight_id = rfl.id
	LEFT JOIN award_first af ON af.flight_id = rfl.id`

// rangeSearchQuery fetches one page of flights on a route for a carrier
// departing within an inclusive date range. The trailing rfl.id tie-break
// keeps the ordering deterministic across runs.
const rangeSearchQuery = `SELECT ` + selectColumns + `
FROM reward_flights_latest rfl
` + awardJoins + `
WHERE rfl.origin = $1
	AND rfl.destination = $2
	AND rfl.carrier_code = $3
	AND rfl.departure::date BETWEEN $4 AND $5
ORDER BY rfl.departure ASC, rfl.id ASC
LIMIT $6 OFFSET $7`

// rangeCountQuery counts the full range-search result set. The filter
// predicates reference only the base table, so no joins are needed.
const rangeCountQuery = `SELECT COUNT(*)
FROM reward_flights_latest rfl
WHERE rfl.origin = $1
	AND rfl.destination = $2
	AND rfl.carrier_code = $3
	AND rfl.departure::date BETWEEN $4 AND $5`

// cabinSpec describes how one searchable cabin class maps onto the joined
// result set: which satellite table holds its awards and which join alias
// its columns carry in the page query.
type cabinSpec struct {
	table string
	alias string
}

// cabinSpecs is the dispatch table for the cheapest search. Keying the
// eligibility predicate and ORDER BY on this table keeps a single query
// shape per cabin without string-built conditional SQL. FIRST is absent on
// purpose: the cheapest search does not cover it.
var cabinSpecs = map[domain.CabinClass]cabinSpec{
	domain.CabinEconomy:        {table: "award_economy", alias: "ae"},
	domain.CabinBusiness:       {table: "award_business", alias: "ab"},
	domain.CabinPremiumEconomy: {table: "award_premium_economy", alias: "ape"},
}

// cheapestSearchQuery builds the page query for a cheapest-by-cabin search.
// Eligibility (non-null points, seats > 0) and the points ordering both
// resolve against the selected cabin's join; departure then id break ties.
func cheapestSearchQuery(cabin domain.CabinClass) (string, error) {
	spec, ok := cabinSpecs[cabin]
	if !ok {
		return "", fmt.Errorf("%w: no cheapest search for cabin %q", domain.ErrInvalidRequest, cabin)
	}

	return fmt.Sprintf(`SELECT `+selectColumns+`
FROM reward_flights_latest rfl
`+awardJoins+`
WHERE rfl.origin = $1
	AND rfl.destination = $2
	AND %[1]s.cabin_points_value IS NOT NULL
	AND %[1]s.cabin_class_seat_count > 0
ORDER BY %[1]s.cabin_points_value ASC, rfl.departure ASC, rfl.id ASC
LIMIT $3 OFFSET $4`, spec.alias), nil
}

// cheapestCountQuery builds the count query mirroring the cheapest-search
// eligibility predicate. Only the selected cabin's table is joined; the
// other cabins never influence the count.
func cheapestCountQuery(cabin domain.CabinClass) (string, error) {
	spec, ok := cabinSpecs[cabin]
	if !ok {
		return "", fmt.Errorf("%w: no cheapest search for cabin %q", domain.ErrInvalidRequest, cabin)
	}

	return fmt.Sprintf(`SELECT COUNT(*)
FROM reward_flights_latest rfl
JOIN %[1]s %[2]s ON %[2]s.flight_id = rfl.id
WHERE rfl.origin = $1
	AND rfl.destination = $2
	AND %[2]s.cabin_points_value IS NOT NULL
	AND %[2]s.cabin_class_seat_count > 0`, spec.table, spec.alias), nil
}
