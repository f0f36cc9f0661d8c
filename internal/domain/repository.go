package domain

import "context"

// RewardFlightRepository is the query contract over the reward flight
// catalog. Implementations must be safe for unbounded concurrent use; the
// only shared state they may hold is a long-lived connection resource.
//
// Both operations return a Page whose metadata is consistent with the
// query's true total count. Store failures surface as *DataAccessError and
// unmappable rows as *MappingError; neither is ever coerced into an empty
// page.
type RewardFlightRepository interface {
	// RangeSearch returns flights matching origin, destination and carrier
	// exactly, departing within the inclusive date range, ordered by
	// departure date ascending.
	RangeSearch(ctx context.Context, criteria RangeCriteria) (Page[RewardFlight], error)

	// CheapestSearch returns flights on the route with a bookable offer in
	// the selected cabin (non-null points, seat count > 0), ordered by that
	// cabin's points value ascending, then departure date ascending.
	CheapestSearch(ctx context.Context, criteria CheapestCriteria) (Page[RewardFlight], error)
}
