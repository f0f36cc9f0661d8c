// Package usecase contains the application logic for reward flight searches.
// It validates criteria, injects the configured carrier, and delegates the
// actual querying to the repository port.
package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/rewardo/reward-flight-search/internal/domain"
)

// DefaultCarrierCode is used when no carrier is configured. The snapshot
// currently only holds Virgin Atlantic availability.
const DefaultCarrierCode = "VS"

// RewardSearchUseCase defines the search operations exposed to the HTTP layer.
type RewardSearchUseCase interface {
	// RangeSearch returns a page of flights on the route for the configured
	// carrier departing within [from, to] inclusive, ordered by departure.
	RangeSearch(ctx context.Context, origin, destination string, from, to time.Time, page domain.PageRequest) (domain.Page[domain.RewardFlight], error)

	// CheapestSearch returns a page of flights on the route with a bookable
	// offer in the given cabin, cheapest first.
	CheapestSearch(ctx context.Context, origin, destination string, cabin domain.CabinClass, page domain.PageRequest) (domain.Page[domain.RewardFlight], error)
}

// Config contains configuration options for the use case.
type Config struct {
	// CarrierCode is the carrier all range searches are pinned to.
	CarrierCode string

	// QueryTimeout bounds a single search end to end. Zero disables the
	// bound and the request runs under the caller's context alone.
	QueryTimeout time.Duration
}

// rewardSearchUseCase implements RewardSearchUseCase over the repository
// port. It is stateless across requests and never retries: retry policy
// belongs to the connection collaborator.
type rewardSearchUseCase struct {
	repo         domain.RewardFlightRepository
	carrierCode  string
	queryTimeout time.Duration
	log          zerolog.Logger
}

// NewRewardSearchUseCase creates a RewardSearchUseCase with the given
// repository and configuration. A nil config selects the default carrier.
func NewRewardSearchUseCase(repo domain.RewardFlightRepository, config *Config, log zerolog.Logger) RewardSearchUseCase {
	carrier := DefaultCarrierCode
	var timeout time.Duration
	if config != nil {
		if config.CarrierCode != "" {
			carrier = config.CarrierCode
		}
		timeout = config.QueryTimeout
	}

	return &rewardSearchUseCase{
		repo:         repo,
		carrierCode:  carrier,
		queryTimeout: timeout,
		log:          log.With().Str("component", "reward_search").Logger(),
	}
}

// searchContext applies the configured query timeout, if any.
func (uc *rewardSearchUseCase) searchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, uc.queryTimeout)
}

// RangeSearch implements RewardSearchUseCase.
func (uc *rewardSearchUseCase) RangeSearch(ctx context.Context, origin, destination string, from, to time.Time, page domain.PageRequest) (domain.Page[domain.RewardFlight], error) {
	criteria := domain.RangeCriteria{
		Origin:      origin,
		Destination: destination,
		CarrierCode: uc.carrierCode,
		FromDate:    from,
		ToDate:      to,
		Page:        page,
	}
	if err := criteria.Validate(); err != nil {
		return domain.Page[domain.RewardFlight]{}, err
	}

	ctx, cancel := uc.searchContext(ctx)
	defer cancel()

	result, err := uc.repo.RangeSearch(ctx, criteria)
	if err != nil {
		uc.log.Error().Err(err).
			Str("origin", origin).
			Str("destination", destination).
			Msg("Range search failed")
		return domain.Page[domain.RewardFlight]{}, err
	}

	uc.log.Info().
		Str("origin", origin).
		Str("destination", destination).
		Int64("total_elements", result.TotalElements).
		Int("page_number", result.PageNumber).
		Msg("Range search completed")

	return result, nil
}

// CheapestSearch implements RewardSearchUseCase.
func (uc *rewardSearchUseCase) CheapestSearch(ctx context.Context, origin, destination string, cabin domain.CabinClass, page domain.PageRequest) (domain.Page[domain.RewardFlight], error) {
	criteria := domain.CheapestCriteria{
		Origin:      origin,
		Destination: destination,
		Cabin:       cabin,
		Page:        page,
	}
	if err := criteria.Validate(); err != nil {
		return domain.Page[domain.RewardFlight]{}, err
	}

	ctx, cancel := uc.searchContext(ctx)
	defer cancel()

	result, err := uc.repo.CheapestSearch(ctx, criteria)
	if err != nil {
		uc.log.Error().Err(err).
			Str("origin", origin).
			Str("destination", destination).
			Str("cabin", string(cabin)).
			Msg("Cheapest search failed")
		return domain.Page[domain.RewardFlight]{}, err
	}

	uc.log.Info().
		Str("origin", origin).
		Str("destination", destination).
		Str("cabin", string(cabin)).
		Int64("total_elements", result.TotalElements).
		Msg("Cheapest search completed")

	return result, nil
}

// Ensure rewardSearchUseCase implements RewardSearchUseCase at compile time.
var _ RewardSearchUseCase = (*rewardSearchUseCase)(nil)
