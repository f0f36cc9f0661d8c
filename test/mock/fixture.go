package mock

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/rewardo/reward-flight-search/internal/domain"
	"github.com/rewardo/reward-flight-search/internal/infrastructure/timeutil"
)

// FixtureRepository is a deterministic in-memory implementation of the
// repository port for integration tests. It applies the same filtering,
// ordering, and page math as the Postgres implementation, over a fixed
// slice of flights.
type FixtureRepository struct {
	flights []domain.RewardFlight
}

// NewFixtureRepository creates a fixture store over the given flights.
func NewFixtureRepository(flights ...domain.RewardFlight) *FixtureRepository {
	return &FixtureRepository{flights: flights}
}

// GenerateDailyFlights builds one flight per day on the given route starting
// at start. Award points rise with the day index so ordering is predictable:
// economy 10000+i*1000, premium economy 20000+i*1500, business 30000+i*2000.
// No flight carries a first-class award. ScrapedAt is stamped from the clock.
func GenerateDailyFlights(origin, destination, carrierCode string, start time.Time, days int, clock timeutil.Clock) []domain.RewardFlight {
	flights := make([]domain.RewardFlight, 0, days)
	for i := 0; i < days; i++ {
		flights = append(flights, domain.RewardFlight{
			ID:          strconv.Itoa(1000 + i),
			Origin:      origin,
			Destination: destination,
			Departure:   start.AddDate(0, 0, i).Format("2006-01-02"),
			CarrierCode: carrierCode,
			ScrapedAt:   clock.Now(),
			AwardEconomy: &domain.AwardOffer{
				ID:                  "ae-" + strconv.Itoa(1000+i),
				CabinPointsValue:    intPtr(10000 + i*1000),
				IsSaverAward:        boolPtr(i%2 == 0),
				CabinClassSeatCount: intPtr(9),
			},
			AwardPremiumEconomy: &domain.AwardOffer{
				ID:                  "ape-" + strconv.Itoa(1000+i),
				CabinPointsValue:    intPtr(20000 + i*1500),
				IsSaverAward:        boolPtr(false),
				CabinClassSeatCount: intPtr(4),
			},
			AwardBusiness: &domain.AwardOffer{
				ID:                  "ab-" + strconv.Itoa(1000+i),
				CabinPointsValue:    intPtr(30000 + i*2000),
				IsSaverAward:        boolPtr(false),
				CabinClassSeatCount: intPtr(2),
			},
		})
	}
	return flights
}

// RangeSearch implements domain.RewardFlightRepository.
func (r *FixtureRepository) RangeSearch(ctx context.Context, criteria domain.RangeCriteria) (domain.Page[domain.RewardFlight], error) {
	if err := ctx.Err(); err != nil {
		return domain.Page[domain.RewardFlight]{}, err
	}

	from := criteria.FromDate.Format("2006-01-02")
	to := criteria.ToDate.Format("2006-01-02")

	var matched []domain.RewardFlight
	for _, f := range r.flights {
		if f.Origin != criteria.Origin || f.Destination != criteria.Destination {
			continue
		}
		if f.CarrierCode != criteria.CarrierCode {
			continue
		}
		if f.Departure < from || f.Departure > to {
			continue
		}
		matched = append(matched, f)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Departure != matched[j].Departure {
			return matched[i].Departure < matched[j].Departure
		}
		return matched[i].ID < matched[j].ID
	})

	return paginate(matched, criteria.Page), nil
}

// CheapestSearch implements domain.RewardFlightRepository.
func (r *FixtureRepository) CheapestSearch(ctx context.Context, criteria domain.CheapestCriteria) (domain.Page[domain.RewardFlight], error) {
	if err := ctx.Err(); err != nil {
		return domain.Page[domain.RewardFlight]{}, err
	}

	var matched []domain.RewardFlight
	for _, f := range r.flights {
		if f.Origin != criteria.Origin || f.Destination != criteria.Destination {
			continue
		}
		if !f.Bookable(criteria.Cabin) {
			continue
		}
		matched = append(matched, f)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		pi := *matched[i].Offer(criteria.Cabin).CabinPointsValue
		pj := *matched[j].Offer(criteria.Cabin).CabinPointsValue
		if pi != pj {
			return pi < pj
		}
		if matched[i].Departure != matched[j].Departure {
			return matched[i].Departure < matched[j].Departure
		}
		return matched[i].ID < matched[j].ID
	})

	return paginate(matched, criteria.Page), nil
}

// paginate slices one page out of the full result set, with the same totals
// and ceiling math as the SQL path.
func paginate(all []domain.RewardFlight, page domain.PageRequest) domain.Page[domain.RewardFlight] {
	total := int64(len(all))

	start := page.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + page.Size
	if end > len(all) {
		end = len(all)
	}

	content := make([]domain.RewardFlight, end-start)
	copy(content, all[start:end])

	return domain.NewPage(content, page, total)
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

var _ domain.RewardFlightRepository = (*FixtureRepository)(nil)
