package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/rewardo/reward-flight-search/internal/domain"
)

// DBTX is the subset of pgxpool.Pool the repository depends on. It supports
// both the pool itself and fakes in tests.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// snapshotTxOptions pins both reads of a search to one snapshot so the
// count and the page contents cannot skew under concurrent writes.
var snapshotTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

// RewardFlightRepository queries the reward flight snapshot in Postgres.
// It holds only the shared pool and is safe for unbounded concurrent use.
type RewardFlightRepository struct {
	db  DBTX
	log zerolog.Logger
}

// NewRewardFlightRepository creates a repository over the given pool.
func NewRewardFlightRepository(db DBTX, log zerolog.Logger) *RewardFlightRepository {
	return &RewardFlightRepository{
		db:  db,
		log: log.With().Str("component", "postgres_repository").Logger(),
	}
}

// RangeSearch implements domain.RewardFlightRepository.
func (r *RewardFlightRepository) RangeSearch(ctx context.Context, criteria domain.RangeCriteria) (domain.Page[domain.RewardFlight], error) {
	var page domain.Page[domain.RewardFlight]

	filterArgs := []any{
		criteria.Origin,
		criteria.Destination,
		criteria.CarrierCode,
		criteria.FromDate,
		criteria.ToDate,
	}
	pageArgs := append(append([]any{}, filterArgs...), criteria.Page.Size, criteria.Page.Offset())

	r.log.Debug().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Str("carrier_code", criteria.CarrierCode).
		Str("from", criteria.FromDate.Format("2006-01-02")).
		Str("to", criteria.ToDate.Format("2006-01-02")).
		Int("page_number", criteria.Page.Number).
		Int("page_size", criteria.Page.Size).
		Msg("Executing range search")

	flights, total, err := r.search(ctx, "range search", rangeCountQuery, filterArgs, rangeSearchQuery, pageArgs)
	if err != nil {
		return page, err
	}
	return domain.NewPage(flights, criteria.Page, total), nil
}

// CheapestSearch implements domain.RewardFlightRepository.
func (r *RewardFlightRepository) CheapestSearch(ctx context.Context, criteria domain.CheapestCriteria) (domain.Page[domain.RewardFlight], error) {
	var page domain.Page[domain.RewardFlight]

	countQuery, err := cheapestCountQuery(criteria.Cabin)
	if err != nil {
		return page, err
	}
	pageQuery, err := cheapestSearchQuery(criteria.Cabin)
	if err != nil {
		return page, err
	}

	filterArgs := []any{criteria.Origin, criteria.Destination}
	pageArgs := append(append([]any{}, filterArgs...), criteria.Page.Size, criteria.Page.Offset())

	r.log.Debug().
		Str("origin", criteria.Origin).
		Str("destination", criteria.Destination).
		Str("cabin", string(criteria.Cabin)).
		Int("page_number", criteria.Page.Number).
		Int("page_size", criteria.Page.Size).
		Msg("Executing cheapest search")

	flights, total, err := r.search(ctx, "cheapest search", countQuery, filterArgs, pageQuery, pageArgs)
	if err != nil {
		return page, err
	}
	return domain.NewPage(flights, criteria.Page, total), nil
}

// search runs a count query and a page query inside one repeatable-read
// read-only transaction and maps the fetched rows. Every failure (begin,
// count, fetch, scan, map, commit) propagates as a typed error; a failed
// count is never reported as a zero total.
func (r *RewardFlightRepository) search(ctx context.Context, op string, countQuery string, countArgs []any, pageQuery string, pageArgs []any) ([]domain.RewardFlight, int64, error) {
	tx, err := r.db.BeginTx(ctx, snapshotTxOptions)
	if err != nil {
		return nil, 0, domain.NewDataAccessError(op+" begin", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	var total int64
	if err := tx.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, domain.NewDataAccessError(op+" count", err)
	}

	rows, err := tx.Query(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, 0, domain.NewDataAccessError(op+" fetch", err)
	}

	flights, err := collectFlights(rows, op)
	if err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, domain.NewDataAccessError(op+" commit", err)
	}

	r.log.Debug().
		Int64("total_elements", total).
		Int("rows", len(flights)).
		Msg("Search completed")

	return flights, total, nil
}

// collectFlights drains the result set through the row mapper. It always
// closes rows and distinguishes scan failures (data access) from mapping
// failures (unreadable required columns).
func collectFlights(rows pgx.Rows, op string) ([]domain.RewardFlight, error) {
	defer rows.Close()

	flights := []domain.RewardFlight{}
	for rows.Next() {
		var row flightRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, domain.NewDataAccessError(op+" scan", err)
		}

		flight, err := mapRow(&row)
		if err != nil {
			return nil, err
		}
		flights = append(flights, flight)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewDataAccessError(op+" rows", err)
	}
	return flights, nil
}

// Ensure the repository satisfies the domain port at compile time.
var _ domain.RewardFlightRepository = (*RewardFlightRepository)(nil)
