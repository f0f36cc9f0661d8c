// Package database manages the Postgres connection pool for the reward
// flight snapshot store.
package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/rewardo/reward-flight-search/internal/config"
	"github.com/rewardo/reward-flight-search/internal/infrastructure/retry"
)

// New creates a pgx connection pool from the database configuration and
// verifies connectivity with a probe query. The probe is retried with
// backoff so the service survives a database that is still starting.
func New(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	probe := func() error {
		var one int
		if err := pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
			log.Warn().Err(err).Msg("Database probe failed, retrying")
			return err
		}
		return nil
	}

	if err := retry.Do(ctx, probe, retry.ConnectConfig); err != nil {
		pool.Close()
		return nil, fmt.Errorf("probe database: %w", err)
	}

	log.Info().
		Int32("max_conns", cfg.MaxConns).
		Int32("min_conns", cfg.MinConns).
		Msg("Connected to database")

	return pool, nil
}
