package checkers

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// Pool is the part of *pgxpool.Pool the check needs.
type Pool interface {
	Ping(ctx context.Context) error
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresChecker reports ready once the store answers and the schema is in
// place; a pool on an unmigrated database is not ready.
type PostgresChecker struct {
	pool Pool
}

func NewPostgresChecker(pool Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

var errSchemaMissing = errors.New("schema not migrated")

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := c.pool.Ping(ctx); err != nil {
		return err
	}
	var present bool
	if err := c.pool.QueryRow(ctx, `SELECT to_regclass('public.assessment_results') IS NOT NULL`).Scan(&present); err != nil {
		return err
	}
	if !present {
		return errSchemaMissing
	}
	return nil
}
