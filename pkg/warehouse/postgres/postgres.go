// Package postgres provides a warehouse querier backed by PostgreSQL,
// useful for local development against a copy of the sales schema.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/warehouse"
)

// Querier implements warehouse.Querier against a PostgreSQL database.
type Querier struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewQuerier opens a connection pool using the given DSN.
func NewQuerier(dsn string, logger *slog.Logger) (*Querier, error) {
	if dsn == "" {
		return nil, fmt.Errorf("%w: postgres DSN is required", warehouse.ErrWarehouse)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening postgres connection: %v", warehouse.ErrWarehouse, err)
	}

	logger.Info("connected to postgres warehouse")

	return &Querier{
		db:     db,
		logger: logger,
	}, nil
}

// Query runs the given SQL and renders the result set as a text table.
func (q *Querier) Query(ctx context.Context, query string) (string, error) {
	q.logger.Debug("executing postgres query", "sql", query)

	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return "", fmt.Errorf("%w: %v", warehouse.ErrWarehouse, err)
	}
	defer rows.Close()

	out, err := warehouse.Render(rows)
	if err != nil {
		return "", fmt.Errorf("%w: %v", warehouse.ErrWarehouse, err)
	}

	return out, nil
}

// Close closes the underlying connection pool.
func (q *Querier) Close() error {
	return q.db.Close()
}

// Ensure Querier implements warehouse.Querier
var _ warehouse.Querier = (*Querier)(nil)
