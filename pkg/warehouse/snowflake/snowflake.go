// Package snowflake provides a warehouse querier backed by Snowflake.
package snowflake

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	gosnowflake "github.com/snowflakedb/gosnowflake"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/warehouse"
)

// Querier implements warehouse.Querier against a Snowflake account.
type Querier struct {
	db     *sql.DB
	logger *slog.Logger
}

// Config holds Snowflake connection parameters.
type Config struct {
	Account   string
	User      string
	Password  string
	Role      string
	Warehouse string
	Database  string
	Schema    string
}

// NewQuerier opens a connection pool against Snowflake.
func NewQuerier(c Config, logger *slog.Logger) (*Querier, error) {
	dsn, err := gosnowflake.DSN(&gosnowflake.Config{
		Account:   c.Account,
		User:      c.User,
		Password:  c.Password,
		Role:      c.Role,
		Warehouse: c.Warehouse,
		Database:  c.Database,
		Schema:    c.Schema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: building snowflake DSN: %v", warehouse.ErrWarehouse, err)
	}

	db, err := sql.Open("snowflake", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening snowflake connection: %v", warehouse.ErrWarehouse, err)
	}

	logger.Info("connected to snowflake",
		"account", c.Account,
		"database", c.Database,
		"schema", c.Schema,
	)

	return &Querier{
		db:     db,
		logger: logger,
	}, nil
}

// Query runs the given SQL and renders the result set as a text table.
func (q *Querier) Query(ctx context.Context, query string) (string, error) {
	q.logger.Debug("executing snowflake query", "sql", query)

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
