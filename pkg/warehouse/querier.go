// Package warehouse defines the interface for querying tabular sales data.
package warehouse

import (
	"context"
	"errors"
)

// ErrWarehouse is the base error for warehouse failures.
var ErrWarehouse = errors.New("warehouse error")

// Querier executes SQL against a sales warehouse and renders the result
// set as text suitable for inclusion in a synthesis prompt.
type Querier interface {
	// Query runs the given SQL and returns a textual table of the results.
	Query(ctx context.Context, query string) (string, error)

	// Close releases any resources held by the querier.
	Close() error
}
