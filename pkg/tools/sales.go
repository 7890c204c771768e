package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/warehouse"
)

// SalesDataTool executes SQL against the sales warehouse.
type SalesDataTool struct {
	querier warehouse.Querier
	logger  *slog.Logger
}

// NewSalesDataTool creates a sales data tool backed by the given querier.
func NewSalesDataTool(querier warehouse.Querier, logger *slog.Logger) *SalesDataTool {
	return &SalesDataTool{
		querier: querier,
		logger:  logger,
	}
}

// Run executes the given SQL and returns the rendered result set. Failures
// are returned as text rather than an error.
func (t *SalesDataTool) Run(ctx context.Context, query string) string {
	result, err := t.querier.Query(ctx, query)
	if err != nil {
		t.logger.Warn("sales query failed", "error", err)
		return fmt.Sprintf("Error executing SQL: %s", err.Error())
	}
	return result
}

// Ensure SalesDataTool implements Tool
var _ Tool = (*SalesDataTool)(nil)
