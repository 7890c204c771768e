package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/oracle"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/tools"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/utils"
)

// NoToolNeeded is the context produced for questions that need no tool.
const NoToolNeeded = "No tool needed."

// Executor runs the tool selected by the routing decision and produces
// the context string for synthesis.
type Executor struct {
	completer oracle.Completer
	sales     tools.Tool
	policy    tools.Tool
	logger    *slog.Logger
}

// NewExecutor creates an executor over the given completer and tools.
func NewExecutor(completer oracle.Completer, sales, policy tools.Tool, logger *slog.Logger) *Executor {
	return &Executor{
		completer: completer,
		sales:     sales,
		policy:    policy,
		logger:    logger,
	}
}

// Execute dispatches on the decision and returns the retrieved context.
// It never returns an error: tool faults, and oracle faults while
// generating SQL, arrive as "Error ..." context strings so the turn
// degrades to an "I don't know" answer instead of aborting.
func (e *Executor) Execute(ctx context.Context, decision Decision, question string) string {
	switch decision {
	case DecisionSearch:
		e.logger.Debug("running vector search")
		return e.policy.Run(ctx, question)

	case DecisionSQL:
		e.logger.Debug("running sql generator")

		generated, err := e.completer.Complete(ctx, sqlPrompt(question))
		if err != nil {
			e.logger.Warn("sql generation failed", "error", err)
			return fmt.Sprintf("Error executing SQL: %s", err.Error())
		}

		query := utils.StripCodeFences(generated)
		e.logger.Debug("executing generated sql", "sql", query)

		return e.sales.Run(ctx, query)

	default:
		return NoToolNeeded
	}
}
