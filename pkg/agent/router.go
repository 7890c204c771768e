package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/oracle"
)

// Router classifies a user question into a routing decision.
type Router struct {
	completer oracle.Completer
	logger    *slog.Logger
}

// NewRouter creates a router over the given completer.
func NewRouter(completer oracle.Completer, logger *slog.Logger) *Router {
	return &Router{
		completer: completer,
		logger:    logger,
	}
}

// Classify submits the fixed classification prompt and parses the reply.
// Oracle faults propagate to the caller; unrecognized replies do not.
func (r *Router) Classify(ctx context.Context, question string) (Decision, error) {
	reply, err := r.completer.Complete(ctx, routerPrompt(question))
	if err != nil {
		return "", fmt.Errorf("classifying question: %w", err)
	}

	decision := ParseDecision(reply)
	r.logger.Debug("router decision", "decision", decision, "raw", reply)

	return decision, nil
}
