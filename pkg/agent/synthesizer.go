package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/oracle"
)

// Synthesizer produces the final answer from the question and context.
type Synthesizer struct {
	completer oracle.Completer
	logger    *slog.Logger
}

// NewSynthesizer creates a synthesizer over the given completer.
func NewSynthesizer(completer oracle.Completer, logger *slog.Logger) *Synthesizer {
	return &Synthesizer{
		completer: completer,
		logger:    logger,
	}
}

// Synthesize submits the grounding prompt and returns the oracle's output
// verbatim. No post-processing and no verification against the context.
func (s *Synthesizer) Synthesize(ctx context.Context, question, contextText string) (string, error) {
	answer, err := s.completer.Complete(ctx, synthesisPrompt(question, contextText))
	if err != nil {
		return "", fmt.Errorf("synthesizing answer: %w", err)
	}

	return answer, nil
}
