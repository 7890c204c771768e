package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/embeddings"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/vector"
)

// DefaultTopK is the number of handbook chunks retrieved per search.
const DefaultTopK = 3

// PolicySearchTool retrieves relevant handbook chunks for a question.
type PolicySearchTool struct {
	embedder embeddings.Embedder
	driver   vector.Driver
	topK     int
	logger   *slog.Logger
}

// NewPolicySearchTool creates a policy search tool over the given embedder
// and vector store. A topK of 0 or less falls back to DefaultTopK.
func NewPolicySearchTool(embedder embeddings.Embedder, driver vector.Driver, topK int, logger *slog.Logger) *PolicySearchTool {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &PolicySearchTool{
		embedder: embedder,
		driver:   driver,
		topK:     topK,
		logger:   logger,
	}
}

// Run embeds the question, finds the most similar handbook chunks, and
// joins them with blank lines. Failures are returned as text rather than
// an error.
func (t *PolicySearchTool) Run(ctx context.Context, question string) string {
	embedding, err := t.embedder.Embed(ctx, question)
	if err != nil {
		t.logger.Warn("embedding question failed", "error", err)
		return fmt.Sprintf("Error searching handbook: %s", err.Error())
	}

	results, err := t.driver.Query(ctx, embedding, t.topK)
	if err != nil {
		t.logger.Warn("handbook query failed", "error", err)
		return fmt.Sprintf("Error searching handbook: %s", err.Error())
	}

	if len(results) == 0 {
		return "No policy found."
	}

	chunks := make([]string, len(results))
	for i, result := range results {
		chunks[i] = result.Document.Text
	}

	return strings.Join(chunks, "\n\n")
}

// Ensure PolicySearchTool implements Tool
var _ Tool = (*PolicySearchTool)(nil)
