package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	searchToolName    = "search_handbook"
	searchDescription = "Search the policy handbook using semantic search. Returns the most relevant handbook chunks for the query text."
)

// SearchInput represents the input arguments for the search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"the search query text to find relevant handbook chunks"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"number of results to return (default: 3)"`
}

// SearchResult represents a single search result.
type SearchResult struct {
	ID     string  `json:"id"`
	Source string  `json:"source,omitempty"`
	Text   string  `json:"text"`
	Score  float32 `json:"score"`
}

// SearchOutput represents the output of the search tool.
type SearchOutput struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
}

// handleSearch processes a handbook search request.
func (s *Server) handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	logger := s.config.Logger

	topK := input.TopK
	if topK <= 0 {
		topK = 3
	}

	logger.Debug("MCP search request",
		"query", input.Query,
		"topK", topK,
	)

	queryEmbedding, err := s.config.Embedder.Embed(ctx, input.Query)
	if err != nil {
		logger.Error("failed to embed query", "error", err)
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to embed query: %v", err)},
			},
		}, SearchOutput{}, nil
	}

	results, err := s.config.VectorDriver.Query(ctx, queryEmbedding, topK)
	if err != nil {
		logger.Error("failed to query vector store", "error", err)
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to query vector store: %v", err)},
			},
		}, SearchOutput{}, nil
	}

	searchResults := make([]SearchResult, 0, len(results))
	for _, result := range results {
		searchResults = append(searchResults, SearchResult{
			ID:     result.Document.ID,
			Source: result.Document.Source,
			Text:   result.Document.Text,
			Score:  result.Score,
		})
	}

	output := SearchOutput{
		Query:   input.Query,
		Results: searchResults,
		Count:   len(searchResults),
	}

	// Serialize the structured output as JSON for the text field
	// Per MCP spec: tools returning structured content should also return
	// serialized JSON in a TextContent block for backwards compatibility
	jsonBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal search output", "error", err)
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to serialize results: %v", err)},
			},
		}, SearchOutput{}, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonBytes)},
		},
	}, output, nil
}
