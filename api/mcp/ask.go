package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	askToolName    = "ask"
	askDescription = "Ask the data agent a question. The question is routed to the sales warehouse, the policy handbook, or answered directly, and a grounded answer is returned."
)

// AskInput represents the input arguments for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the natural-language question to answer"`
}

// AskOutput represents the output of the ask tool.
type AskOutput struct {
	Question string `json:"question"`
	Decision string `json:"decision"`
	Answer   string `json:"answer"`
}

// handleAsk processes an ask request by running the full pipeline.
func (s *Server) handleAsk(ctx context.Context, req *mcp.CallToolRequest, input AskInput) (*mcp.CallToolResult, AskOutput, error) {
	logger := s.config.Logger

	if input.Question == "" {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: "question is required"},
			},
		}, AskOutput{}, nil
	}

	logger.Debug("MCP ask request", "question", input.Question)

	state, err := s.config.Pipeline.Ask(ctx, input.Question)
	if err != nil {
		logger.Error("failed to answer question", "error", err)
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to answer question: %v", err)},
			},
		}, AskOutput{}, nil
	}

	output := AskOutput{
		Question: state.Question,
		Decision: string(state.Decision),
		Answer:   state.Answer,
	}

	// Serialize the structured output as JSON for the text field
	// Per MCP spec: tools returning structured content should also return
	// serialized JSON in a TextContent block for backwards compatibility
	jsonBytes, err := json.Marshal(output)
	if err != nil {
		logger.Error("failed to marshal ask output", "error", err)
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("Failed to serialize answer: %v", err)},
			},
		}, AskOutput{}, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(jsonBytes)},
		},
	}, output, nil
}
