// Package tools provides the retrieval tools the agent can run before
// answering. Tools never fail: errors are folded into the returned text
// so the synthesis step can explain what went wrong.
package tools

import "context"

// Tool runs a retrieval step for the given input and returns the context
// string to feed into answer synthesis.
type Tool interface {
	Run(ctx context.Context, input string) string
}
