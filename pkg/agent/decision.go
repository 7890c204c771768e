// Package agent implements the routing-and-answer pipeline: classify a
// question, retrieve context with the matching tool, and synthesize a
// grounded answer.
package agent

import "strings"

// Decision is the routing classification for a user question.
type Decision string

const (
	// DecisionSearch routes the question to the policy handbook search.
	DecisionSearch Decision = "SEARCH"

	// DecisionSQL routes the question to the sales warehouse.
	DecisionSQL Decision = "SQL"

	// DecisionChat means no tool is needed.
	DecisionChat Decision = "CHAT"
)

// ParseDecision maps raw classifier output onto the closed decision set.
// The oracle's reply is free text, so matching is by substring after
// trimming and uppercasing, SEARCH before SQL. Anything unrecognized
// falls back to CHAT rather than erroring.
func ParseDecision(raw string) Decision {
	normalized := strings.ToUpper(strings.TrimSpace(raw))

	switch {
	case strings.Contains(normalized, string(DecisionSearch)):
		return DecisionSearch
	case strings.Contains(normalized, string(DecisionSQL)):
		return DecisionSQL
	default:
		return DecisionChat
	}
}
