// Package eventstream defines transport-neutral events emitted by the agent
// and the publisher interface for shipping them to a stream backend.
package eventstream

import (
	"time"

	"github.com/google/uuid"
)

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeTurnAnswered is emitted after the agent answers a question.
	EventTypeTurnAnswered = "dataagent.turn.answered"
)

// TurnAnsweredEvent is a transport-neutral event payload for an answered turn.
type TurnAnsweredEvent struct {
	SchemaVersion int          `json:"schema_version"`
	EventType     string       `json:"event_type"`
	EventID       string       `json:"event_id"`
	EmittedAt     time.Time    `json:"emitted_at"`
	Turn          TurnMeta     `json:"turn"`
	Request       TurnDuration `json:"request"`
}

// TurnMeta captures what the agent decided and answered for one turn.
// ContextChars records the size of the retrieved context rather than the
// context itself, which may hold entire handbook chunks or query results.
type TurnMeta struct {
	Question     string `json:"question"`
	Decision     string `json:"decision"`
	ContextChars int    `json:"context_chars"`
	Answer       string `json:"answer"`
}

// TurnDuration captures timing metadata for the turn.
type TurnDuration struct {
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	DurationMs  int64     `json:"duration_ms"`
}

// NewTurnAnsweredEvent builds a v1 turn-answered event with a fresh event ID.
func NewTurnAnsweredEvent(question, decision string, contextChars int, answer string, startedAt, completedAt time.Time) *TurnAnsweredEvent {
	return &TurnAnsweredEvent{
		SchemaVersion: SchemaVersionV1,
		EventType:     EventTypeTurnAnswered,
		EventID:       "evt_" + uuid.NewString(),
		EmittedAt:     completedAt,
		Turn: TurnMeta{
			Question:     question,
			Decision:     decision,
			ContextChars: contextChars,
			Answer:       answer,
		},
		Request: TurnDuration{
			StartedAt:   startedAt,
			CompletedAt: completedAt,
			DurationMs:  completedAt.Sub(startedAt).Milliseconds(),
		},
	}
}
