package agent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/eventstream"
)

const (
	// RoleUser marks a message written by the end user.
	RoleUser = "user"

	// RoleAssistant marks a message written by the agent.
	RoleAssistant = "assistant"
)

// Message is one entry in a conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// State is the record threaded through one turn of the pipeline. Each
// stage writes exactly one field, in order: Decision, Context, Answer.
// The caller's history is never used to carry stage outputs.
type State struct {
	Question string
	Decision Decision
	Context  string
	Answer   string
}

// Pipeline sequences Router, Executor, and Synthesizer for one turn.
type Pipeline struct {
	router      *Router
	executor    *Executor
	synthesizer *Synthesizer
	publisher   eventstream.Publisher
	logger      *slog.Logger
}

// NewPipeline creates a pipeline over the given stages and publisher.
func NewPipeline(router *Router, executor *Executor, synthesizer *Synthesizer, publisher eventstream.Publisher, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		router:      router,
		executor:    executor,
		synthesizer: synthesizer,
		publisher:   publisher,
		logger:      logger,
	}
}

// Run answers the newest user message in history and returns a new history
// with exactly one assistant message appended. The input slice is never
// mutated. Oracle faults propagate; tool faults degrade into the context.
func (p *Pipeline) Run(ctx context.Context, history []Message) ([]Message, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("history is empty")
	}

	last := history[len(history)-1]
	if last.Role != RoleUser {
		return nil, fmt.Errorf("last message must be from the user, got role %q", last.Role)
	}

	state, err := p.Ask(ctx, last.Content)
	if err != nil {
		return nil, err
	}

	out := make([]Message, len(history), len(history)+1)
	copy(out, history)
	out = append(out, Message{Role: RoleAssistant, Content: state.Answer})

	return out, nil
}

// Ask answers a single question, running Router, Executor, and Synthesizer
// strictly in order, and returns the completed turn state.
func (p *Pipeline) Ask(ctx context.Context, question string) (State, error) {
	startedAt := time.Now().UTC()

	state := State{Question: question}

	decision, err := p.router.Classify(ctx, state.Question)
	if err != nil {
		return State{}, err
	}
	state.Decision = decision

	state.Context = p.executor.Execute(ctx, state.Decision, state.Question)

	answer, err := p.synthesizer.Synthesize(ctx, state.Question, state.Context)
	if err != nil {
		return State{}, err
	}
	state.Answer = answer

	completedAt := time.Now().UTC()

	p.logger.Info("turn answered",
		"decision", state.Decision,
		"duration", completedAt.Sub(startedAt),
	)

	p.publish(ctx, state, startedAt, completedAt)

	return state, nil
}

// publish emits a turn-answered event. Publish failures are logged and
// never surfaced to the caller.
func (p *Pipeline) publish(ctx context.Context, state State, startedAt, completedAt time.Time) {
	event := eventstream.NewTurnAnsweredEvent(
		state.Question,
		string(state.Decision),
		len(state.Context),
		state.Answer,
		startedAt,
		completedAt,
	)

	if err := p.publisher.PublishTurn(ctx, event); err != nil {
		p.logger.Warn("failed to publish turn event", "error", err)
	}
}
