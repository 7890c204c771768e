package testutils

import (
	"context"
	"sync"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/eventstream"
)

// MockPublisher is a test eventstream publisher that records events
type MockPublisher struct {
	mu sync.Mutex

	// Events records every published event
	Events []*eventstream.TurnAnsweredEvent

	// Err causes PublishTurn to fail when set
	Err error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) PublishTurn(_ context.Context, event *eventstream.TurnAnsweredEvent) error {
	if event == nil {
		return eventstream.ErrNilTurnEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}

	m.Events = append(m.Events, event)
	return nil
}

func (m *MockPublisher) Close() error {
	return nil
}

// Published returns a snapshot of the recorded events.
func (m *MockPublisher) Published() []*eventstream.TurnAnsweredEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*eventstream.TurnAnsweredEvent, len(m.Events))
	copy(out, m.Events)
	return out
}
