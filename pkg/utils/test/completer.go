package testutils

import (
	"context"
	"strings"
	"sync"
)

// MockCompleter is a test completer that returns scripted responses.
// Responses keyed by substring match against the prompt take priority;
// otherwise queued responses are returned in order.
type MockCompleter struct {
	mu sync.Mutex

	// Responses maps a prompt substring to a canned completion
	Responses map[string]string

	// Queue is returned in order when no substring matches
	Queue []string

	// Err causes Complete to fail when set
	Err error

	// Prompts records every prompt received
	Prompts []string
}

func NewMockCompleter() *MockCompleter {
	return &MockCompleter{
		Responses: make(map[string]string),
	}
}

func (m *MockCompleter) Complete(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, prompt)

	if m.Err != nil {
		return "", m.Err
	}

	for substr, response := range m.Responses {
		if strings.Contains(prompt, substr) {
			return response, nil
		}
	}

	if len(m.Queue) > 0 {
		response := m.Queue[0]
		m.Queue = m.Queue[1:]
		return response, nil
	}

	return "", nil
}

func (m *MockCompleter) Close() error {
	return nil
}
