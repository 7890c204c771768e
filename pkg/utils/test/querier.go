package testutils

import "context"

// MockQuerier is a test warehouse querier
type MockQuerier struct {
	// Result is returned for every query
	Result string

	// Err causes Query to fail when set
	Err error

	// Queries records every SQL statement received
	Queries []string
}

func NewMockQuerier() *MockQuerier {
	return &MockQuerier{}
}

func (m *MockQuerier) Query(_ context.Context, query string) (string, error) {
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Result, nil
}

func (m *MockQuerier) Close() error {
	return nil
}
