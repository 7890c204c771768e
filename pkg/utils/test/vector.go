package testutils

import (
	"context"
	"fmt"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/vector"
)

// MockVectorDriver is a test vector driver
type MockVectorDriver struct {
	Documents []vector.Document
	Results   []vector.QueryResult

	// Err causes Query to fail when set
	Err error
}

func NewMockVectorDriver() *MockVectorDriver {
	return &MockVectorDriver{
		Documents: make([]vector.Document, 0),
		Results:   make([]vector.QueryResult, 0),
	}
}

func (m *MockVectorDriver) Add(_ context.Context, docs []vector.Document) error {
	m.Documents = append(m.Documents, docs...)
	return nil
}

func (m *MockVectorDriver) Query(_ context.Context, _ []float32, topK int) ([]vector.QueryResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if len(m.Results) < topK {
		return m.Results, nil
	}
	return m.Results[:topK], nil
}

func (m *MockVectorDriver) Get(_ context.Context, ids []string) ([]vector.Document, error) {
	docs := make([]vector.Document, 0, len(ids))
	for _, id := range ids {
		for _, doc := range m.Documents {
			if doc.ID == id {
				docs = append(docs, doc)
				break
			}
		}
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no documents", vector.ErrNotFound)
	}
	return docs, nil
}

func (m *MockVectorDriver) Delete(_ context.Context, _ []string) error {
	return nil
}

func (m *MockVectorDriver) Close() error {
	return nil
}
