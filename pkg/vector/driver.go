// Package vector provides interfaces and implementations for storing and
// searching pre-embedded handbook chunks.
package vector

import "context"

// Document represents a stored handbook chunk with its embedding.
type Document struct {
	// ID is a unique identifier for the chunk (source file plus index).
	ID string

	// Source is the origin of the chunk, typically a file path.
	Source string

	// Text is the chunk text returned to the search tool.
	Text string

	// Embedding is the vector representation of Text.
	Embedding []float32
}

// QueryResult represents a search result with similarity score.
type QueryResult struct {
	Document

	// Score represents the similarity score (higher = more similar).
	Score float32
}

// Driver handles storage and retrieval of chunk embeddings.
type Driver interface {
	// Add stores documents with their embeddings.
	// If a document with the same ID already exists, implementers should
	// update the document.
	Add(ctx context.Context, docs []Document) error

	// Query finds the topK most similar documents to the given embedding,
	// most similar first (cosine, descending).
	Query(ctx context.Context, embedding []float32, topK int) ([]QueryResult, error)

	// Get retrieves documents by their IDs.
	Get(ctx context.Context, ids []string) ([]Document, error)

	// Delete removes documents by their IDs.
	Delete(ctx context.Context, ids []string) error

	// Close releases any resources held by the driver.
	Close() error
}
