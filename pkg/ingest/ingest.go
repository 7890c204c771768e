// Package ingest indexes handbook documents into the vector store so the
// policy search tool can retrieve them.
package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/embeddings"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/vector"
)

// DefaultChunkChars is the target chunk size in characters.
const DefaultChunkChars = 1200

// Options configures ingest behavior.
type Options struct {
	// ChunkChars is the target chunk size. Defaults to DefaultChunkChars.
	ChunkChars int

	// DryRun parses and chunks documents without writing to the store.
	DryRun bool
}

// Result summarizes one ingest run.
type Result struct {
	Files   int
	Chunks  int
	Skipped []string
}

// Ingester embeds document chunks and stores them in the vector store.
type Ingester struct {
	embedder embeddings.Embedder
	driver   vector.Driver
	options  Options
	logger   *slog.Logger
}

// NewIngester creates an ingester over the given embedder and store.
func NewIngester(embedder embeddings.Embedder, driver vector.Driver, opts Options, logger *slog.Logger) *Ingester {
	return &Ingester{
		embedder: embedder,
		driver:   driver,
		options:  opts,
		logger:   logger,
	}
}

// Run walks dir for .md and .txt files, chunks each one, embeds the
// chunks, and adds them to the vector store. Unreadable files are
// skipped and reported in the result rather than failing the run.
func (i *Ingester) Run(ctx context.Context, dir string) (*Result, error) {
	result := &Result{}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".md" && ext != ".txt" {
			return nil
		}

		if err := i.ingestFile(ctx, path, result); err != nil {
			i.logger.Warn("skipping file", "path", path, "error", err)
			result.Skipped = append(result.Skipped, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	return result, nil
}

func (i *Ingester) ingestFile(ctx context.Context, path string, result *Result) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	chunks := SplitDocument(string(content), i.options.ChunkChars)
	if len(chunks) == 0 {
		return nil
	}

	source := filepath.Base(path)

	docs := make([]vector.Document, 0, len(chunks))
	for _, chunk := range chunks {
		if !i.options.DryRun {
			embedding, err := i.embedder.Embed(ctx, chunk.Text)
			if err != nil {
				return fmt.Errorf("embedding chunk %d: %w", chunk.Index, err)
			}
			docs = append(docs, vector.Document{
				ID:        fmt.Sprintf("%s#%d", source, chunk.Index),
				Source:    source,
				Text:      chunk.Text,
				Embedding: embedding,
			})
		}
	}

	if !i.options.DryRun {
		if err := i.driver.Add(ctx, docs); err != nil {
			return fmt.Errorf("storing chunks: %w", err)
		}
	}

	i.logger.Info("ingested document", "source", source, "chunks", len(chunks))

	result.Files++
	result.Chunks += len(chunks)

	return nil
}
