// Package bootstrap wires configured providers into a ready-to-run agent
// pipeline. It is shared by the CLI commands so the provider selection
// logic lives in one place.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/agent"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/config"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/dotdir"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/embeddings"
	ollamaembed "github.com/harshitMehrag/snowflake-langgraph-agent/pkg/embeddings/ollama"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/eventstream"
	kafkastream "github.com/harshitMehrag/snowflake-langgraph-agent/pkg/eventstream/kafka"
	nopstream "github.com/harshitMehrag/snowflake-langgraph-agent/pkg/eventstream/nop"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/oracle"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/oracle/cortex"
	ollamaoracle "github.com/harshitMehrag/snowflake-langgraph-agent/pkg/oracle/ollama"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/tools"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/vector"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/vector/qdrant"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/vector/sqlitevec"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/warehouse"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/warehouse/postgres"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/warehouse/snowflake"
)

// Runtime holds the wired components for one agent process.
type Runtime struct {
	Pipeline     *agent.Pipeline
	Completer    oracle.Completer
	Embedder     embeddings.Embedder
	VectorDriver vector.Driver
	Querier      warehouse.Querier
	Publisher    eventstream.Publisher

	closers []io.Closer
}

// New validates the configuration and constructs every component of the
// pipeline. Call Close when done to release connections.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runtime{}

	completer, err := newCompleter(cfg)
	if err != nil {
		return nil, err
	}
	r.Completer = completer
	r.closers = append(r.closers, completer)

	embedder, err := newEmbedder(cfg)
	if err != nil {
		r.Close()
		return nil, err
	}
	r.Embedder = embedder
	r.closers = append(r.closers, embedder)

	vectorDriver, err := newVectorDriver(ctx, cfg, logger)
	if err != nil {
		r.Close()
		return nil, err
	}
	r.VectorDriver = vectorDriver
	r.closers = append(r.closers, vectorDriver)

	querier, err := newQuerier(cfg, logger)
	if err != nil {
		r.Close()
		return nil, err
	}
	r.Querier = querier
	r.closers = append(r.closers, querier)

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		r.Close()
		return nil, err
	}
	r.Publisher = publisher
	r.closers = append(r.closers, publisher)

	sales := tools.NewSalesDataTool(querier, logger)
	policy := tools.NewPolicySearchTool(embedder, vectorDriver, cfg.Retrieval.TopK, logger)

	r.Pipeline = agent.NewPipeline(
		agent.NewRouter(completer, logger),
		agent.NewExecutor(completer, sales, policy, logger),
		agent.NewSynthesizer(completer, logger),
		publisher,
		logger,
	)

	return r, nil
}

// Close releases every component in reverse construction order.
func (r *Runtime) Close() error {
	var firstErr error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func newCompleter(cfg *config.Config) (oracle.Completer, error) {
	switch cfg.Oracle.Provider {
	case "cortex":
		return cortex.NewCompleter(cortex.Config{
			BaseURL: cfg.Oracle.Target,
			Account: cfg.Warehouse.Account,
			Model:   cfg.Oracle.Model,
			Token:   cfg.Oracle.Token,
		})
	case "ollama":
		return ollamaoracle.NewCompleter(ollamaoracle.Config{
			BaseURL: cfg.Oracle.Target,
			Model:   cfg.Oracle.Model,
		})
	default:
		return nil, fmt.Errorf("unknown oracle provider %q", cfg.Oracle.Provider)
	}
}

func newEmbedder(cfg *config.Config) (embeddings.Embedder, error) {
	switch cfg.Embedding.Provider {
	case "ollama":
		return ollamaembed.NewEmbedder(ollamaembed.EmbedderConfig{
			BaseURL: cfg.Embedding.Target,
			Model:   cfg.Embedding.Model,
		})
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Embedding.Provider)
	}
}

func newVectorDriver(ctx context.Context, cfg *config.Config, logger *slog.Logger) (vector.Driver, error) {
	switch cfg.VectorStore.Provider {
	case "sqlitevec":
		path := cfg.VectorStore.Path
		if path == "" {
			var err error
			path, err = defaultSQLitePath()
			if err != nil {
				return nil, err
			}
		}
		return sqlitevec.NewDriver(sqlitevec.Config{
			DBPath:     path,
			Dimensions: cfg.Embedding.Dimensions,
		}, logger)
	case "qdrant":
		return qdrant.NewDriver(ctx, qdrant.Config{
			Target:         cfg.VectorStore.Target,
			CollectionName: cfg.VectorStore.Collection,
			Dimensions:     cfg.Embedding.Dimensions,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown vector store provider %q", cfg.VectorStore.Provider)
	}
}

// defaultSQLitePath places the handbook database alongside config.toml in
// the .dataagent/ directory.
func defaultSQLitePath() (string, error) {
	dir, err := dotdir.NewManager().Target("")
	if err != nil {
		return "", fmt.Errorf("resolving handbook database path: %w", err)
	}
	return filepath.Join(dir, "handbook.db"), nil
}

func newQuerier(cfg *config.Config, logger *slog.Logger) (warehouse.Querier, error) {
	switch cfg.Warehouse.Provider {
	case "snowflake":
		return snowflake.NewQuerier(snowflake.Config{
			Account:   cfg.Warehouse.Account,
			User:      cfg.Warehouse.User,
			Password:  cfg.Warehouse.Password,
			Role:      cfg.Warehouse.Role,
			Warehouse: cfg.Warehouse.Warehouse,
			Database:  cfg.Warehouse.Database,
			Schema:    cfg.Warehouse.Schema,
		}, logger)
	case "postgres":
		return postgres.NewQuerier(cfg.Warehouse.DSN, logger)
	default:
		return nil, fmt.Errorf("unknown warehouse provider %q", cfg.Warehouse.Provider)
	}
}

func newPublisher(cfg *config.Config, logger *slog.Logger) (eventstream.Publisher, error) {
	if cfg.Events.Brokers == "" {
		return nopstream.NewPublisher(), nil
	}

	return kafkastream.NewPublisher(kafkastream.Config{
		Brokers: strings.Split(cfg.Events.Brokers, ","),
		Topic:   cfg.Events.Topic,
	}, logger)
}
