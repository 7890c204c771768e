package api

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/agent"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/embeddings"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/vector"
)

// Server is the API server for asking the agent questions.
type Server struct {
	config       Config
	pipeline     *agent.Pipeline
	embedder     embeddings.Embedder
	vectorDriver vector.Driver
	logger       *slog.Logger
	app          *fiber.App
}

// NewServer creates a new API server. The pipeline is injected to allow
// sharing with other surfaces (CLI, MCP). The mcpHandler is optional;
// when non-nil it is mounted at /mcp.
func NewServer(config Config, pipeline *agent.Pipeline, embedder embeddings.Embedder, vectorDriver vector.Driver, mcpHandler http.Handler, logger *slog.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:       config,
		pipeline:     pipeline,
		embedder:     embedder,
		vectorDriver: vectorDriver,
		logger:       logger,
		app:          app,
	}

	app.Get("/ping", s.handlePing)
	app.Post("/v1/invoke", s.handleInvoke)
	app.Get("/v1/search", s.handleSearchEndpoint)

	if mcpHandler != nil {
		app.All("/mcp", adaptor.HTTPHandler(mcpHandler))
	}

	return s
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server", "listen", s.config.ListenAddr)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
