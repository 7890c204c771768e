// Package mcp provides an MCP (Model Context Protocol) server exposing the
// agent's ask and handbook search capabilities as tools.
package mcp

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/agent"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/embeddings"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/utils"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/vector"
)

type Config struct {
	// Pipeline answers questions end to end (enables the ask tool)
	Pipeline *agent.Pipeline

	// VectorDriver for handbook search
	VectorDriver vector.Driver

	// Embedder for converting query text to vectors for handbook search
	Embedder embeddings.Embedder

	// Noop for empty MCP server
	Noop bool

	// Logger is the configured slog logger
	Logger *slog.Logger
}

type Server struct {
	config    Config
	mcpServer *mcp.Server
	handler   *mcp.StreamableHTTPHandler
}

// NewServer creates a new MCP server with the ask and search tools.
func NewServer(c Config) (*Server, error) {
	s := &Server{
		config: c,
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "dataagent",
			Version: utils.Version,
		},
		&mcp.ServerOptions{},
	)

	if c.Noop {
		// return the empty MCP server with no tools configured
		// if the noop flag is set (i.e., MCP capabilities are disabled)
		s.mcpServer = mcpServer
		return s, nil
	}

	if c.Pipeline == nil {
		return nil, errors.New("pipeline is required")
	}
	if c.VectorDriver == nil {
		return nil, errors.New("vector driver is required")
	}
	if c.Embedder == nil {
		return nil, errors.New("embedder is required")
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        askToolName,
		Description: askDescription,
	}, s.handleAsk)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        searchToolName,
		Description: searchDescription,
	}, s.handleSearch)

	s.mcpServer = mcpServer

	// Create a streamable HTTP net/http handler for stateless operations
	s.handler = mcp.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcp.Server {
			return mcpServer
		},
		&mcp.StreamableHTTPOptions{
			Stateless: true,
		},
	)

	return s, nil
}

// Handler returns the HTTP handler for the MCP server.
func (s *Server) Handler() http.Handler {
	return s.handler
}
