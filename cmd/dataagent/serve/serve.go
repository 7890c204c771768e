// Package servecmder provides the serve command for running the HTTP API
// and MCP server.
package servecmder

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harshitMehrag/snowflake-langgraph-agent/api"
	"github.com/harshitMehrag/snowflake-langgraph-agent/api/mcp"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/bootstrap"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/config"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/logger"
)

type ServeCommander struct {
	listen     string
	configDir  string
	disableMCP bool
	debug      bool
}

const serveLongDesc string = `Run the dataagent HTTP API server.

Endpoints:
  GET  /ping         Health check
  POST /v1/invoke    Answer the newest user message in a conversation
  GET  /v1/search    Semantic search over the policy handbook
  /mcp               MCP server exposing the ask and search_handbook tools

Examples:
  dataagent serve
  dataagent serve --listen :9000 --no-mcp`

const serveShortDesc string = "Run the dataagent HTTP API server"

func NewServeCmd() *cobra.Command {
	cmder := &ServeCommander{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: serveShortDesc,
		Long:  serveLongDesc,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %v", err)
			}
			cmder.configDir, _ = cmd.Flags().GetString("config-dir")

			return cmder.run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", "", "Address for the API server to listen on (default from config)")
	cmd.Flags().BoolVar(&cmder.disableMCP, "no-mcp", false, "Disable the MCP endpoint")

	return cmd
}

func (c *ServeCommander) run(ctx context.Context) error {
	log := logger.New(logger.WithDebug(c.debug))

	v, err := config.InitViper(c.configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.FromViper(v)

	listen := c.listen
	if listen == "" {
		listen = cfg.API.Listen
	}

	runtime, err := bootstrap.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer runtime.Close()

	var mcpHandler http.Handler
	if !c.disableMCP {
		mcpServer, err := mcp.NewServer(mcp.Config{
			Pipeline:     runtime.Pipeline,
			VectorDriver: runtime.VectorDriver,
			Embedder:     runtime.Embedder,
			Logger:       log,
		})
		if err != nil {
			return fmt.Errorf("creating MCP server: %w", err)
		}
		mcpHandler = mcpServer.Handler()
	}

	server := api.NewServer(
		api.Config{ListenAddr: listen},
		runtime.Pipeline,
		runtime.Embedder,
		runtime.VectorDriver,
		mcpHandler,
		log,
	)

	errChan := make(chan error, 1)
	go func() {
		if err := server.Run(); err != nil {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()

	// Wait for interrupt signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		log.Info("received signal, shutting down", "signal", sig.String())
		return server.Shutdown()
	}
}
