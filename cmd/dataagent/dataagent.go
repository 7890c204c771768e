// Package dataagentcmder
package dataagentcmder

import (
	"github.com/spf13/cobra"

	askcmder "github.com/harshitMehrag/snowflake-langgraph-agent/cmd/dataagent/ask"
	chatcmder "github.com/harshitMehrag/snowflake-langgraph-agent/cmd/dataagent/chat"
	configcmder "github.com/harshitMehrag/snowflake-langgraph-agent/cmd/dataagent/config"
	ingestcmder "github.com/harshitMehrag/snowflake-langgraph-agent/cmd/dataagent/ingest"
	servecmder "github.com/harshitMehrag/snowflake-langgraph-agent/cmd/dataagent/serve"
	versioncmder "github.com/harshitMehrag/snowflake-langgraph-agent/cmd/version"
)

const dataagentLongDesc string = `Dataagent routes natural-language questions to your data.

Questions about policies, rules, or HR are answered from the policy
handbook via semantic search. Questions about sales, revenue, or numbers
are answered from the sales warehouse via generated SQL. Everything else
is answered directly.

Get started:
  dataagent ingest ./handbook    Index handbook documents
  dataagent ask "..."            Ask a single question
  dataagent chat                 Interactive chat session
  dataagent serve                Run the HTTP API and MCP server`

const dataagentShortDesc string = "Dataagent - route questions to sales data or the policy handbook"

func NewDataagentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataagent",
		Short: dataagentShortDesc,
		Long:  dataagentLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Directory containing config.toml (default: ./.dataagent or ~/.dataagent)")

	// Add subcommands
	cmd.AddCommand(askcmder.NewAskCmd())
	cmd.AddCommand(chatcmder.NewChatCmd())
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(ingestcmder.NewIngestCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
