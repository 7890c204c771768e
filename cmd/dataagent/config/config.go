// Package configcmder provides the config command for managing persistent
// dataagent configuration stored in the .dataagent/ directory.
package configcmder

import (
	"github.com/spf13/cobra"
)

const configLongDesc string = `Manage persistent dataagent configuration.

Configuration is stored as config.toml in the .dataagent/ directory and
provides default values for command flags. Environment variables with the
DATAAGENT_ prefix and CLI flags always take precedence over config file
values.

Keys use dotted notation matching the TOML section structure:
  warehouse.provider, warehouse.account, warehouse.user, warehouse.password,
  warehouse.role, warehouse.warehouse, warehouse.database, warehouse.schema,
  warehouse.dsn,
  oracle.provider, oracle.target, oracle.model, oracle.token,
  embedding.provider, embedding.target, embedding.model, embedding.dimensions,
  vector_store.provider, vector_store.target, vector_store.path,
  vector_store.collection,
  retrieval.top_k, api.listen, events.brokers, events.topic

Use subcommands to get, set, or list configuration values:
  dataagent config set <key> <value>    Set a configuration value
  dataagent config get <key>            Get a configuration value
  dataagent config list                 List all configuration values

Examples:
  dataagent config set oracle.model mistral-large
  dataagent config set warehouse.account myorg-myaccount
  dataagent config get oracle.model
  dataagent config list`

const configShortDesc string = "Manage persistent dataagent configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}
