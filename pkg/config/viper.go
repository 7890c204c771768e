package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/dotdir"
)

// InitViper creates and returns a configured *viper.Viper.
// It sets defaults from NewDefaultConfig(), reads the config.toml file
// (if found via dotdir resolution), and binds environment variables
// with the DATAAGENT_ prefix.
//
// Config precedence (highest to lowest):
//  1. CLI flags (once bound by the command)
//  2. Environment variables (DATAAGENT_WAREHOUSE_ACCOUNT, DATAAGENT_ORACLE_MODEL, etc.)
//  3. config.toml file values
//  4. Defaults from NewDefaultConfig()
func InitViper(configDir string) (*viper.Viper, error) {
	v := viper.New()

	setViperDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("toml")

	ddm := dotdir.NewManager()
	target, err := ddm.Target(configDir)
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}

	if target != "" {
		v.AddConfigPath(target)
	}

	if err := v.ReadInConfig(); err != nil {
		// Config file not found errors are fine, defaults will apply.
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("DATAAGENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// FromViper builds an immutable Config from the resolved viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Version: v.GetInt("version"),
		Warehouse: WarehouseConfig{
			Provider:  v.GetString("warehouse.provider"),
			Account:   v.GetString("warehouse.account"),
			User:      v.GetString("warehouse.user"),
			Password:  v.GetString("warehouse.password"),
			Role:      v.GetString("warehouse.role"),
			Warehouse: v.GetString("warehouse.warehouse"),
			Database:  v.GetString("warehouse.database"),
			Schema:    v.GetString("warehouse.schema"),
			DSN:       v.GetString("warehouse.dsn"),
		},
		Oracle: OracleConfig{
			Provider: v.GetString("oracle.provider"),
			Target:   v.GetString("oracle.target"),
			Model:    v.GetString("oracle.model"),
			Token:    v.GetString("oracle.token"),
		},
		Embedding: EmbeddingConfig{
			Provider:   v.GetString("embedding.provider"),
			Target:     v.GetString("embedding.target"),
			Model:      v.GetString("embedding.model"),
			Dimensions: v.GetUint("embedding.dimensions"),
		},
		VectorStore: VectorStoreConfig{
			Provider:   v.GetString("vector_store.provider"),
			Target:     v.GetString("vector_store.target"),
			Path:       v.GetString("vector_store.path"),
			Collection: v.GetString("vector_store.collection"),
		},
		Retrieval: RetrievalConfig{
			TopK: v.GetInt("retrieval.top_k"),
		},
		API: APIConfig{
			Listen: v.GetString("api.listen"),
		},
		Events: EventsConfig{
			Brokers: v.GetString("events.brokers"),
			Topic:   v.GetString("events.topic"),
		},
	}
}

// setViperDefaults registers defaults from NewDefaultConfig() into viper
// using dotted-key notation. This keeps defaults.go as the single source of truth.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)

	// Warehouse
	v.SetDefault("warehouse.provider", d.Warehouse.Provider)
	v.SetDefault("warehouse.account", d.Warehouse.Account)
	v.SetDefault("warehouse.user", d.Warehouse.User)
	v.SetDefault("warehouse.password", d.Warehouse.Password)
	v.SetDefault("warehouse.role", d.Warehouse.Role)
	v.SetDefault("warehouse.warehouse", d.Warehouse.Warehouse)
	v.SetDefault("warehouse.database", d.Warehouse.Database)
	v.SetDefault("warehouse.schema", d.Warehouse.Schema)
	v.SetDefault("warehouse.dsn", d.Warehouse.DSN)

	// Oracle
	v.SetDefault("oracle.provider", d.Oracle.Provider)
	v.SetDefault("oracle.target", d.Oracle.Target)
	v.SetDefault("oracle.model", d.Oracle.Model)
	v.SetDefault("oracle.token", d.Oracle.Token)

	// Embedding
	v.SetDefault("embedding.provider", d.Embedding.Provider)
	v.SetDefault("embedding.target", d.Embedding.Target)
	v.SetDefault("embedding.model", d.Embedding.Model)
	v.SetDefault("embedding.dimensions", d.Embedding.Dimensions)

	// Vector store
	v.SetDefault("vector_store.provider", d.VectorStore.Provider)
	v.SetDefault("vector_store.target", d.VectorStore.Target)
	v.SetDefault("vector_store.path", d.VectorStore.Path)
	v.SetDefault("vector_store.collection", d.VectorStore.Collection)

	// Retrieval
	v.SetDefault("retrieval.top_k", d.Retrieval.TopK)

	// API
	v.SetDefault("api.listen", d.API.Listen)

	// Events
	v.SetDefault("events.brokers", d.Events.Brokers)
	v.SetDefault("events.topic", d.Events.Topic)
}
