package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent data agent configuration stored as
// config.toml in the .dataagent/ directory. The TOML layout uses sections
// for logical grouping. The struct is constructed once at startup and passed
// by reference into each component; nothing mutates it afterwards.
type Config struct {
	Version     int               `toml:"version"`
	Warehouse   WarehouseConfig   `toml:"warehouse"`
	Oracle      OracleConfig      `toml:"oracle"`
	Embedding   EmbeddingConfig   `toml:"embedding"`
	VectorStore VectorStoreConfig `toml:"vector_store"`
	Retrieval   RetrievalConfig   `toml:"retrieval"`
	API         APIConfig         `toml:"api"`
	Events      EventsConfig      `toml:"events"`
}

// WarehouseConfig holds connection settings for the tabular store the SQL
// tool queries. The snowflake provider uses the named connection parameters;
// the postgres provider uses DSN.
type WarehouseConfig struct {
	Provider  string `toml:"provider,omitempty"`
	Account   string `toml:"account,omitempty"`
	User      string `toml:"user,omitempty"`
	Password  string `toml:"password,omitempty"`
	Role      string `toml:"role,omitempty"`
	Warehouse string `toml:"warehouse,omitempty"`
	Database  string `toml:"database,omitempty"`
	Schema    string `toml:"schema,omitempty"`
	DSN       string `toml:"dsn,omitempty"`
}

// OracleConfig holds text completion oracle settings.
type OracleConfig struct {
	Provider string `toml:"provider,omitempty"`
	Target   string `toml:"target,omitempty"`
	Model    string `toml:"model,omitempty"`
	Token    string `toml:"token,omitempty"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	Provider   string `toml:"provider,omitempty"`
	Target     string `toml:"target,omitempty"`
	Model      string `toml:"model,omitempty"`
	Dimensions uint   `toml:"dimensions,omitempty"`
}

// VectorStoreConfig holds document chunk store settings.
type VectorStoreConfig struct {
	Provider   string `toml:"provider,omitempty"`
	Target     string `toml:"target,omitempty"`
	Path       string `toml:"path,omitempty"`
	Collection string `toml:"collection,omitempty"`
}

// RetrievalConfig holds similarity search settings.
type RetrievalConfig struct {
	TopK int `toml:"top_k,omitempty"`
}

// APIConfig holds API server settings.
type APIConfig struct {
	Listen string `toml:"listen,omitempty"`
}

// EventsConfig holds audit event stream settings. When Brokers is empty the
// nop publisher is used.
type EventsConfig struct {
	Brokers string `toml:"brokers,omitempty"`
	Topic   string `toml:"topic,omitempty"`
}

// Validate checks that the configuration is complete enough to start the
// agent. Missing required parameters are a startup-time fault, never a
// per-request one.
func (c *Config) Validate() error {
	switch c.Warehouse.Provider {
	case "snowflake":
		required := map[string]string{
			"warehouse.account":   c.Warehouse.Account,
			"warehouse.user":      c.Warehouse.User,
			"warehouse.password":  c.Warehouse.Password,
			"warehouse.role":      c.Warehouse.Role,
			"warehouse.warehouse": c.Warehouse.Warehouse,
			"warehouse.database":  c.Warehouse.Database,
			"warehouse.schema":    c.Warehouse.Schema,
		}
		for key, val := range required {
			if val == "" {
				return fmt.Errorf("missing required config %s for snowflake warehouse", key)
			}
		}
	case "postgres":
		if c.Warehouse.DSN == "" {
			return fmt.Errorf("missing required config warehouse.dsn for postgres warehouse")
		}
	default:
		return fmt.Errorf("unknown warehouse provider %q", c.Warehouse.Provider)
	}

	if c.Oracle.Model == "" {
		return fmt.Errorf("missing required config oracle.model")
	}

	switch c.Oracle.Provider {
	case "cortex":
		if c.Oracle.Target == "" && c.Warehouse.Account == "" {
			return fmt.Errorf("cortex oracle requires oracle.target or warehouse.account")
		}
		if c.Oracle.Token == "" {
			return fmt.Errorf("missing required config oracle.token for cortex oracle")
		}
	case "ollama":
		if c.Oracle.Target == "" {
			return fmt.Errorf("missing required config oracle.target for ollama oracle")
		}
	default:
		return fmt.Errorf("unknown oracle provider %q", c.Oracle.Provider)
	}

	return nil
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"warehouse.provider": {
		get: func(c *Config) string { return c.Warehouse.Provider },
		set: func(c *Config, v string) error { c.Warehouse.Provider = v; return nil },
	},
	"warehouse.account": {
		get: func(c *Config) string { return c.Warehouse.Account },
		set: func(c *Config, v string) error { c.Warehouse.Account = v; return nil },
	},
	"warehouse.user": {
		get: func(c *Config) string { return c.Warehouse.User },
		set: func(c *Config, v string) error { c.Warehouse.User = v; return nil },
	},
	"warehouse.password": {
		get: func(c *Config) string { return c.Warehouse.Password },
		set: func(c *Config, v string) error { c.Warehouse.Password = v; return nil },
	},
	"warehouse.role": {
		get: func(c *Config) string { return c.Warehouse.Role },
		set: func(c *Config, v string) error { c.Warehouse.Role = v; return nil },
	},
	"warehouse.warehouse": {
		get: func(c *Config) string { return c.Warehouse.Warehouse },
		set: func(c *Config, v string) error { c.Warehouse.Warehouse = v; return nil },
	},
	"warehouse.database": {
		get: func(c *Config) string { return c.Warehouse.Database },
		set: func(c *Config, v string) error { c.Warehouse.Database = v; return nil },
	},
	"warehouse.schema": {
		get: func(c *Config) string { return c.Warehouse.Schema },
		set: func(c *Config, v string) error { c.Warehouse.Schema = v; return nil },
	},
	"warehouse.dsn": {
		get: func(c *Config) string { return c.Warehouse.DSN },
		set: func(c *Config, v string) error { c.Warehouse.DSN = v; return nil },
	},
	"oracle.provider": {
		get: func(c *Config) string { return c.Oracle.Provider },
		set: func(c *Config, v string) error { c.Oracle.Provider = v; return nil },
	},
	"oracle.target": {
		get: func(c *Config) string { return c.Oracle.Target },
		set: func(c *Config, v string) error { c.Oracle.Target = v; return nil },
	},
	"oracle.model": {
		get: func(c *Config) string { return c.Oracle.Model },
		set: func(c *Config, v string) error { c.Oracle.Model = v; return nil },
	},
	"oracle.token": {
		get: func(c *Config) string { return c.Oracle.Token },
		set: func(c *Config, v string) error { c.Oracle.Token = v; return nil },
	},
	"embedding.provider": {
		get: func(c *Config) string { return c.Embedding.Provider },
		set: func(c *Config, v string) error { c.Embedding.Provider = v; return nil },
	},
	"embedding.target": {
		get: func(c *Config) string { return c.Embedding.Target },
		set: func(c *Config, v string) error { c.Embedding.Target = v; return nil },
	},
	"embedding.model": {
		get: func(c *Config) string { return c.Embedding.Model },
		set: func(c *Config, v string) error { c.Embedding.Model = v; return nil },
	},
	"embedding.dimensions": {
		get: func(c *Config) string {
			if c.Embedding.Dimensions == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(c.Embedding.Dimensions), 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for embedding.dimensions: %w", err)
			}
			c.Embedding.Dimensions = uint(n)
			return nil
		},
	},
	"vector_store.provider": {
		get: func(c *Config) string { return c.VectorStore.Provider },
		set: func(c *Config, v string) error { c.VectorStore.Provider = v; return nil },
	},
	"vector_store.target": {
		get: func(c *Config) string { return c.VectorStore.Target },
		set: func(c *Config, v string) error { c.VectorStore.Target = v; return nil },
	},
	"vector_store.path": {
		get: func(c *Config) string { return c.VectorStore.Path },
		set: func(c *Config, v string) error { c.VectorStore.Path = v; return nil },
	},
	"vector_store.collection": {
		get: func(c *Config) string { return c.VectorStore.Collection },
		set: func(c *Config, v string) error { c.VectorStore.Collection = v; return nil },
	},
	"retrieval.top_k": {
		get: func(c *Config) string { return strconv.Itoa(c.Retrieval.TopK) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid value for retrieval.top_k: %w", err)
			}
			c.Retrieval.TopK = n
			return nil
		},
	},
	"api.listen": {
		get: func(c *Config) string { return c.API.Listen },
		set: func(c *Config, v string) error { c.API.Listen = v; return nil },
	},
	"events.brokers": {
		get: func(c *Config) string { return c.Events.Brokers },
		set: func(c *Config, v string) error { c.Events.Brokers = v; return nil },
	},
	"events.topic": {
		get: func(c *Config) string { return c.Events.Topic },
		set: func(c *Config, v string) error { c.Events.Topic = v; return nil },
	},
}
