package config

const (
	defaultWarehouseProvider = "snowflake"

	defaultOracleProvider = "cortex"
	defaultOracleModel    = "mistral-large"

	defaultEmbeddingProvider   = "ollama"
	defaultEmbeddingTarget     = "http://localhost:11434"
	defaultEmbeddingModel      = "nomic-embed-text"
	defaultEmbeddingDimensions = 768

	defaultVectorProvider   = "sqlitevec"
	defaultVectorCollection = "handbook"

	defaultTopK = 3

	defaultAPIListen = ":8090"

	defaultEventsTopic = "dataagent.turns"
)

// NewDefaultConfig returns a Config with sane defaults for all fields.
// This is the single source of truth for default values.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Warehouse: WarehouseConfig{
			Provider: defaultWarehouseProvider,
		},
		Oracle: OracleConfig{
			Provider: defaultOracleProvider,
			Model:    defaultOracleModel,
		},
		Embedding: EmbeddingConfig{
			Provider:   defaultEmbeddingProvider,
			Target:     defaultEmbeddingTarget,
			Model:      defaultEmbeddingModel,
			Dimensions: defaultEmbeddingDimensions,
		},
		VectorStore: VectorStoreConfig{
			Provider:   defaultVectorProvider,
			Collection: defaultVectorCollection,
		},
		Retrieval: RetrievalConfig{
			TopK: defaultTopK,
		},
		API: APIConfig{
			Listen: defaultAPIListen,
		},
		Events: EventsConfig{
			Topic: defaultEventsTopic,
		},
	}
}
