package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/bootstrap"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/config"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/logger"
)

func TestBootstrap(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Bootstrap Suite")
}

func localConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Warehouse.Provider = "postgres"
	cfg.Warehouse.DSN = "postgres://localhost:5432/sales"
	cfg.Oracle.Provider = "ollama"
	cfg.Oracle.Target = "http://localhost:11434"
	cfg.Oracle.Model = "llama3.2"
	cfg.Embedding.Provider = "ollama"
	cfg.Embedding.Target = "http://localhost:11434"
	cfg.VectorStore.Provider = "sqlitevec"
	cfg.VectorStore.Path = ":memory:"
	return cfg
}

var _ = Describe("New", func() {
	It("wires a full local runtime", func() {
		runtime, err := bootstrap.New(context.Background(), localConfig(), logger.Nop())
		Expect(err).NotTo(HaveOccurred())
		defer runtime.Close()

		Expect(runtime.Pipeline).NotTo(BeNil())
		Expect(runtime.Completer).NotTo(BeNil())
		Expect(runtime.Embedder).NotTo(BeNil())
		Expect(runtime.VectorDriver).NotTo(BeNil())
		Expect(runtime.Querier).NotTo(BeNil())
		Expect(runtime.Publisher).NotTo(BeNil())
	})

	It("defaults the handbook database into the .dataagent directory", func() {
		tmp := GinkgoT().TempDir()
		Expect(os.Mkdir(filepath.Join(tmp, ".dataagent"), 0o755)).To(Succeed())

		cwd, err := os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		Expect(os.Chdir(tmp)).To(Succeed())
		DeferCleanup(func() {
			Expect(os.Chdir(cwd)).To(Succeed())
		})

		cfg := localConfig()
		cfg.VectorStore.Path = ""

		runtime, err := bootstrap.New(context.Background(), cfg, logger.Nop())
		Expect(err).NotTo(HaveOccurred())
		defer runtime.Close()

		Expect(filepath.Join(tmp, ".dataagent", "handbook.db")).To(BeAnExistingFile())
	})

	It("rejects an invalid configuration", func() {
		cfg := localConfig()
		cfg.Warehouse.DSN = ""

		_, err := bootstrap.New(context.Background(), cfg, logger.Nop())
		Expect(err).To(HaveOccurred())
	})

	It("rejects an unknown vector store provider", func() {
		cfg := localConfig()
		cfg.VectorStore.Provider = "pinecone"

		_, err := bootstrap.New(context.Background(), cfg, logger.Nop())
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("vector store provider"))
	})
})
