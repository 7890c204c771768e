package mcp_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harshitMehrag/snowflake-langgraph-agent/api/mcp"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/agent"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/logger"
	testutils "github.com/harshitMehrag/snowflake-langgraph-agent/pkg/utils/test"
)

func TestMCP(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "MCP Suite")
}

type stubTool struct{ output string }

func (t *stubTool) Run(_ context.Context, _ string) string { return t.output }

func newTestPipeline(completer *testutils.MockCompleter) *agent.Pipeline {
	log := logger.Nop()
	return agent.NewPipeline(
		agent.NewRouter(completer, log),
		agent.NewExecutor(completer, &stubTool{output: "table"}, &stubTool{output: "chunk"}, log),
		agent.NewSynthesizer(completer, log),
		testutils.NewMockPublisher(),
		log,
	)
}

var _ = Describe("MCP Server", func() {
	var (
		server       *mcp.Server
		vectorDriver *testutils.MockVectorDriver
		embedder     *testutils.MockEmbedder
		completer    *testutils.MockCompleter
	)

	BeforeEach(func() {
		vectorDriver = testutils.NewMockVectorDriver()
		embedder = testutils.NewMockEmbedder()
		completer = testutils.NewMockCompleter()

		var err error
		server, err = mcp.NewServer(mcp.Config{
			Pipeline:     newTestPipeline(completer),
			VectorDriver: vectorDriver,
			Embedder:     embedder,
			Logger:       logger.Nop(),
		})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("NewServer", func() {
		It("returns an error when the pipeline is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				VectorDriver: vectorDriver,
				Embedder:     embedder,
				Logger:       logger.Nop(),
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("pipeline is required"))
		})

		It("returns an error when vector driver is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Pipeline: newTestPipeline(completer),
				Embedder: embedder,
				Logger:   logger.Nop(),
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("vector driver is required"))
		})

		It("returns an error when embedder is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Pipeline:     newTestPipeline(completer),
				VectorDriver: vectorDriver,
				Logger:       logger.Nop(),
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("embedder is required"))
		})

		It("returns an error when logger is nil", func() {
			_, err := mcp.NewServer(mcp.Config{
				Pipeline:     newTestPipeline(completer),
				VectorDriver: vectorDriver,
				Embedder:     embedder,
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("logger is required"))
		})

		It("builds a noop server without any dependencies", func() {
			noop, err := mcp.NewServer(mcp.Config{Noop: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(noop).NotTo(BeNil())
		})

		It("exposes an HTTP handler", func() {
			Expect(server.Handler()).NotTo(BeNil())
		})
	})
})
