package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/agent"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/logger"
	testutils "github.com/harshitMehrag/snowflake-langgraph-agent/pkg/utils/test"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/vector"
)

func TestAPI(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Suite")
}

// noopTool satisfies tools.Tool for handlers that never reach a tool.
type noopTool struct{ output string }

func (t *noopTool) Run(_ context.Context, _ string) string { return t.output }

var _ = Describe("Server", func() {
	var (
		server    *Server
		completer *testutils.MockCompleter
		embedder  *testutils.MockEmbedder
		driver    *testutils.MockVectorDriver
	)

	BeforeEach(func() {
		completer = testutils.NewMockCompleter()
		embedder = testutils.NewMockEmbedder()
		driver = testutils.NewMockVectorDriver()

		log := logger.Nop()
		pipeline := agent.NewPipeline(
			agent.NewRouter(completer, log),
			agent.NewExecutor(completer, &noopTool{output: "table"}, &noopTool{output: "chunk"}, log),
			agent.NewSynthesizer(completer, log),
			testutils.NewMockPublisher(),
			log,
		)

		server = NewServer(Config{ListenAddr: ":0"}, pipeline, embedder, driver, nil, log)
	})

	AfterEach(func() {
		server.Shutdown()
	})

	Describe("GET /ping", func() {
		It("responds with pong", func() {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})
	})

	Describe("POST /v1/invoke", func() {
		invoke := func(body any) *http.Response {
			payload, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())

			req := httptest.NewRequest(http.MethodPost, "/v1/invoke", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")

			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			return resp
		}

		It("answers the newest user message", func() {
			completer.Responses["You are a classifier"] = "CHAT"
			completer.Responses["Answer the user question"] = "Hello!"

			resp := invoke(InvokeRequest{History: []agent.Message{
				{Role: agent.RoleUser, Content: "hi"},
			}})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var out InvokeResponse
			Expect(json.NewDecoder(resp.Body).Decode(&out)).To(Succeed())
			Expect(out.History).To(HaveLen(2))
			Expect(out.History[1].Role).To(Equal(agent.RoleAssistant))
			Expect(out.Answer).To(Equal("Hello!"))
			Expect(out.Decision).To(Equal("CHAT"))
		})

		It("rejects an empty history", func() {
			resp := invoke(InvokeRequest{})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("rejects a history not ending with a user message", func() {
			resp := invoke(InvokeRequest{History: []agent.Message{
				{Role: agent.RoleAssistant, Content: "hello"},
			}})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("surfaces oracle faults as a generic bad gateway", func() {
			completer.Err = errors.New("oracle unreachable")

			resp := invoke(InvokeRequest{History: []agent.Message{
				{Role: agent.RoleUser, Content: "hi"},
			}})
			Expect(resp.StatusCode).To(Equal(http.StatusBadGateway))

			var out ErrorResponse
			Expect(json.NewDecoder(resp.Body).Decode(&out)).To(Succeed())
			Expect(out.Error).NotTo(ContainSubstring("oracle unreachable"))
		})
	})

	Describe("GET /v1/search", func() {
		It("requires a query parameter", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/search", nil)
			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})

		It("returns ranked chunks", func() {
			driver.Results = []vector.QueryResult{
				{Document: vector.Document{ID: "c1", Text: "Refunds within 30 days."}, Score: 0.9},
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/search?query=refunds", nil)
			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			var out SearchResponse
			Expect(json.NewDecoder(resp.Body).Decode(&out)).To(Succeed())
			Expect(out.Count).To(Equal(1))
			Expect(out.Results[0].Text).To(Equal("Refunds within 30 days."))
		})

		It("rejects a non-positive top_k", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/search?query=x&top_k=0", nil)
			resp, err := server.app.Test(req)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
		})
	})
})
