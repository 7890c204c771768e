package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/oracle"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/oracle/ollama"
)

func TestOllama(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Ollama Oracle Suite")
}

var _ = Describe("Completer", func() {
	It("returns the generated text", func() {
		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(r.URL.Path).To(Equal("/api/generate"))
			Expect(json.NewDecoder(r.Body).Decode(&gotBody)).To(Succeed())

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"response":"CHAT","done":true}`))
		}))
		defer server.Close()

		completer, err := ollama.NewCompleter(ollama.Config{BaseURL: server.URL, Model: "llama3.2"})
		Expect(err).NotTo(HaveOccurred())

		out, err := completer.Complete(context.Background(), "hi there")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("CHAT"))

		Expect(gotBody["model"]).To(Equal("llama3.2"))
		Expect(gotBody["stream"]).To(BeFalse())
		opts, ok := gotBody["options"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(opts["temperature"]).To(BeNumerically("==", 0))
	})

	It("wraps transport failures in ErrOracle", func() {
		completer, err := ollama.NewCompleter(ollama.Config{BaseURL: "http://127.0.0.1:1"})
		Expect(err).NotTo(HaveOccurred())

		_, err = completer.Complete(context.Background(), "hi")
		Expect(err).To(MatchError(oracle.ErrOracle))
	})

	It("applies defaults when config is empty", func() {
		completer, err := ollama.NewCompleter(ollama.Config{})
		Expect(err).NotTo(HaveOccurred())
		Expect(completer).NotTo(BeNil())
		Expect(completer.Close()).To(Succeed())
	})
})
