package cortex_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/oracle"
	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/oracle/cortex"
)

func TestCortex(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Cortex Oracle Suite")
}

var _ = Describe("Completer", func() {
	Describe("NewCompleter", func() {
		It("requires a base URL or account", func() {
			_, err := cortex.NewCompleter(cortex.Config{Token: "pat"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("base URL or account"))
		})

		It("requires a token", func() {
			_, err := cortex.NewCompleter(cortex.Config{Account: "myorg-myaccount"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("token"))
		})
	})

	Describe("Complete", func() {
		It("sends the prompt with temperature zero and a bearer token", func() {
			var gotAuth string
			var gotBody map[string]any

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				Expect(json.NewDecoder(r.Body).Decode(&gotBody)).To(Succeed())

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(map[string]any{
					"choices": []map[string]any{
						{"message": map[string]string{"role": "assistant", "content": "SQL"}},
					},
				})
			}))
			defer server.Close()

			completer, err := cortex.NewCompleter(cortex.Config{
				BaseURL: server.URL,
				Model:   "mistral-large",
				Token:   "pat-token",
			})
			Expect(err).NotTo(HaveOccurred())

			out, err := completer.Complete(context.Background(), "classify this")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("SQL"))

			Expect(gotAuth).To(Equal("Bearer pat-token"))
			Expect(gotBody["model"]).To(Equal("mistral-large"))
			Expect(gotBody["temperature"]).To(BeNumerically("==", 0))
			Expect(gotBody["stream"]).To(BeFalse())
		})

		It("wraps non-200 responses in ErrOracle", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
			}))
			defer server.Close()

			completer, err := cortex.NewCompleter(cortex.Config{BaseURL: server.URL, Token: "bad"})
			Expect(err).NotTo(HaveOccurred())

			_, err = completer.Complete(context.Background(), "hello")
			Expect(err).To(MatchError(oracle.ErrOracle))
		})

		It("wraps an empty choices list in ErrOracle", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"choices":[]}`))
			}))
			defer server.Close()

			completer, err := cortex.NewCompleter(cortex.Config{BaseURL: server.URL, Token: "pat"})
			Expect(err).NotTo(HaveOccurred())

			_, err = completer.Complete(context.Background(), "hello")
			Expect(err).To(MatchError(oracle.ErrOracle))
		})
	})
})
