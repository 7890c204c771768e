// Package ollama implements pkg/oracle's Completer against Ollama's
// generate API, for local development without a warehouse account.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/oracle"
)

const (
	// DefaultModel is the default local model.
	DefaultModel = "llama3.2"

	// DefaultBaseURL is the default Ollama API URL.
	DefaultBaseURL = "http://localhost:11434"
)

// Completer wraps Ollama's generate API.
type Completer struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Config holds configuration for the Ollama completer.
type Config struct {
	// BaseURL is the Ollama API URL (e.g., "http://localhost:11434").
	// Defaults to DefaultBaseURL if empty.
	BaseURL string

	// Model is the model to use. Defaults to DefaultModel if empty.
	Model string
}

// generateRequest is the request body for Ollama's generate API.
type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
}

// generateResponse is the non-streaming response from Ollama's generate API.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// NewCompleter creates a Completer using Ollama's generate API.
func NewCompleter(cfg Config) (*Completer, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Completer{
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

// Complete submits prompt and returns the completion text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Model:   c.model,
		Prompt:  prompt,
		Stream:  false,
		Options: generateOptions{Temperature: 0},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshaling request: %v", oracle.ErrOracle, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/generate", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", oracle.ErrOracle, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: sending request: %v", oracle.ErrOracle, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: ollama returned status %d: %s", oracle.ErrOracle, resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", oracle.ErrOracle, err)
	}

	return genResp.Response, nil
}

// Close releases resources held by the completer.
func (c *Completer) Close() error {
	return nil
}

// Ensure Completer implements oracle.Completer
var _ oracle.Completer = (*Completer)(nil)
