// Package cortex implements pkg/oracle's Completer against the Snowflake
// Cortex REST inference API.
package cortex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/harshitMehrag/snowflake-langgraph-agent/pkg/oracle"
)

const (
	// DefaultModel is the default Cortex model. mistral-large and llama3-70b
	// follow routing instructions best.
	DefaultModel = "mistral-large"

	completePath = "/api/v2/cortex/inference:complete"
)

// Completer wraps the Cortex complete endpoint.
type Completer struct {
	baseURL    string
	model      string
	token      string
	httpClient *http.Client
}

// Config holds configuration for the Cortex completer.
type Config struct {
	// BaseURL is the account URL, e.g. "https://myorg-myaccount.snowflakecomputing.com".
	// Either BaseURL or Account must be set.
	BaseURL string

	// Account is the account identifier used to derive BaseURL when BaseURL
	// is empty (e.g. "myorg-myaccount").
	Account string

	// Model is the Cortex model name. Defaults to DefaultModel if empty.
	Model string

	// Token is a programmatic access token sent as a bearer credential.
	Token string
}

// request is the body for the Cortex complete endpoint. Temperature is
// pinned to zero; the field is always serialized.
type request struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	Stream      bool      `json:"stream"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type response struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// NewCompleter creates a Completer against the Cortex inference API.
func NewCompleter(c Config) (*Completer, error) {
	baseURL := c.BaseURL
	if baseURL == "" {
		if c.Account == "" {
			return nil, fmt.Errorf("cortex base URL or account is required")
		}
		baseURL = fmt.Sprintf("https://%s.snowflakecomputing.com", c.Account)
	}

	if c.Token == "" {
		return nil, fmt.Errorf("cortex token is required")
	}

	model := c.Model
	if model == "" {
		model = DefaultModel
	}

	return &Completer{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		token:   c.Token,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

// Complete submits prompt as a single user message and returns the
// completion text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := request{
		Model:       c.model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: 0,
		Stream:      false,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshaling request: %v", oracle.ErrOracle, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+completePath, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", oracle.ErrOracle, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: sending request: %v", oracle.ErrOracle, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: cortex returned status %d: %s", oracle.ErrOracle, resp.StatusCode, string(body))
	}

	var completeResp response
	if err := json.NewDecoder(resp.Body).Decode(&completeResp); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", oracle.ErrOracle, err)
	}

	if len(completeResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", oracle.ErrOracle)
	}

	return completeResp.Choices[0].Message.Content, nil
}

// Close releases resources held by the completer.
func (c *Completer) Close() error {
	return nil
}

// Ensure Completer implements oracle.Completer
var _ oracle.Completer = (*Completer)(nil)
