package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/noah-isme/edutrack-api/pkg/config"
)

// Client calls the external generative-text endpoint. The contract is a
// single JSON POST per invocation; retries and fallback wording are the
// caller's concern.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	logger     *zap.Logger
}

// NewClient constructs a Client from configuration.
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		logger:     logger,
	}
}

type generateRequest struct {
	Model    string `json:"model"`
	Contents string `json:"contents"`
}

type generateResponse struct {
	Text string `json:"text"`
}

// GenerateText sends one prompt and returns the generated text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("generative endpoint not configured")
	}
	body, err := json.Marshal(generateRequest{Model: c.model, Contents: prompt})
	if err != nil {
		return "", fmt.Errorf("encode generation request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generative endpoint: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generative endpoint returned status %d", resp.StatusCode)
	}
	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode generation response: %w", err)
	}
	return decoded.Text, nil
}
