package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"quizbot/internal/config"
	"quizbot/internal/domain"
	"quizbot/internal/logger"

	"go.uber.org/zap"
)

const defaultTimeout = 30 * time.Second

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

// Client sends prompts to an OpenAI-compatible chat-completion endpoint and
// returns the raw response body. It performs exactly one outbound call per
// invocation: no retries, no caching.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a completion client from configuration. httpClient may
// be nil, in which case a client with the configured timeout is used.
func NewClient(cfg config.LLMConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: httpClient,
	}
}

// Complete implements domain.CompletionClient.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", domain.NewInternalError("failed to encode completion request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", domain.NewInternalError("failed to build completion request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Get().Error("Completion request failed", zap.Error(err))
		return "", domain.NewUpstreamUnavailableError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewUpstreamUnavailableError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Get().Error("Completion endpoint returned non-2xx status",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return "", domain.NewUpstreamUnavailableError(
			fmt.Errorf("completion endpoint returned status %d", resp.StatusCode))
	}

	if strings.TrimSpace(string(body)) == "" {
		return "", domain.NewEmptyUpstreamResponseError()
	}

	return string(body), nil
}

var _ domain.CompletionClient = (*Client)(nil)
