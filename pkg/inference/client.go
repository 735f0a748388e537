// Package inference provides a minimal client for hosted OpenAI-compatible
// chat-completion endpoints such as the Hugging Face inference router.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// Roles used in chat messages.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single role-tagged entry in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options carries the sampling parameters sent with each request.
type Options struct {
	Temperature float64
	TopP        float64
	MaxTokens   int
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	TopP        float64   `json:"top_p"`
	MaxTokens   int       `json:"max_tokens"`
	Stream      bool      `json:"stream"`
}

// Client issues chat-completion requests with a static bearer token.
// A Client is safe for reuse across sequential and concurrent calls.
type Client struct {
	baseURL    string
	model      string
	token      string
	httpClient *http.Client
}

// New creates a Client from cfg. An empty token yields ErrUnauthorized.
func New(cfg *Config) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: token required", ErrUnauthorized)
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: cfg.TimeoutDuration(),
		},
	}, nil
}

// Model returns the model identifier requests are addressed to.
func (c *Client) Model() string {
	return c.model
}

// Chat sends messages in a single non-streaming request and returns the
// content of the first choice.
func (c *Client) Chat(ctx context.Context, messages []Message, opts Options) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(body),
	)
	if err != nil {
		return "", fmt.Errorf("%w: create request: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", ErrRequestFailed, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w: status %d: %s", ErrUnauthorized, resp.StatusCode, errorMessage(data))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, errorMessage(data))
	}

	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("%w: response is not valid JSON", ErrRequestFailed)
	}

	if msg := gjson.GetBytes(data, "error"); msg.Exists() && msg.Type != gjson.Null {
		return "", fmt.Errorf("%w: %s", ErrRequestFailed, errorMessage(data))
	}

	content := gjson.GetBytes(data, "choices.0.message.content")
	if content.Type != gjson.String {
		return "", ErrEmptyResponse
	}

	return content.String(), nil
}

// errorMessage extracts a readable error from either {"error":"..."} or
// {"error":{"message":"..."}} bodies, falling back to the raw body.
func errorMessage(data []byte) string {
	if msg := gjson.GetBytes(data, "error.message"); msg.Exists() {
		return msg.String()
	}
	if msg := gjson.GetBytes(data, "error"); msg.Exists() && msg.Type == gjson.String {
		return msg.String()
	}
	return strings.TrimSpace(string(data))
}
