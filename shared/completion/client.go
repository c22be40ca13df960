package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"creator-stack/shared/config"
)

// DefaultBaseURL is the OpenRouter chat-completions endpoint.
const DefaultBaseURL = "https://api.openrouter.ai/v1/chat/completions"

// requestTimeout bounds every completion call. There is no retry: one
// request, one response.
const requestTimeout = 60 * time.Second

// Request is a single completion call. Model, credential and temperature
// are fixed per provider; callers vary only the prompt and token cap.
type Request struct {
	Prompt    string
	MaxTokens int
}

// Provider issues one synchronous completion call per Complete invocation.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
}

// Client talks to an OpenRouter-compatible chat-completions endpoint.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	httpClient  *http.Client
}

func NewClient(cfg *config.CompletionConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	return &Client{
		baseURL:     baseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: temperature,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) Name() string { return "openrouter" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one user message and returns the first choice's text,
// trimmed of surrounding whitespace. Non-200 statuses surface as
// *UpstreamError, a 200 without the expected fields as
// *MalformedResponseError.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	body := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
		Temperature: c.temperature,
		MaxTokens:   req.MaxTokens,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", &MalformedResponseError{Missing: "choices"}
	}
	if parsed.Choices[0].Message.Content == nil {
		return "", &MalformedResponseError{Missing: "choices[0].message.content"}
	}

	return strings.TrimSpace(*parsed.Choices[0].Message.Content), nil
}

// NewProvider builds the configured provider. The OpenRouter-compatible
// client is the default; Gemini is the alternate.
func NewProvider(cfg *config.CompletionConfig) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGemini(cfg)
	default:
		return NewClient(cfg), nil
	}
}
