package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/semhq/campaigner/pkg/logger"
)

// Completer produces a completion for a single user prompt.
// Client and OpenAI both implement it.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
}

// Client calls an OpenAI-compatible chat-completion endpoint over plain HTTP.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	cfg        Config
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
// The default client has no timeout of its own.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client for the configured endpoint.
//
// Example:
//
//	client := completion.New(completion.Config{APIKey: os.Getenv("API_KEY")})
//	text, err := client.Complete(ctx, prompt, completion.EmailMaxTokens, completion.DefaultTemperature)
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg.withDefaults(),
		httpClient: &http.Client{},
		logger:     logger.NewNope(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

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
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one chat-completion request and returns the trimmed content
// of the first choice. Every failure is reported as *Error; the call is never
// retried.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	if c.cfg.APIKey == "" {
		return "", &Error{Err: ErrMissingAPIKey}
	}

	payload, err := json.Marshal(chatRequest{
		Model:       c.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", &Error{Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return "", &Error{Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "completion request failed",
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)),
		)
		return "", &Error{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{StatusCode: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "completion endpoint returned error",
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", time.Since(start)),
		)
		return "", &Error{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &Error{StatusCode: resp.StatusCode, Body: string(body), Err: errors.Join(ErrDecode, err)}
	}
	if len(out.Choices) == 0 {
		return "", &Error{StatusCode: resp.StatusCode, Body: string(body), Err: ErrEmptyChoices}
	}

	c.logger.DebugContext(ctx, "completion received",
		slog.Int("max_tokens", maxTokens),
		slog.Duration("duration", time.Since(start)),
	)

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
