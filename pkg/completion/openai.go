package completion

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAI implements Completer with the official openai-go SDK.
// SDK retries are disabled so a call maps to exactly one request.
// On a non-2xx answer Error.Body holds the response body as received; the
// SDK's decoded error JSON is used only when that body cannot be read.
type OpenAI struct {
	client openai.Client
	model  string
}

// NewOpenAI creates an SDK-backed completer for the configured endpoint.
// Config.URL is the full chat-completions URL; the SDK base URL is derived from it.
func NewOpenAI(cfg Config, hc *http.Client) (*OpenAI, error) {
	cfg = cfg.withDefaults()
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL(cfg.URL)),
		option.WithMaxRetries(0),
	}
	if hc != nil {
		opts = append(opts, option.WithHTTPClient(hc))
	}

	return &OpenAI{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

// Complete sends one chat-completion request through the SDK.
func (o *OpenAI) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Messages:    []openai.ChatCompletionMessageParamUnion{openai.UserMessage(prompt)},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(int64(maxTokens)),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &Error{StatusCode: apiErr.StatusCode, Body: apiErrorBody(apiErr)}
		}
		return "", &Error{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &Error{StatusCode: http.StatusOK, Body: resp.RawJSON(), Err: ErrEmptyChoices}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func apiErrorBody(apiErr *openai.Error) string {
	if apiErr.Response != nil && apiErr.Response.Body != nil {
		if b, err := io.ReadAll(apiErr.Response.Body); err == nil && len(b) > 0 {
			return string(b)
		}
	}
	return apiErr.RawJSON()
}

// baseURL strips the chat-completions path so the SDK can append its own.
func baseURL(endpoint string) string {
	base := strings.TrimSuffix(endpoint, "/")
	base = strings.TrimSuffix(base, "/chat/completions")
	return base + "/"
}
