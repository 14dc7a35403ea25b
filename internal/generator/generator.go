package generator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/semhq/campaigner/pkg/completion"
	"github.com/semhq/campaigner/pkg/logger"
	"github.com/semhq/campaigner/pkg/prompt"
)

// Service turns form input into prompts and prompts into drafts.
type Service struct {
	llm    completion.Completer
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service backed by llm.
func New(llm completion.Completer, opts ...Option) (*Service, error) {
	if llm == nil {
		return nil, ErrNilCompleter
	}
	s := &Service{llm: llm, logger: logger.NewNope()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GenerateEmail asks the model for an email body and pairs it with a synthesised subject.
// Completion failures are returned unchanged so callers can show them verbatim.
func (s *Service) GenerateEmail(ctx context.Context, req GenerationRequest) (EmailDraft, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return EmailDraft{}, ErrEmptyTopic
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = completion.EmailMaxTokens
	}
	if req.Temperature == 0 {
		req.Temperature = completion.DefaultTemperature
	}

	body, err := s.llm.Complete(ctx, prompt.BuildEmail(topic, req.Kind, req.Tone), req.MaxTokens, req.Temperature)
	if err != nil {
		s.logger.WarnContext(ctx, "email generation failed",
			slog.String("kind", string(req.Kind)),
			slog.String("error", err.Error()),
		)
		return EmailDraft{}, err
	}

	s.logger.InfoContext(ctx, "email generated",
		slog.String("kind", string(req.Kind)),
		slog.String("tone", string(req.Tone)),
		slog.Int("length", len(body)),
	)

	return EmailDraft{
		Subject: prompt.EmailSubject(req.Kind, topic),
		Body:    body,
		Kind:    req.Kind,
		Topic:   topic,
	}, nil
}

// GenerateHashtags asks the model for a description and hashtags and splits the answer.
func (s *Service) GenerateHashtags(ctx context.Context, req HashtagRequest) (HashtagDescriptionResult, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return HashtagDescriptionResult{}, ErrEmptyCategory
	}

	p := prompt.BuildHashtag(category, req.Audience, req.Platform, req.Tone, req.Purpose)
	text, err := s.llm.Complete(ctx, p, completion.HashtagMaxTokens, completion.DefaultTemperature)
	if err != nil {
		s.logger.WarnContext(ctx, "hashtag generation failed",
			slog.String("platform", string(req.Platform)),
			slog.String("error", err.Error()),
		)
		return HashtagDescriptionResult{}, err
	}

	s.logger.InfoContext(ctx, "hashtags generated", slog.String("platform", string(req.Platform)))
	return ParseHashtagResult(text), nil
}
