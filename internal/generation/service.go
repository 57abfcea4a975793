package generation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tweetgen/internal/domain"
)

// PromptBuilder renders the prompt for a list of example posts.
type PromptBuilder interface {
	Render(examples []string) (string, error)
}

// Extractor recovers generated posts from a raw model answer.
type Extractor interface {
	Extract(raw string) []string
}

// Input is one generation request as received from the presentation layer.
type Input struct {
	// Credential is the user's API key for the model service.
	Credential string

	// ExamplesText holds newline separated example posts. It is used when
	// Examples is empty.
	ExamplesText string

	// Examples holds the example posts as a list.
	Examples []string

	// Model optionally overrides the configured model.
	Model string
}

// Result is the outcome of a successful generation request.
type Result struct {
	RequestID uuid.UUID
	Model     string
	Items     []string
}

// Empty reports whether the model answered but no posts could be extracted.
// This is not a failure; callers should tell the user nothing was generated.
func (r *Result) Empty() bool {
	return len(r.Items) == 0
}

// Service orchestrates prompt building, the model call and extraction. It
// holds no per-request state and is safe for concurrent use.
type Service struct {
	builder     PromptBuilder
	client      Client
	extractor   Extractor
	logger      *slog.Logger
	diagnostics *slog.Logger

	model      string
	params     domain.GenerationParams
	credential string
}

// Option customizes a Service.
type Option func(*Service)

// WithDiagnostics sets the logger that receives raw model answers and the
// extracted items. Without it diagnostics are discarded.
func WithDiagnostics(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.diagnostics = l
		}
	}
}

// WithDefaultCredential sets a server-side credential used when the request
// does not carry one.
func WithDefaultCredential(credential string) Option {
	return func(s *Service) {
		s.credential = strings.TrimSpace(credential)
	}
}

// NewService creates a Service that calls model with params unless a request
// overrides the model.
func NewService(
	builder PromptBuilder,
	client Client,
	extractor Extractor,
	model string,
	params domain.GenerationParams,
	logger *slog.Logger,
	opts ...Option,
) (*Service, error) {
	if builder == nil {
		return nil, errors.New("prompt builder cannot be nil")
	}
	if client == nil {
		return nil, errors.New("client cannot be nil")
	}
	if extractor == nil {
		return nil, errors.New("extractor cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if model == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}

	s := &Service{
		builder:     builder,
		client:      client,
		extractor:   extractor,
		logger:      logger,
		diagnostics: slog.New(slog.NewTextHandler(io.Discard, nil)),
		model:       model,
		params:      params,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Generate performs one generation request.
//
// The credential is checked before anything else; a missing credential
// returns an error wrapping ErrInvalidConfig and domain.ErrMissingCredential
// without contacting the model service. Client errors are returned wrapped
// and unchanged in kind. An answer without any markers yields a Result whose
// Empty method reports true.
func (s *Service) Generate(ctx context.Context, in Input) (*Result, error) {
	requestID := uuid.New()
	log := s.logger.With("request_id", requestID.String())

	req := domain.GenerationRequest{
		Credential: strings.TrimSpace(in.Credential),
		Model:      s.model,
		Params:     s.params,
	}
	if req.Credential == "" {
		req.Credential = s.credential
	}
	if model := strings.TrimSpace(in.Model); model != "" {
		req.Model = model
	}

	if err := req.Validate(); err != nil {
		log.WarnContext(ctx, "Rejected generation request", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	examples := domain.CleanExamples(in.Examples)
	if len(examples) == 0 {
		examples = domain.ParseExamples(in.ExamplesText)
	}
	if len(examples) == 0 {
		log.WarnContext(ctx, "Rejected generation request", "error", domain.ErrNoExamples)
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, domain.ErrNoExamples)
	}

	prompt, err := s.builder.Render(examples)
	if err != nil {
		log.ErrorContext(ctx, "Failed to render prompt", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	log.InfoContext(ctx, "Calling language model",
		"request", req,
		"example_count", len(examples),
		"prompt_length", len(prompt))

	start := time.Now()
	raw, err := s.client.Complete(ctx, req, prompt)
	if err != nil {
		log.ErrorContext(ctx, "Language model call failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("generate posts: %w", err)
	}

	s.diagnostics.DebugContext(ctx, "Raw language model response",
		"request_id", requestID.String(),
		"response", raw)

	items := s.extractor.Extract(raw)

	s.diagnostics.DebugContext(ctx, "Extracted posts",
		"request_id", requestID.String(),
		"items", items)

	log.InfoContext(ctx, "Generation completed",
		"item_count", len(items),
		"response_length", len(raw),
		"duration_ms", time.Since(start).Milliseconds())

	return &Result{
		RequestID: requestID,
		Model:     req.Model,
		Items:     items,
	}, nil
}
