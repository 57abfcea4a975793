package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/tweetgen/internal/config"
	"github.com/phrazzld/tweetgen/internal/domain"
	"github.com/phrazzld/tweetgen/internal/generation"
	"google.golang.org/genai"
)

// GeminiClient implements the generation.Client interface using Google's Gemini API.
type GeminiClient struct {
	// logger is used for structured logging
	logger *slog.Logger

	// baseURL optionally overrides the Gemini endpoint
	baseURL string

	// httpClient is shared by the per-request genai clients
	httpClient *http.Client
}

// NewGeminiClient creates a new instance of GeminiClient.
//
// Parameters:
//   - logger: A structured logger for operation logging
//   - config: LLM configuration; only BaseURL and TimeoutSeconds are used
//
// Returns:
//   - A properly initialized GeminiClient or an error if initialization fails
func NewGeminiClient(logger *slog.Logger, config config.LLMConfig) (*GeminiClient, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &GeminiClient{
		logger:  logger,
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// Complete sends prompt to the Gemini model named in req and returns the
// concatenated text of the first candidate.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - req: Credential, model and sampling parameters
//   - prompt: The full prompt text
//
// Returns:
//   - The raw text answer
//   - An error wrapping one of the generation package errors
func (g *GeminiClient) Complete(ctx context.Context, req domain.GenerationRequest, prompt string) (string, error) {
	if strings.TrimSpace(req.Credential) == "" {
		return "", fmt.Errorf("%w: %w", generation.ErrInvalidConfig, domain.ErrMissingCredential)
	}
	if prompt == "" {
		return "", fmt.Errorf("%w: %w", generation.ErrInvalidConfig, ErrEmptyPrompt)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     req.Credential,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpClient,
	}
	if g.baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", req.Model,
		"prompt_length", len(prompt))

	resp, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Params.Temperature),
		TopP:            genai.Ptr(req.Params.TopP),
		MaxOutputTokens: req.Params.MaxTokens,
	})
	if err != nil {
		return "", mapError(err)
	}

	text, err := responseText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Unusable Gemini response", "error", err)
		return "", err
	}

	g.logger.DebugContext(ctx, "Gemini API call successful",
		"response_length", len(text))

	return text, nil
}

// responseText validates resp and joins the text parts of its first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}

	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty text in response", generation.ErrInvalidResponse)
	}

	return text, nil
}

// mapError classifies genai errors into the generation error taxonomy.
func mapError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w (status %d)", generation.ErrInvalidConfig, generation.ErrCredentialRejected, apiErr.Code)
		default:
			return fmt.Errorf("%w: status %d: %s", generation.ErrTransport, apiErr.Code, apiErr.Message)
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", generation.ErrTransport, err)
	}

	return fmt.Errorf("%w: %v", generation.ErrTransport, err)
}
