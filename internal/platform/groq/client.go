package groq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/phrazzld/tweetgen/internal/config"
	"github.com/phrazzld/tweetgen/internal/domain"
	"github.com/phrazzld/tweetgen/internal/generation"
)

// DefaultBaseURL is Groq's OpenAI-compatible API root.
const DefaultBaseURL = "https://api.groq.com/openai/v1/"

// finishReasonContentFilter is reported when the provider filtered the output.
const finishReasonContentFilter = "content_filter"

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	logger     *slog.Logger
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client from the LLM configuration. Only the base URL and
// timeout are taken from cfg; credential, model and sampling parameters come
// with every request.
func NewClient(logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &Client{
		logger:  logger,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// Complete implements generation.Client.
func (c *Client) Complete(ctx context.Context, req domain.GenerationRequest, prompt string) (string, error) {
	if strings.TrimSpace(req.Credential) == "" {
		return "", fmt.Errorf("%w: %w", generation.ErrInvalidConfig, domain.ErrMissingCredential)
	}

	client := openai.NewClient(
		option.WithAPIKey(req.Credential),
		option.WithBaseURL(c.baseURL),
		option.WithHTTPClient(c.httpClient),
		option.WithMaxRetries(0),
	)

	c.logger.DebugContext(ctx, "Sending chat completion request",
		"model", req.Model,
		"prompt_length", len(prompt))

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(float64(req.Params.Temperature)),
		MaxTokens:   openai.Int(int64(req.Params.MaxTokens)),
		TopP:        openai.Float(float64(req.Params.TopP)),
	})
	if err != nil {
		return "", mapError(err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", generation.ErrInvalidResponse)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == finishReasonContentFilter {
		return "", fmt.Errorf("%w: finish reason %s", generation.ErrContentBlocked, choice.FinishReason)
	}

	if strings.TrimSpace(choice.Message.Content) == "" {
		return "", fmt.Errorf("%w: empty completion", generation.ErrInvalidResponse)
	}

	c.logger.DebugContext(ctx, "Chat completion received",
		"model", resp.Model,
		"finish_reason", choice.FinishReason,
		"completion_tokens", resp.Usage.CompletionTokens)

	return choice.Message.Content, nil
}

// mapError classifies SDK errors into the generation error taxonomy.
func mapError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w (status %d)", generation.ErrInvalidConfig, generation.ErrCredentialRejected, apiErr.StatusCode)
		default:
			return fmt.Errorf("%w: status %d: %s", generation.ErrTransport, apiErr.StatusCode, apiMessage(apiErr))
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", generation.ErrTransport, err)
	}

	return fmt.Errorf("%w: %v", generation.ErrTransport, err)
}

func apiMessage(apiErr *openai.Error) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}
	return http.StatusText(apiErr.StatusCode)
}
