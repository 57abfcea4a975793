package domain

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

// redactedCredential replaces the credential wherever a request is printed.
const redactedCredential = "[REDACTED_CREDENTIAL]"

var validate = validator.New()

// GenerationParams are the sampling parameters sent with every request.
type GenerationParams struct {
	// Temperature controls randomness of the sampled tokens.
	Temperature float32 `validate:"gte=0,lte=2"`

	// MaxTokens caps the length of the completion.
	MaxTokens int32 `validate:"gte=1,lte=32768"`

	// TopP is the nucleus sampling ratio.
	TopP float32 `validate:"gt=0,lte=1"`
}

// GenerationRequest holds everything a model client needs besides the prompt.
// The credential is passed explicitly with every request and is never kept in
// process-wide state.
type GenerationRequest struct {
	Credential string
	Model      string `validate:"required"`
	Params     GenerationParams
}

// Validate checks the request before any network call is made.
// A missing credential is reported as ErrMissingCredential so callers can
// distinguish it from other invalid fields.
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Credential) == "" {
		return NewValidationError("credential", "is required", ErrMissingCredential)
	}

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return nil
}

// String implements fmt.Stringer without exposing the credential.
func (r GenerationRequest) String() string {
	return fmt.Sprintf("GenerationRequest{Credential: %s, Model: %s, Temperature: %g, MaxTokens: %d, TopP: %g}",
		redactedCredential, r.Model, r.Params.Temperature, r.Params.MaxTokens, r.Params.TopP)
}

// LogValue implements slog.LogValuer so requests can be logged directly.
func (r GenerationRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("credential", redactedCredential),
		slog.String("model", r.Model),
		slog.Float64("temperature", float64(r.Params.Temperature)),
		slog.Int("max_tokens", int(r.Params.MaxTokens)),
		slog.Float64("top_p", float64(r.Params.TopP)),
	)
}
