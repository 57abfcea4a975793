package generation

import (
	"context"

	"github.com/phrazzld/tweetgen/internal/domain"
)

// Client defines the interface for obtaining a raw completion from a hosted
// language model. Implementations perform exactly one synchronous request per
// call and never retry.
type Client interface {
	// Complete sends prompt with the model and sampling parameters of req and
	// returns the model's raw text output.
	//
	// Errors wrap ErrInvalidConfig for a missing or rejected credential,
	// ErrTransport for network and endpoint failures, ErrInvalidResponse for
	// malformed or empty answers and ErrContentBlocked for safety blocks.
	Complete(ctx context.Context, req domain.GenerationRequest, prompt string) (string, error)
}

// ClientFunc adapts an ordinary function to the Client interface.
type ClientFunc func(ctx context.Context, req domain.GenerationRequest, prompt string) (string, error)

// Complete calls f.
func (f ClientFunc) Complete(ctx context.Context, req domain.GenerationRequest, prompt string) (string, error) {
	return f(ctx, req, prompt)
}
