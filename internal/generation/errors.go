package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate posts")

	// ErrInvalidConfig is returned when the request or client configuration is
	// unusable, including a missing or rejected credential. No retry will help.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrCredentialRejected is wrapped together with ErrInvalidConfig when the
	// model service refuses the API key.
	ErrCredentialRejected = errors.New("the API key was rejected")

	// ErrTransport is returned for network failures and non-success responses
	// from the model service.
	ErrTransport = errors.New("language model request failed")

	// ErrInvalidResponse is returned when the model service answers with a
	// malformed or empty response.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the provider blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")
)
