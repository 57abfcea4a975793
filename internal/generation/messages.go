package generation

import (
	"errors"
	"strings"

	"github.com/phrazzld/tweetgen/internal/domain"
	"github.com/phrazzld/tweetgen/internal/redact"
)

// EmptyResultMessage is shown when the model answered but no posts could be
// extracted from the answer.
const EmptyResultMessage = "No tweets were generated. Please check the API key and try again."

// UserMessage returns the message shown to a user for a failed generation.
// Underlying details are redacted before they become part of the message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return "Please enter an API key"
	case errors.Is(err, domain.ErrNoExamples):
		return "Please enter at least one example tweet"
	case errors.Is(err, ErrCredentialRejected):
		return "The API key was rejected by the language model service"
	case errors.Is(err, ErrInvalidConfig):
		return "The request could not be sent: " + detail(err, ErrInvalidConfig)
	case errors.Is(err, ErrContentBlocked):
		return "The language model blocked this request"
	case errors.Is(err, ErrTransport):
		return "The language model request failed: " + detail(err, ErrTransport)
	case errors.Is(err, ErrInvalidResponse):
		return "The language model request failed: " + detail(err, ErrInvalidResponse)
	default:
		return "An unexpected error occurred"
	}
}

// detail returns the part of err's message after sentinel, redacted.
func detail(err error, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		msg = msg[i+len(prefix):]
	} else {
		msg = sentinel.Error()
	}
	return redact.String(msg)
}
