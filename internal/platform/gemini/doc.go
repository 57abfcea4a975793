// Package gemini provides an implementation of the generation.Client interface
// that uses Google's Gemini API for generating posts.
//
// This package is an infrastructure adapter connecting the application to
// Google's external Gemini service through the google.golang.org/genai client
// library. A genai client is created per request from the request's
// credential, so no API key is held in process-wide state.
//
// Responses are mapped onto the generation error taxonomy:
//   - API errors with status 401/403 wrap generation.ErrInvalidConfig
//   - other API and network errors wrap generation.ErrTransport
//   - safety blocks wrap generation.ErrContentBlocked
//   - missing candidates or empty text wrap generation.ErrInvalidResponse
package gemini
