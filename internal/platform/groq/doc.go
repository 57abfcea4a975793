// Package groq implements generation.Client against Groq's OpenAI-compatible
// chat completions API using the openai-go SDK. Any other OpenAI-compatible
// endpoint can be used by configuring a different base URL.
//
// The user's credential travels with each request; the package never reads
// or writes process environment for it. Requests are not retried.
package groq
