// Package generation provides the boundary between the application and hosted
// LLM services for content generation. The Client interface hides the
// provider (Groq or Gemini); Service orchestrates one generation request:
// it validates the credential, builds the prompt, performs a single blocking
// call through the Client and extracts the generated posts from the answer.
package generation
