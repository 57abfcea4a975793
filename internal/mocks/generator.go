package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/tweetgen/internal/domain"
	"github.com/phrazzld/tweetgen/internal/generation"
)

// MockClient implements generation.Client for testing
type MockClient struct {
	// CompleteFn allows test cases to mock the Complete behavior
	CompleteFn func(ctx context.Context, req domain.GenerationRequest, prompt string) (string, error)

	// Default response values
	Response string
	Err      error

	// Call tracking for verification
	CompleteCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Complete was called
		Count int

		// Prompts contains all prompts passed to Complete calls
		Prompts []string

		// Requests contains all requests passed to Complete calls
		Requests []domain.GenerationRequest
	}
}

// Complete implements the generation.Client interface
func (m *MockClient) Complete(ctx context.Context, req domain.GenerationRequest, prompt string) (string, error) {
	m.CompleteCalls.mu.Lock()
	m.CompleteCalls.Count++
	m.CompleteCalls.Prompts = append(m.CompleteCalls.Prompts, prompt)
	m.CompleteCalls.Requests = append(m.CompleteCalls.Requests, req)
	m.CompleteCalls.mu.Unlock()

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, req, prompt)
	}

	return m.Response, m.Err
}

// Calls returns the number of Complete calls made so far.
func (m *MockClient) Calls() int {
	m.CompleteCalls.mu.Lock()
	defer m.CompleteCalls.mu.Unlock()
	return m.CompleteCalls.Count
}

// NewMockClientWithResponse creates a MockClient that returns raw as the model answer
func NewMockClientWithResponse(raw string) *MockClient {
	return &MockClient{Response: raw}
}

// NewMockClientWithError creates a MockClient that returns the specified error
func NewMockClientWithError(err error) *MockClient {
	return &MockClient{Err: err}
}

// NewMockClientWithDefaultTweets creates a MockClient answering with three numbered tweets
func NewMockClientWithDefaultTweets() *MockClient {
	return &MockClient{
		Response: "Here are your tweets:\n\n" +
			"Tweet 1: $BTC just flipped resistance into support. Stay ready. 🚀\n" +
			"Tweet 2: AI agents are eating infra. Position before the crowd.\n" +
			"Tweet 3: Volatility is the price of admission. Pay it.\n",
	}
}

// MockClientThatFails creates a MockClient that simulates a transport failure
func MockClientThatFails() *MockClient {
	return &MockClient{Err: generation.ErrTransport}
}

// MockClientWithContentBlocked creates a MockClient that simulates content being blocked
func MockClientWithContentBlocked() *MockClient {
	return &MockClient{Err: generation.ErrContentBlocked}
}

// Reset resets the call tracking state
func (m *MockClient) Reset() {
	m.CompleteCalls.mu.Lock()
	defer m.CompleteCalls.mu.Unlock()

	m.CompleteCalls.Count = 0
	m.CompleteCalls.Prompts = nil
	m.CompleteCalls.Requests = nil
}
