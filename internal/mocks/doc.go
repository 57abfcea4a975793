// Package mocks provides MockClient, a hand-written generation.Client for
// tests. It returns a canned answer or error, or delegates to CompleteFn, and
// records every request and prompt it receives.
package mocks
