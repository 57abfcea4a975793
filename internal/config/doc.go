// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, .env and YAML files). It
// provides type-safe access to application settings needed by different
// components while keeping configuration details separate from business logic.
//
// Environment variables use the TWEETGEN_ prefix with "." replaced by "_",
// e.g. TWEETGEN_LLM_PROVIDER or TWEETGEN_SERVER_PORT.
package config
