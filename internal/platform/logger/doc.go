// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels, request-scoped loggers carried in a context, and a
// separate diagnostics channel for raw model output that is disabled by default.
package logger
