package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// TestLogBuffer is a thread-safe buffer for capturing JSON log output in tests.
type TestLogBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write implements io.Writer for TestLogBuffer.
func (b *TestLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns the buffer contents as a string.
func (b *TestLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// GetLogEntries parses the buffer contents, one JSON record per line.
func (b *TestLogBuffer) GetLogEntries() ([]map[string]interface{}, error) {
	var entries []map[string]interface{}
	for _, line := range strings.Split(b.String(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// FindLogEntry returns the first record whose message is msg, or nil.
func (b *TestLogBuffer) FindLogEntry(msg string) (map[string]interface{}, error) {
	entries, err := b.GetLogEntries()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e[slog.MessageKey] == msg {
			return e, nil
		}
	}
	return nil, nil
}

// AssertLogContains fails the test unless the raw log output contains content.
func AssertLogContains(t *testing.T, logBuf *TestLogBuffer, content string) {
	t.Helper()

	if logs := logBuf.String(); !strings.Contains(logs, content) {
		t.Errorf("Expected log to contain %q.\nLogs:\n%s", content, logs)
	}
}

// AssertLogOmits fails the test if the raw log output contains content.
// Redaction tests use it to check that secrets never reach the log.
func AssertLogOmits(t *testing.T, logBuf *TestLogBuffer, content string) {
	t.Helper()

	if logs := logBuf.String(); strings.Contains(logs, content) {
		t.Errorf("Expected log not to contain %q.\nLogs:\n%s", content, logs)
	}
}

// AssertLogField fails the test unless the record with message msg carries
// field with the expected value. JSON numbers decode as float64.
func AssertLogField(t *testing.T, logBuf *TestLogBuffer, msg, field string, expected interface{}) {
	t.Helper()

	entry, err := logBuf.FindLogEntry(msg)
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if entry == nil {
		t.Fatalf("No log entry with message %q.\nLogs:\n%s", msg, logBuf.String())
	}

	value, ok := entry[field]
	if !ok {
		t.Errorf("Log entry %q has no field %q", msg, field)
		return
	}
	if value != expected {
		t.Errorf("Log entry %q field %q = %v, want %v", msg, field, value, expected)
	}
}

// GetTestLogger creates a debug-level JSON logger writing to a TestLogBuffer.
func GetTestLogger(t *testing.T) (*slog.Logger, *TestLogBuffer) {
	t.Helper()

	logBuf := &TestLogBuffer{}
	handler := slog.NewJSONHandler(logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), logBuf
}
