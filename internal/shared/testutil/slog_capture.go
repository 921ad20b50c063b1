// Package testutil provides shared test helpers, currently a capturing
// slog handler so tests can assert on the warnings a pipeline stage emits.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// LogRecord is one captured log record.
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// captureBuffer is the record store shared by a handler and everything
// derived from it via WithAttrs.
type captureBuffer struct {
	mu      sync.Mutex
	records []LogRecord
}

// CaptureHandler is a slog.Handler that buffers every record it receives.
// It is safe for concurrent use.
type CaptureHandler struct {
	buf  *captureBuffer
	base []slog.Attr
	t    *testing.T
}

// NewCaptureHandler creates a capturing handler. Records are echoed to the
// test log so failures show what was actually emitted.
func NewCaptureHandler(t *testing.T) *CaptureHandler {
	return &CaptureHandler{
		buf: &captureBuffer{},
		t:   t,
	}
}

// NewCaptureLogger returns a logger backed by a fresh capturing handler.
func NewCaptureLogger(t *testing.T) (*slog.Logger, *CaptureHandler) {
	handler := NewCaptureHandler(t)
	return slog.New(handler), handler
}

// Enabled captures all levels.
func (h *CaptureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle implements slog.Handler.
func (h *CaptureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, r.NumAttrs()+len(h.base))
	for _, a := range h.base {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	h.buf.mu.Lock()
	h.buf.records = append(h.buf.records, LogRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   attrs,
	})
	h.buf.mu.Unlock()

	if h.t != nil {
		h.t.Logf("[%s] %s %v", r.Level, r.Message, attrs)
	}
	return nil
}

// WithAttrs returns a handler that folds attrs into every captured record.
// All derived handlers write into the same buffer.
func (h *CaptureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	base := make([]slog.Attr, 0, len(h.base)+len(attrs))
	base = append(base, h.base...)
	base = append(base, attrs...)
	return &CaptureHandler{buf: h.buf, base: base, t: h.t}
}

// WithGroup is a no-op; grouped attrs are captured under their plain keys.
func (h *CaptureHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Records returns a copy of all captured records.
func (h *CaptureHandler) Records() []LogRecord {
	h.buf.mu.Lock()
	defer h.buf.mu.Unlock()

	out := make([]LogRecord, len(h.buf.records))
	copy(out, h.buf.records)
	return out
}

// RecordsAt returns the captured records of one level.
func (h *CaptureHandler) RecordsAt(level slog.Level) []LogRecord {
	var out []LogRecord
	for _, r := range h.Records() {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// HasMessage reports whether any record's message contains substr.
func (h *CaptureHandler) HasMessage(substr string) bool {
	for _, r := range h.Records() {
		if strings.Contains(r.Message, substr) {
			return true
		}
	}
	return false
}

// HasAttr reports whether any record carries the attribute key=value.
func (h *CaptureHandler) HasAttr(key string, value any) bool {
	for _, r := range h.Records() {
		if v, ok := r.Attrs[key]; ok && v == value {
			return true
		}
	}
	return false
}

// AssertWarned fails the test unless a warn-level record contains substr.
func AssertWarned(t *testing.T, handler *CaptureHandler, substr string) {
	t.Helper()

	for _, r := range handler.RecordsAt(slog.LevelWarn) {
		if strings.Contains(r.Message, substr) {
			return
		}
	}

	t.Errorf("expected warning containing %q, captured warnings:", substr)
	for _, r := range handler.RecordsAt(slog.LevelWarn) {
		t.Logf("  - %s %v", r.Message, r.Attrs)
	}
}
