package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFromContext_AddsRequestAndSession(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)
	SetupWriter(&buf, "info", "json")

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	ctx = WithSession(ctx, "sess-7")

	FromContext(ctx).Info("search")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-42"`) {
		t.Errorf("log line missing request_id: %s", out)
	}
	if !strings.Contains(out, `"session_id":"sess-7"`) {
		t.Errorf("log line missing session_id: %s", out)
	}
}

func TestFromContext_Bare(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)
	SetupWriter(&buf, "info", "text")

	WithFields(context.Background(), "source", "records.xlsx").Info("loaded")

	out := buf.String()
	if strings.Contains(out, "request_id") || strings.Contains(out, "session_id") {
		t.Errorf("unexpected correlation fields: %s", out)
	}
	if !strings.Contains(out, "source=records.xlsx") {
		t.Errorf("log line missing field: %s", out)
	}
}

func TestLevelForStatus(t *testing.T) {
	tests := map[int]slog.Level{
		200: slog.LevelInfo,
		303: slog.LevelInfo,
		404: slog.LevelWarn,
		429: slog.LevelWarn,
		500: slog.LevelError,
		503: slog.LevelError,
	}
	for status, want := range tests {
		if got := LevelForStatus(status); got != want {
			t.Errorf("LevelForStatus(%d) = %v, want %v", status, got, want)
		}
	}
}
