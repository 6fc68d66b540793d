package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConsoleLogger_WritesFieldsAndRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewConsole(LevelInfo, &buf)

	logger.Debug("hidden", "competition_id", 2021)
	logger.Info("building competition", "competition", "Premier League", "error", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "building competition") {
		t.Fatalf("expected message in output: %q", out)
	}
	if !strings.Contains(out, `"competition": "Premier League"`) {
		t.Fatalf("expected competition field in output: %q", out)
	}
	if !strings.Contains(out, `"error": "boom"`) {
		t.Fatalf("expected error field in output: %q", out)
	}
	if !strings.Contains(out, "logging/logger_test.go:") {
		t.Fatalf("expected caller to point at the test: %q", out)
	}
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	logger.InfoContext(context.Background(), "no panic")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}

func TestPairsToFields_OddArgs(t *testing.T) {
	t.Parallel()

	fields := pairsToFields([]any{"a", 1, "dangling"})
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}
	if fields[1].Key != "dangling" {
		t.Fatalf("unexpected key: %s", fields[1].Key)
	}
}
