package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(&buf, "warn", "text")

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message", "page", 2)

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Fatalf("expected debug and info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "page=2") {
		t.Fatalf("expected warn line with fields, got %q", out)
	}
}

func TestLogger_ErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(&buf, "info", "json")

	log.Error("completion failed", errors.New("status 500"), "request_id", "abc")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "completion failed" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["error"] != "status 500" {
		t.Fatalf("unexpected error field: %v", entry["error"])
	}
	if entry["request_id"] != "abc" {
		t.Fatalf("unexpected request_id field: %v", entry["request_id"])
	}
}

func TestRequestIDContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
}

func TestParseLogLevel_Default(t *testing.T) {
	if parseLogLevel("verbose").String() != "INFO" {
		t.Fatalf("expected unknown level to default to INFO")
	}
}
