package domain

import (
	"context"
	"encoding/json"
)

// TextExtractor turns an uploaded PDF into plain text
type TextExtractor interface {
	Extract(ctx context.Context, pdfBytes []byte) (string, error)
}

// Completer sends a conversation to a chat-completion model and returns the
// raw text of its reply
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// AnalysisService runs the upload -> text -> completion pipeline
type AnalysisService interface {
	Analyze(ctx context.Context, upload *Upload) (json.RawMessage, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetLogFormat() string
	GetCORSAllowedOrigins() []string
}
