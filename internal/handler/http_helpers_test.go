package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "pitchdeck-analyzer/pkg/errors"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusTeapot, `say "nope"`)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"detail":"say \"nope\""}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", apperrors.NewValidationError("File must be a PDF."), http.StatusBadRequest, `{"detail":"File must be a PDF."}`},
		{"extraction", apperrors.NewExtractionError(errors.New("EOF")), http.StatusInternalServerError, `{"detail":"PDF processing error: EOF"}`},
		{"completion", apperrors.NewCompletionError(errors.New("timeout")), http.StatusInternalServerError, `{"detail":"OpenAI API error: timeout"}`},
		{"plain", errors.New("boom"), http.StatusInternalServerError, `{"detail":"boom"}`},
		{"wrapped validation", fmt.Errorf("upload: %w", apperrors.NewValidationError("File is required.")), http.StatusBadRequest, `{"detail":"File is required."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeAppError(rr, tt.err)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
			if strings.TrimSpace(rr.Body.String()) != tt.wantBody {
				t.Fatalf("unexpected response body: %s", rr.Body.String())
			}
		})
	}
}
