package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pitchdeck-analyzer/pkg/logger"
)

func TestRequestID_Generated(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.RequestIDFromContext(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatalf("expected request id in context")
	}
	if rr.Header().Get(requestIDHeader) != seen {
		t.Fatalf("expected response header %q, got %q", seen, rr.Header().Get(requestIDHeader))
	}
}

func TestRequestID_Propagated(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "caller-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if seen != "caller-42" {
		t.Fatalf("expected caller request id, got %q", seen)
	}
}

type recordingLogger struct {
	MockHandlerLogger
	infos []string
	warns []string
}

func (l *recordingLogger) Info(msg string, fields ...interface{}) { l.infos = append(l.infos, msg) }
func (l *recordingLogger) Warn(msg string, fields ...interface{}) { l.warns = append(l.warns, msg) }

func TestRequestLogger_LevelsByStatus(t *testing.T) {
	log := &recordingLogger{}
	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	if len(log.infos) != 1 || log.infos[0] != "request completed" {
		t.Fatalf("unexpected info lines: %v", log.infos)
	}
	if len(log.warns) != 1 || log.warns[0] != "request failed" {
		t.Fatalf("unexpected warn lines: %v", log.warns)
	}
}

func TestRecovery(t *testing.T) {
	log := &recordingLogger{}
	h := Recovery(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/process_pdf/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Internal server error") {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
	if len(log.warns) != 1 {
		t.Fatalf("expected panic to be logged")
	}
}
