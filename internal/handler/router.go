package handler

import (
	"net/http"

	"pitchdeck-analyzer/internal/domain"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(analysisHandler *AnalysisHandler, allowedOrigins []string, logger domain.Logger) http.Handler {
	router := mux.NewRouter()
	router.Use(RequestID, RequestLogger(logger), Recovery(logger))

	// mux skips Use middleware when no route matches
	router.NotFoundHandler = RequestID(RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})))
	router.MethodNotAllowedHandler = RequestID(RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "pitchdeck-analyzer"})
	}).Methods(http.MethodGet)

	router.HandleFunc("/", analysisHandler.Root).Methods(http.MethodGet)
	router.HandleFunc("/process_pdf/", analysisHandler.ProcessPDF).Methods(http.MethodPost)

	return newCORS(allowedOrigins).Handler(router)
}

// newCORS allows every origin when allowedOrigins contains "*". The origin is
// echoed back rather than answered with "*" so credentialed requests work.
func newCORS(allowedOrigins []string) *cors.Cors {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}

	allowAll := false
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
			break
		}
	}
	if allowAll {
		opts.AllowOriginFunc = func(string) bool { return true }
	} else {
		opts.AllowedOrigins = allowedOrigins
	}

	return cors.New(opts)
}
