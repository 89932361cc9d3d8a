package handler

import (
	"encoding/json"
	"net/http"

	apperrors "pitchdeck-analyzer/pkg/errors"
)

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"detail": message})
}

// writeAppError maps an error to its status code and detail string
func writeAppError(w http.ResponseWriter, err error) {
	message := err.Error()
	if appErr, ok := apperrors.As(err); ok {
		message = appErr.Error()
	}
	writeError(w, apperrors.GetStatusCode(err), message)
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
