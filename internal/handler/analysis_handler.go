// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"pitchdeck-analyzer/internal/domain"
	apperrors "pitchdeck-analyzer/pkg/errors"
	"pitchdeck-analyzer/pkg/logger"
)

const uploadField = "file"

// analysisResponse is the body of a successful analysis
type analysisResponse struct {
	Summary json.RawMessage `json:"summary"`
}

// AnalysisHandler handles the PDF analysis endpoints
type AnalysisHandler struct {
	analysisService domain.AnalysisService
	maxFileSize     int64
	logger          domain.Logger
}

// NewAnalysisHandler creates a new analysis handler. maxFileSize <= 0 disables
// the upload size cap.
func NewAnalysisHandler(analysisService domain.AnalysisService, maxFileSize int64, logger domain.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		maxFileSize:     maxFileSize,
		logger:          logger,
	}
}

// Root answers the liveness greeting
func (h *AnalysisHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

// ProcessPDF analyzes an uploaded PDF and returns the model's JSON summary
func (h *AnalysisHandler) ProcessPDF(w http.ResponseWriter, r *http.Request) {
	requestID := logger.RequestIDFromContext(r.Context())

	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeAppError(w, apperrors.NewValidationError("File too large."))
			return
		}
		writeAppError(w, apperrors.NewValidationError("File is required."))
		return
	}
	defer file.Close()

	// Case-sensitive on purpose: "deck.PDF" is rejected.
	if !strings.HasSuffix(header.Filename, ".pdf") {
		h.logger.Info("Rejected upload", "filename", header.Filename, "request_id", requestID)
		writeAppError(w, apperrors.NewValidationError("File must be a PDF."))
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read upload", err, "filename", header.Filename, "request_id", requestID)
		writeAppError(w, apperrors.NewExtractionError(err))
		return
	}

	result, err := h.analysisService.Analyze(r.Context(), &domain.Upload{
		Filename: header.Filename,
		Content:  content,
	})
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeInternal) {
			h.logger.Warn("Analysis cancelled", "error", err, "filename", header.Filename, "request_id", requestID)
		} else {
			h.logger.Error("Analysis failed", err, "filename", header.Filename, "request_id", requestID)
		}
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analysisResponse{Summary: result})
}
