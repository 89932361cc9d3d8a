package service

import (
	"context"
	"encoding/json"
	"time"

	"pitchdeck-analyzer/internal/domain"
	apperrors "pitchdeck-analyzer/pkg/errors"
	"pitchdeck-analyzer/pkg/logger"

	"golang.org/x/sync/semaphore"
)

// AnalysisService sequences extraction, prompt composition and completion
// for one upload
type AnalysisService struct {
	extractor domain.TextExtractor
	completer domain.Completer
	logger    domain.Logger

	// nil when concurrency is unbounded
	slots *semaphore.Weighted
}

// NewAnalysisService creates the pipeline. maxConcurrent <= 0 leaves the
// number of in-flight analyses unbounded.
func NewAnalysisService(
	extractor domain.TextExtractor,
	completer domain.Completer,
	logger domain.Logger,
	maxConcurrent int,
) *AnalysisService {
	s := &AnalysisService{
		extractor: extractor,
		completer: completer,
		logger:    logger,
	}
	if maxConcurrent > 0 {
		s.slots = semaphore.NewWeighted(int64(maxConcurrent))
	}
	return s
}

// Analyze returns the model's JSON reply for the uploaded PDF. Errors are
// *apperrors.AppError of type extraction, completion or internal.
func (s *AnalysisService) Analyze(ctx context.Context, upload *domain.Upload) (json.RawMessage, error) {
	requestID := logger.RequestIDFromContext(ctx)

	if s.slots != nil {
		if err := s.slots.Acquire(ctx, 1); err != nil {
			return nil, apperrors.NewInternalError("analysis cancelled while waiting for capacity", err)
		}
		defer s.slots.Release(1)
	}

	start := time.Now()
	s.logger.Info("Analysis started", "filename", upload.Filename, "size", len(upload.Content), "request_id", requestID)

	text, err := s.extractor.Extract(ctx, upload.Content)
	if err != nil {
		s.logger.Error("PDF extraction failed", err, "filename", upload.Filename, "request_id", requestID)
		return nil, apperrors.NewExtractionError(err)
	}

	raw, err := s.completer.Complete(ctx, ComposeMessages(text))
	if err != nil {
		return nil, apperrors.NewCompletionError(err)
	}

	result, err := ParseCompletion(raw)
	if err != nil {
		s.logger.Error("Completion was not valid JSON", err, "raw_len", len(raw), "request_id", requestID)
		return nil, apperrors.NewCompletionError(err)
	}

	s.logger.Info("Analysis finished",
		"filename", upload.Filename,
		"text_len", len(text),
		"result_len", len(result),
		"elapsed_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	)
	return result, nil
}
