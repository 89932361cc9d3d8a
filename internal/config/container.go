package config

import (
	"context"
	"errors"
	"fmt"

	"pitchdeck-analyzer/internal/domain"
	"pitchdeck-analyzer/internal/service"
	"pitchdeck-analyzer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	TextExtractor   domain.TextExtractor
	Completer       domain.Completer
	AnalysisService domain.AnalysisService

	closers []func() error
}

// NewContainer wires the analysis pipeline from cfg. Call Close when done.
func NewContainer(ctx context.Context, cfg *AppConfig) (*Container, error) {
	appLogger := logger.NewLogger(cfg.GetLogLevel(), cfg.GetLogFormat())
	c := &Container{Config: cfg, Logger: appLogger}

	extractor, err := service.NewPDFProcessor(cfg.PDFBackend, cfg.PageSeparator, appLogger)
	if err != nil {
		return nil, err
	}
	c.TextExtractor = extractor

	switch cfg.CompletionProvider {
	case domain.ProviderOpenAI:
		c.Completer = service.NewOpenAICompleter(service.OpenAIConfig{
			APIKey:    cfg.OpenAIAPIKey,
			BaseURL:   cfg.OpenAIBaseURL,
			Model:     cfg.OpenAIModel,
			MaxTokens: cfg.MaxTokens,
			Timeout:   cfg.CompletionTimeout,
		}, appLogger)
	case domain.ProviderVertex:
		vertex, err := service.NewVertexCompleter(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.VertexModel, cfg.MaxTokens, cfg.CompletionTimeout, appLogger)
		if err != nil {
			return nil, fmt.Errorf("failed to create vertex completer: %w", err)
		}
		c.Completer = vertex
		c.closers = append(c.closers, vertex.Close)
	default:
		return nil, fmt.Errorf("unknown completion provider %q", cfg.CompletionProvider)
	}

	c.AnalysisService = service.NewAnalysisService(c.TextExtractor, c.Completer, appLogger, cfg.MaxConcurrentAnalyses)

	appLogger.Info("Container initialized",
		"pdf_backend", cfg.PDFBackend,
		"completion_provider", cfg.CompletionProvider,
		"max_concurrent_analyses", cfg.MaxConcurrentAnalyses,
	)
	return c, nil
}

// Close releases clients opened by NewContainer
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
