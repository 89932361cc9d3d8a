package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"pitchdeck-analyzer/internal/domain"
	"pitchdeck-analyzer/pkg/logger"

	"github.com/gen2brain/go-fitz"
)

// pageDocument is the subset of a PDF engine the processor needs.
// *fitz.Document satisfies it directly.
type pageDocument interface {
	NumPage() int
	Text(pageNumber int) (string, error)
	Close() error
}

type documentOpener func(pdfBytes []byte) (pageDocument, error)

// PDFProcessor handles PDF text extraction
type PDFProcessor struct {
	logger    domain.Logger
	separator string
	open      documentOpener
	backend   string
}

// NewPDFProcessor creates a new PDF processor for the given backend
// (domain.PDFBackendFitz or domain.PDFBackendPure). separator is written
// between the text of consecutive non-empty pages.
func NewPDFProcessor(backend, separator string, logger domain.Logger) (*PDFProcessor, error) {
	var open documentOpener
	switch backend {
	case domain.PDFBackendFitz, "":
		backend = domain.PDFBackendFitz
		open = openFitz
	case domain.PDFBackendPure:
		open = openPure
	default:
		return nil, fmt.Errorf("unsupported PDF backend %q", backend)
	}

	return &PDFProcessor{
		logger:    logger,
		separator: separator,
		open:      open,
		backend:   backend,
	}, nil
}

func openFitz(pdfBytes []byte) (pageDocument, error) {
	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Extract concatenates the text of every page, in document order.
// Pages without text are skipped; trailing whitespace the engine emits
// at the end of each page is dropped.
func (p *PDFProcessor) Extract(ctx context.Context, pdfBytes []byte) (string, error) {
	start := time.Now()
	requestID := logger.RequestIDFromContext(ctx)

	doc, err := p.open(pdfBytes)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() {
		if err := doc.Close(); err != nil {
			p.logger.Warn("Failed to close PDF document", "error", err, "request_id", requestID)
		}
	}()

	numPages := doc.NumPage()
	var sb strings.Builder
	textPages := 0

	for pageNum := 0; pageNum < numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := doc.Text(pageNum)
		if err != nil {
			p.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", err, "request_id", requestID)
			continue
		}

		text = strings.TrimRightFunc(text, unicode.IsSpace)
		if text == "" {
			continue
		}

		if textPages > 0 {
			sb.WriteString(p.separator)
		}
		sb.WriteString(text)
		textPages++
	}

	p.logger.Debug("PDF text extracted",
		"backend", p.backend,
		"pages", numPages,
		"text_pages", textPages,
		"text_len", sb.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	)

	return sb.String(), nil
}
