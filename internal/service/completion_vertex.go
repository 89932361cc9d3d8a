package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pitchdeck-analyzer/internal/domain"
	"pitchdeck-analyzer/pkg/logger"

	"cloud.google.com/go/vertexai/genai"
)

// VertexCompleter implements domain.Completer with Gemini on Vertex AI.
// Credentials come from Application Default Credentials.
type VertexCompleter struct {
	client    *genai.Client
	model     string
	maxTokens int32
	timeout   time.Duration
	logger    domain.Logger
}

// NewVertexCompleter dials Vertex AI. timeout <= 0 leaves calls bounded only
// by the caller's context.
func NewVertexCompleter(ctx context.Context, projectID, location, model string, maxTokens int, timeout time.Duration, logger domain.Logger) (*VertexCompleter, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	return &VertexCompleter{
		client:    client,
		model:     model,
		maxTokens: int32(maxTokens),
		timeout:   timeout,
		logger:    logger,
	}, nil
}

func (c *VertexCompleter) Complete(ctx context.Context, messages []domain.Message) (string, error) {
	start := time.Now()
	requestID := logger.RequestIDFromContext(ctx)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	model := c.client.GenerativeModel(c.model)
	parts := buildVertexRequest(model, c.maxTokens, messages)

	c.logger.Info("Completion request",
		"provider", domain.ProviderVertex,
		"model", c.model,
		"max_tokens", c.maxTokens,
		"messages", len(messages),
		"request_id", requestID,
	)

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		c.logger.Error("Completion request failed", err,
			"model", c.model,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		)
		return "", fmt.Errorf("gemini call failed: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}

	c.logger.Info("Completion received",
		"model", c.model,
		"elapsed_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	)
	return text, nil
}

// emptyTextPlaceholder stands in for an empty user message; Vertex rejects
// empty text parts.
const emptyTextPlaceholder = "(no text could be extracted from the document)"

// buildVertexRequest configures model for a JSON reply and returns the user
// parts. The system message becomes the model's SystemInstruction.
func buildVertexRequest(model *genai.GenerativeModel, maxTokens int32, messages []domain.Message) []genai.Part {
	model.SetMaxOutputTokens(maxTokens)
	model.ResponseMIMEType = "application/json"

	var parts []genai.Part
	for _, m := range messages {
		if m.Role == domain.RoleSystem {
			model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(m.Content)}}
			continue
		}
		if m.Content == "" {
			continue
		}
		parts = append(parts, genai.Text(m.Content))
	}
	if len(parts) == 0 {
		parts = append(parts, genai.Text(emptyTextPlaceholder))
	}
	return parts
}

// Close releases the underlying client
func (c *VertexCompleter) Close() error {
	return c.client.Close()
}

// responseText joins the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty response from model")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}
