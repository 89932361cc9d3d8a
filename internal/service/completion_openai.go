package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pitchdeck-analyzer/internal/domain"
	"pitchdeck-analyzer/pkg/logger"

	"github.com/sashabaranov/go-openai"
)

// OpenAIConfig configures OpenAICompleter
type OpenAIConfig struct {
	APIKey    string
	BaseURL   string // empty uses the library default
	Model     string
	MaxTokens int
	Timeout   time.Duration // 0 keeps the library's HTTP client
}

// OpenAICompleter implements domain.Completer against the chat completions API
type OpenAICompleter struct {
	client    *openai.Client
	model     string
	maxTokens int
	logger    domain.Logger
}

// NewOpenAICompleter creates a completer. The API key is taken from cfg only.
func NewOpenAICompleter(cfg OpenAIConfig, logger domain.Logger) *OpenAICompleter {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &OpenAICompleter{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}
}

// Complete requests a JSON object response and returns the first choice's content
func (c *OpenAICompleter) Complete(ctx context.Context, messages []domain.Message) (string, error) {
	start := time.Now()
	requestID := logger.RequestIDFromContext(ctx)

	req := openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: toOpenAIMessages(messages),
	}

	c.logger.Info("Completion request",
		"provider", domain.ProviderOpenAI,
		"model", c.model,
		"max_tokens", c.maxTokens,
		"messages", len(messages),
		"request_id", requestID,
	)

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		c.logger.Error("Completion request failed", err,
			"model", c.model,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in completion response")
	}

	c.logger.Info("Completion received",
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", resp.Choices[0].FinishReason,
		"elapsed_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	)

	return resp.Choices[0].Message.Content, nil
}

func toOpenAIMessages(messages []domain.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == domain.RoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return out
}

// ParseCompletion checks that raw is valid JSON and returns it unchanged.
// No schema is enforced.
func ParseCompletion(raw string) (json.RawMessage, error) {
	var result json.RawMessage
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("invalid JSON in completion: %w", err)
	}
	return result, nil
}
