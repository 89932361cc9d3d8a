package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pitchdeck-analyzer/internal/domain"
)

var _ domain.Config = (*AppConfig)(nil)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort         string
	MaxFileSize        int64
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string

	CompletionProvider string
	CompletionTimeout  time.Duration
	MaxTokens          int

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	GCPProjectID string
	GCPLocation  string
	VertexModel  string

	PDFBackend            string
	PageSeparator         string
	MaxConcurrentAnalyses int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() *AppConfig {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:         getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		MaxFileSize:        getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:          getEnvOrDefault("LOG_FORMAT", "text"),
		CORSAllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),

		CompletionProvider: strings.ToLower(getEnvOrDefault("COMPLETION_PROVIDER", domain.ProviderOpenAI)),
		CompletionTimeout:  getEnvDurationOrDefault("COMPLETION_TIMEOUT", 0),
		MaxTokens:          int(getEnvInt64OrDefault("OPENAI_MAX_TOKENS", 4096)),

		OpenAIAPIKey:  getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnvOrDefault("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", "gpt-4-0125-preview"),

		GCPProjectID: getEnvOrDefault("GCP_PROJECT_ID", ""),
		GCPLocation:  getEnvOrDefault("GCP_LOCATION", "us-central1"),
		VertexModel:  getEnvOrDefault("VERTEX_MODEL", "gemini-2.0-flash-001"),

		PDFBackend: strings.ToLower(getEnvOrDefault("PDF_BACKEND", domain.PDFBackendFitz)),
		// Empty is meaningful here, so the variable is read without a default fallback.
		PageSeparator:         unescape(os.Getenv("PAGE_SEPARATOR")),
		MaxConcurrentAnalyses: int(getEnvInt64OrDefault("MAX_CONCURRENT_ANALYSES", 0)),
	}
}

// Validate reports settings the server cannot start without
func (c *AppConfig) Validate() error {
	switch c.CompletionProvider {
	case domain.ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when COMPLETION_PROVIDER=%s", domain.ProviderOpenAI)
		}
	case domain.ProviderVertex:
		if c.GCPProjectID == "" {
			return fmt.Errorf("GCP_PROJECT_ID is required when COMPLETION_PROVIDER=%s", domain.ProviderVertex)
		}
	default:
		return fmt.Errorf("unknown COMPLETION_PROVIDER %q", c.CompletionProvider)
	}

	switch c.PDFBackend {
	case domain.PDFBackendFitz, domain.PDFBackendPure:
	default:
		return fmt.Errorf("unknown PDF_BACKEND %q", c.PDFBackend)
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must be positive, got %d", c.MaxTokens)
	}
	if c.MaxConcurrentAnalyses < 0 {
		return fmt.Errorf("MAX_CONCURRENT_ANALYSES must not be negative, got %d", c.MaxConcurrentAnalyses)
	}
	return nil
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetMaxFileSize returns the maximum allowed upload size
func (c *AppConfig) GetMaxFileSize() int64 {
	return c.MaxFileSize
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns the log output format
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// Helper functions for environment variable handling
// GetCORSAllowedOrigins returns the origins allowed by CORS; "*" allows any
func (c *AppConfig) GetCORSAllowedOrigins() []string {
	return c.CORSAllowedOrigins
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// unescape lets PAGE_SEPARATOR carry "\n" and "\t" in .env files
func unescape(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(s)
}
