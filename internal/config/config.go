package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Supported chat-completion providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds the configuration for the application. It is built once at
// startup and passed explicitly to the components that need it; there is no
// package-level state.
type Config struct {
	// Chat-completion provider
	LLMProvider       string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	OpenAIMaxTokens   int
	OpenAITemperature float64
	OpenAITimeoutSecs int
	GeminiAPIKey      string
	GeminiModel       string

	// HTTP server
	HTTPPort       string
	AllowedOrigins []string

	// Persistence
	DatabasePath string

	// Telegram bot (optional, required only for the bot binary)
	TelegramBotToken       string
	TelegramWebhookURL     string
	TelegramAllowedUserIDs []int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	provider := strings.ToLower(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = ProviderOpenAI
	}
	if provider != ProviderOpenAI && provider != ProviderGemini {
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q (expected %q or %q)", provider, ProviderOpenAI, ProviderGemini)
	}

	openAIKey := os.Getenv("OPENAI_API_KEY")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if provider == ProviderOpenAI && openAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	if provider == ProviderGemini && geminiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4"
	}

	geminiModel := os.Getenv("GEMINI_MODEL")
	if geminiModel == "" {
		geminiModel = "gemini-1.5-flash"
	}

	maxTokens, err := intEnv("OPENAI_MAX_TOKENS", 2000)
	if err != nil {
		return nil, err
	}

	temperature := 0.7
	if v := os.Getenv("OPENAI_TEMPERATURE"); v != "" {
		temperature, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid OPENAI_TEMPERATURE %q: %w", v, err)
		}
	}

	timeoutSecs, err := intEnv("OPENAI_TIMEOUT_SECONDS", 60)
	if err != nil {
		return nil, err
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	origins := splitList(os.Getenv("ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "data/macrofit.db"
	}

	var allowedIDs []int64
	for _, raw := range splitList(os.Getenv("TELEGRAM_ALLOWED_USER_IDS")) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_ALLOWED_USER_IDS entry %q: %w", raw, err)
		}
		allowedIDs = append(allowedIDs, id)
	}

	return &Config{
		LLMProvider:            provider,
		OpenAIAPIKey:           openAIKey,
		OpenAIBaseURL:          baseURL,
		OpenAIModel:            model,
		OpenAIMaxTokens:        maxTokens,
		OpenAITemperature:      temperature,
		OpenAITimeoutSecs:      timeoutSecs,
		GeminiAPIKey:           geminiKey,
		GeminiModel:            geminiModel,
		HTTPPort:               port,
		AllowedOrigins:         origins,
		DatabasePath:           dbPath,
		TelegramBotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL:     os.Getenv("TELEGRAM_WEBHOOK_URL"),
		TelegramAllowedUserIDs: allowedIDs,
	}, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
