package config

import (
	"os"
	"testing"
)

func TestNewFromEnv(t *testing.T) {
	setEnv := func(t *testing.T, key, value string) {
		t.Helper()
		t.Setenv(key, value)
	}

	clearEnv := func(t *testing.T, keys ...string) {
		t.Helper()
		for _, k := range keys {
			// t.Setenv registers the restore, Unsetenv does the actual clearing
			t.Setenv(k, "")
			os.Unsetenv(k)
		}
	}

	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t, "LLM_PROVIDER", "OPENAI_BASE_URL", "OPENAI_MODEL", "OPENAI_MAX_TOKENS",
			"OPENAI_TEMPERATURE", "PORT", "ALLOWED_ORIGINS", "DATABASE_PATH",
			"TELEGRAM_ALLOWED_USER_IDS")
		setEnv(t, "OPENAI_API_KEY", "sk-test")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if cfg.LLMProvider != ProviderOpenAI {
			t.Errorf("Expected default provider %q, got %q", ProviderOpenAI, cfg.LLMProvider)
		}
		if cfg.OpenAIBaseURL != "https://api.openai.com/v1" {
			t.Errorf("Unexpected default base URL: %s", cfg.OpenAIBaseURL)
		}
		if cfg.OpenAIModel != "gpt-4" {
			t.Errorf("Unexpected default model: %s", cfg.OpenAIModel)
		}
		if cfg.OpenAIMaxTokens != 2000 {
			t.Errorf("Expected default max tokens 2000, got %d", cfg.OpenAIMaxTokens)
		}
		if cfg.OpenAITemperature != 0.7 {
			t.Errorf("Expected default temperature 0.7, got %f", cfg.OpenAITemperature)
		}
		if cfg.HTTPPort != "8080" {
			t.Errorf("Expected default port 8080, got %s", cfg.HTTPPort)
		}
		if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
			t.Errorf("Unexpected default origins: %v", cfg.AllowedOrigins)
		}
	})

	t.Run("MissingOpenAIKey", func(t *testing.T) {
		clearEnv(t, "LLM_PROVIDER", "OPENAI_API_KEY")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing OPENAI_API_KEY, got nil")
		}
		expectedError := "OPENAI_API_KEY environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("GeminiProviderRequiresKey", func(t *testing.T) {
		setEnv(t, "LLM_PROVIDER", "gemini")
		clearEnv(t, "GEMINI_API_KEY")

		_, err := NewFromEnv()
		if err == nil {
			t.Fatal("Expected an error for missing GEMINI_API_KEY, got nil")
		}
		expectedError := "GEMINI_API_KEY environment variable not set"
		if err.Error() != expectedError {
			t.Errorf("Expected error '%s', got '%s'", expectedError, err.Error())
		}
	})

	t.Run("UnsupportedProvider", func(t *testing.T) {
		setEnv(t, "LLM_PROVIDER", "anthropic-but-misspelled")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for unsupported provider, got nil")
		}
	})

	t.Run("InvalidMaxTokens", func(t *testing.T) {
		setEnv(t, "OPENAI_API_KEY", "sk-test")
		setEnv(t, "OPENAI_MAX_TOKENS", "not-a-number")

		if _, err := NewFromEnv(); err == nil {
			t.Fatal("Expected an error for invalid OPENAI_MAX_TOKENS, got nil")
		}
	})

	t.Run("TelegramAllowedUserIDs", func(t *testing.T) {
		setEnv(t, "OPENAI_API_KEY", "sk-test")
		setEnv(t, "TELEGRAM_ALLOWED_USER_IDS", "123, 456")

		cfg, err := NewFromEnv()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(cfg.TelegramAllowedUserIDs) != 2 || cfg.TelegramAllowedUserIDs[0] != 123 || cfg.TelegramAllowedUserIDs[1] != 456 {
			t.Errorf("Unexpected allowed user IDs: %v", cfg.TelegramAllowedUserIDs)
		}
	})
}
