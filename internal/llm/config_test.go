package llm

import (
	"testing"
)

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VITEROAD_LLM_PROVIDER",
		"VITEROAD_ANTHROPIC_API_KEY", "VITEROAD_ANTHROPIC_MODEL",
		"VITEROAD_OPENAI_API_KEY", "VITEROAD_OPENAI_MODEL", "VITEROAD_OPENAI_BASE_URL",
		"VITEROAD_GEMINI_API_KEY", "VITEROAD_GEMINI_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic default, got %q", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Fatalf("expected claude-haiku default, got %q", cfg.Anthropic.Model)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Fatalf("expected 3 retry attempts, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("VITEROAD_LLM_PROVIDER", "openai")
	t.Setenv("VITEROAD_OPENAI_API_KEY", "sk-test")
	t.Setenv("VITEROAD_OPENAI_MODEL", "gpt-4o")
	t.Setenv("VITEROAD_OPENAI_BASE_URL", "https://llm.internal.example/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Fatalf("expected openai, got %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Fatalf("openai config not read: %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.BaseURL != "https://llm.internal.example/v1" {
		t.Fatalf("base URL not read: %q", cfg.OpenAI.BaseURL)
	}
}

func TestValidateRequiresKeyForSelectedProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "gemini"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for a missing gemini key")
	}
	cfg.Gemini.APIKey = "g-test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "oracle"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for an unknown provider")
	}
}

func TestValidateMockNeedsNoKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-plain")
	t.Setenv("ANTHROPIC_API_KEY", "ant-plain")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	// OpenAI outranks Anthropic when both keys are present.
	if cfg.Provider != "openai" || cfg.OpenAI.APIKey != "sk-plain" {
		t.Fatalf("unexpected discovery result: %+v", cfg)
	}
}

func TestDiscoverConfigNoKeys(t *testing.T) {
	clearProviderEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected discovery to fail with no keys set")
	}
}
