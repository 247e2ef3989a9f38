package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" {
		t.Fatalf("expected system 'sys', got %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, PurposeScenarioJudge)
	if p := PurposeFrom(ctx); p != "scenario-judge" {
		t.Fatalf("expected 'scenario-judge', got %q", p)
	}
}

func TestParsePurpose(t *testing.T) {
	for _, p := range Purposes {
		got, err := ParsePurpose(string(p))
		if err != nil || got != p {
			t.Fatalf("ParsePurpose(%q) = %q, %v", p, got, err)
		}
	}
	if got, err := ParsePurpose(""); err != nil || got != "" {
		t.Fatalf("empty purpose should mean no filter, got %q, %v", got, err)
	}
	if _, err := ParsePurpose("unknown"); err == nil {
		t.Fatal("expected error for a label no judge attaches")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "openrouter with key",
			cfg:     Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMockProvider_RecordsPurposes(t *testing.T) {
	mock := NewMockProvider(MockText("a"), MockText("b"))

	_, _ = mock.Generate(WithPurpose(context.Background(), PurposeScenarioJudge), Request{})
	_, _ = mock.Generate(WithPurpose(context.Background(), PurposeExampleJudge), Request{})

	got := mock.Purposes()
	if len(got) != 2 || got[0] != "scenario-judge" || got[1] != "example-judge" {
		t.Fatalf("unexpected purposes: %v", got)
	}
}

func TestMockProvider_CancelledContext(t *testing.T) {
	mock := NewMockProvider(MockText("unused"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mock.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}

func TestConfig_MissingKeyWrapsNoCredentials(t *testing.T) {
	err := Config{Provider: "openai"}.Validate()
	if !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got: %v", err)
	}
}

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DAEPYO_LLM_PROVIDER", "DAEPYO_LLM_TIMEOUT",
		"DAEPYO_OPENAI_API_KEY", "DAEPYO_OPENAI_MODEL", "DAEPYO_OPENAI_BASE_URL",
		"DAEPYO_ANTHROPIC_API_KEY", "DAEPYO_ANTHROPIC_MODEL",
		"DAEPYO_GEMINI_API_KEY", "DAEPYO_GEMINI_MODEL",
		"DAEPYO_OPENROUTER_API_KEY", "DAEPYO_OPENROUTER_MODEL",
		"OPENAI_API_KEY", "GEMINI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestResolveConfig_NoKeys(t *testing.T) {
	clearLLMEnv(t)

	_, err := ResolveConfig()
	if !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got: %v", err)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("GEMINI_API_KEY", "gm")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a discovered config")
	}
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "gm" {
		t.Fatalf("expected gemini to win over anthropic, got %q", cfg.Provider)
	}

	t.Setenv("OPENAI_API_KEY", "sk-oa")
	cfg, _ = DiscoverConfig()
	if cfg.Provider != "openai" || cfg.OpenAI.Model != "gpt-3.5-turbo" {
		t.Fatalf("expected openai with default model, got %q/%q", cfg.Provider, cfg.OpenAI.Model)
	}
}

func TestResolveConfig_ExplicitProviderWins(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-oa")
	t.Setenv("DAEPYO_LLM_PROVIDER", "anthropic")
	t.Setenv("DAEPYO_ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("DAEPYO_LLM_TIMEOUT", "3s")

	cfg, err := ResolveConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "anthropic" {
		t.Fatalf("expected anthropic, got %q", cfg.Provider)
	}
	if cfg.Timeout.String() != "3s" {
		t.Fatalf("expected 3s timeout, got %s", cfg.Timeout)
	}
}

func TestNewProvider_MockNeedsNoRepo(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}

func TestLookupCost(t *testing.T) {
	if c := LookupCost("gpt-3.5-turbo"); c == nil || c.Cost(1_000_000, 0) != 0.5 {
		t.Fatalf("unexpected cost for gpt-3.5-turbo: %v", c)
	}
	if c := LookupCost("openai/gpt-4o-mini"); c == nil || c.OutputPerMTok != 0.6 {
		t.Fatalf("expected vendor-prefixed lookup to resolve, got %v", c)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
