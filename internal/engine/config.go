package engine

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Generator providers accepted in Config.LLMProvider.
const (
	ProviderGoKit  = "gokit"
	ProviderOpenAI = "openai"
)

// Config holds all engine configuration, built once in main and passed
// explicitly to the constructors that need it.
type Config struct {
	LLMAPIKey      string
	LLMAPIBase     string
	LLMModel       string
	LLMProvider    string // "gokit" (default) or "openai"
	LLMTemperature float64
	LLMMaxTokens   int
	LLMTimeout     time.Duration
	FetchTimeout   time.Duration
	Port           string
	MCPPort        string
	HTTPClient     *http.Client   // YouTube calls
	BrowserClient  *BrowserClient // nil = watch page fetched with HTTPClient
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.LLMAPIKey) == "" {
		problems = append(problems, "LLM_API_KEY (or GEMINI_API_KEY) is required")
	}
	if strings.TrimSpace(c.LLMAPIBase) == "" {
		problems = append(problems, "LLM_API_BASE is required")
	}
	if strings.TrimSpace(c.LLMModel) == "" {
		problems = append(problems, "LLM_MODEL is required")
	}
	switch c.LLMProvider {
	case "", ProviderGoKit, ProviderOpenAI:
	default:
		problems = append(problems, fmt.Sprintf("unknown LLM_PROVIDER %q (want %s or %s)", c.LLMProvider, ProviderGoKit, ProviderOpenAI))
	}
	if c.LLMMaxTokens < 0 {
		problems = append(problems, "LLM_MAX_TOKENS must not be negative")
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}
