// go_ytnotes turns YouTube videos into study notes.
//
// Extracts the video id from a YouTube URL, fetches the caption transcript
// (English first, otherwise the first available language) and asks an LLM
// for structured Markdown notes. Served as a JSON HTTP API, an MCP tool,
// or run once from the command line.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"

	"github.com/anatolykoptev/go_ytnotes/internal/engine"
	"github.com/anatolykoptev/go_ytnotes/internal/engine/sources"
)

var version = "dev"

func main() {
	setupLogging(env.Str("LOG_LEVEL", "info"))

	app := newCLIApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging installs a text slog handler on stderr at the given level.
// stdout stays clean for the notes command.
func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// loadConfig reads the environment. The model credential has no default.
func loadConfig() engine.Config {
	apiKey := env.Str("LLM_API_KEY", "")
	if apiKey == "" {
		apiKey = env.Str("GEMINI_API_KEY", "")
	}
	fetchTimeout := env.Duration("FETCH_TIMEOUT", 15*time.Second)

	return engine.Config{
		LLMAPIKey:      apiKey,
		LLMAPIBase:     env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:       env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMProvider:    env.Str("LLM_PROVIDER", engine.ProviderGoKit),
		LLMTemperature: env.Float("LLM_TEMPERATURE", 0.3),
		LLMMaxTokens:   env.Int("LLM_MAX_TOKENS", 8192),
		LLMTimeout:     env.Duration("LLM_TIMEOUT", 120*time.Second),
		FetchTimeout:   fetchTimeout,
		Port:           env.Str("PORT", "5000"),
		MCPPort:        env.Str("MCP_PORT", "8892"),
		HTTPClient: &http.Client{
			Timeout: fetchTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
}

// initEngine validates the configuration and wires the pipeline.
func initEngine() (engine.Config, *engine.Analyzer, error) {
	c := loadConfig()
	if err := c.Validate(); err != nil {
		return c, nil, err
	}

	if stealthEnabled, _ := strconv.ParseBool(env.Str("STEALTH_ENABLED", "false")); stealthEnabled {
		bc, err := engine.NewBrowserClient(c.FetchTimeout, env.Str("WEBSHARE_API_KEY", ""))
		if err != nil {
			slog.Error("stealth client init failed", slog.Any("error", err))
		} else {
			c.BrowserClient = bc
			slog.Info("stealth browser client initialized")
		}
	}

	provider := sources.NewYouTube(c.HTTPClient, c.BrowserClient)
	analyzer := engine.NewAnalyzer(provider, engine.NewGenerator(c))

	slog.Info("engine ready",
		slog.String("provider", c.LLMProvider),
		slog.String("model", c.LLMModel),
		slog.Bool("stealth", c.BrowserClient != nil))
	return c, analyzer, nil
}
