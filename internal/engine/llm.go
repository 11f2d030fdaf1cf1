package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/anatolykoptev/go-kit/llm"
)

// Generator sends one prompt to a generative-text model and returns its answer.
// The model identifier is fixed when the Generator is built.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// NewGenerator builds the Generator selected by c.LLMProvider.
func NewGenerator(c Config) Generator {
	if c.LLMProvider == ProviderOpenAI {
		return NewOpenAIGenerator(c)
	}
	return NewGoKitGenerator(c)
}

// NewGoKitGenerator talks to an OpenAI-compatible endpoint through go-kit/llm.
func NewGoKitGenerator(c Config) Generator {
	client := llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: c.LLMTimeout}),
	)
	return GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		out, err := client.Complete(ctx, "", prompt)
		if err != nil {
			return "", fmt.Errorf("llm complete: %w", err)
		}
		return out, nil
	})
}

// NoteSynthesizer turns a transcript into Markdown study notes.
type NoteSynthesizer struct {
	gen Generator
}

// NewNoteSynthesizer creates a synthesizer using gen for every call.
func NewNoteSynthesizer(gen Generator) *NoteSynthesizer {
	return &NoteSynthesizer{gen: gen}
}

// BuildNotesPrompt interpolates title and transcript verbatim into the notes template.
func BuildNotesPrompt(transcript, title string) string {
	return fmt.Sprintf(notesPrompt, title, transcript)
}

// Synthesize sends the whole transcript in a single call and returns the model
// output unmodified. Long transcripts are not chunked; an oversized prompt fails upstream.
func (s *NoteSynthesizer) Synthesize(ctx context.Context, transcript, title string) (string, error) {
	prompt := BuildNotesPrompt(transcript, title)
	slog.Debug("llm: sending notes prompt", slog.Int("prompt_chars", len(prompt)))

	metrics.LLMCalls.Add(1)
	notes, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	if notes == "" {
		metrics.LLMErrors.Add(1)
		return "", ErrEmptyCompletion
	}
	return notes, nil
}
