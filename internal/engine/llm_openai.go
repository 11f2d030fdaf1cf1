package engine

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// NewOpenAIGenerator uses the go-openai chat completion client.
// LLMAPIBase may point at any OpenAI-compatible server.
func NewOpenAIGenerator(c Config) Generator {
	clientConfig := openai.DefaultConfig(c.LLMAPIKey)
	if c.LLMAPIBase != "" {
		clientConfig.BaseURL = c.LLMAPIBase
	}
	clientConfig.HTTPClient = &http.Client{Timeout: c.LLMTimeout}
	cli := openai.NewClientWithConfig(clientConfig)

	return GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		req := openai.ChatCompletionRequest{
			Model: c.LLMModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   c.LLMMaxTokens,
			Temperature: float32(c.LLMTemperature),
		}

		resp, err := cli.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", ErrEmptyCompletion
		}
		return resp.Choices[0].Message.Content, nil
	})
}
