package generator

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type OpenAIGenerator struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float64
	logger      *zap.Logger
}

func NewOpenAIGenerator(apiKey string, model string, maxTokens int, temperature float64, logger *zap.Logger) *OpenAIGenerator {
	return &OpenAIGenerator{
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   maxTokens,
		temperature: temperature,
		logger:      logger,
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   g.maxTokens,
			Temperature: float32(g.temperature),
		},
	)

	if err != nil {
		g.logger.Error("Failed to get completion", zap.Error(err))
		return "", &ProviderError{Message: err.Error(), Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Message: "provider returned no choices"}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
