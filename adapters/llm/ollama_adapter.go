package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/foliocraft/backend/internal/application/service"
	"github.com/foliocraft/backend/internal/config"
	"github.com/foliocraft/backend/pkg/logger"
)

// ollamaCopyAdapter talks to a local Ollama through its OpenAI-compatible
// endpoint, for running without a Gemini key.
type ollamaCopyAdapter struct {
	client *openai.Client
	model  string
	log    logger.Logger
}

func NewOllamaCopyAdapter(cfg config.Config, log logger.Logger) (service.CopyService, error) {
	if cfg.Assist.OllamaHost == "" {
		return nil, fmt.Errorf("ollama host is not configured")
	}

	clientConfig := openai.DefaultConfig("dummy-key")
	clientConfig.BaseURL = cfg.Assist.OllamaHost
	client := openai.NewClientWithConfig(clientConfig)

	log.Info("Ollama copy adapter initialized")
	return &ollamaCopyAdapter{client: client, model: cfg.Assist.OllamaModel, log: log}, nil
}

func (a *ollamaCopyAdapter) DraftBio(ctx context.Context, name string, skills []string, tone string) (string, error) {
	if tone == "" {
		tone = "professional"
	}
	prompt := fmt.Sprintf(`Write a %s professional bio (max 80 words) for a portfolio website.
Name: %s
Skills: %s
Focus on being engaging and highlighting expertise.`, tone, name, strings.Join(skills, ", "))

	return a.complete(ctx, prompt)
}

func (a *ollamaCopyAdapter) PolishText(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Rewrite the following project description to be more punchy, professional, and result-oriented. Keep it under 50 words.
Original: %q`, text)

	return a.complete(ctx, prompt)
}

func (a *ollamaCopyAdapter) complete(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: false,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("ollama chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("ollama returned no chat choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
