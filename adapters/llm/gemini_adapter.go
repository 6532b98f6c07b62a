package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/foliocraft/backend/internal/application/service"
	"github.com/foliocraft/backend/internal/config"
	"github.com/foliocraft/backend/pkg/logger"
)

type geminiCopyAdapter struct {
	client *genai.Client
	model  string
	log    logger.Logger
}

func NewGeminiCopyAdapter(ctx context.Context, cfg config.Config, log logger.Logger) (service.CopyService, error) {
	if cfg.Assist.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Assist.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize Gemini client: %w", err)
	}

	log.Info("Gemini copy adapter initialized")
	return &geminiCopyAdapter{client: client, model: cfg.Assist.GeminiModel, log: log}, nil
}

func (a *geminiCopyAdapter) DraftBio(ctx context.Context, name string, skills []string, tone string) (string, error) {
	if tone == "" {
		tone = "professional"
	}
	prompt := fmt.Sprintf(`Write a %s professional bio (max 80 words) for a portfolio website.
Name: %s
Skills: %s
Focus on being engaging and highlighting expertise.`, tone, name, strings.Join(skills, ", "))

	return a.generate(ctx, prompt)
}

func (a *geminiCopyAdapter) PolishText(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Rewrite the following project description to be more punchy, professional, and result-oriented. Keep it under 50 words.
Original: %q`, text)

	return a.generate(ctx, prompt)
}

func (a *geminiCopyAdapter) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return text, nil
}
