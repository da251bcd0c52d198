// Package openai implements the vision.Analyzer boundary over any
// OpenAI-compatible chat completions endpoint, including Gemini's and
// Ollama's compatibility layers.
package openai

import (
	"context"
	"encoding/base64"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/vision"
)

type OpenAIAnalyzer struct {
	client *goopenai.Client
	model  string
}

// NewOpenAIAnalyzer builds an analyzer for the given endpoint. An empty
// baseURL targets the official OpenAI API.
func NewOpenAIAnalyzer(apiKey, baseURL, model string) *OpenAIAnalyzer {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIAnalyzer{
		client: goopenai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (a *OpenAIAnalyzer) Generate(ctx context.Context, prompt string, images []vision.Image) (string, error) {
	parts := make([]goopenai.ChatMessagePart, 0, len(images)+1)
	parts = append(parts, goopenai.ChatMessagePart{
		Type: goopenai.ChatMessagePartTypeText,
		Text: prompt,
	})
	for _, img := range images {
		parts = append(parts, goopenai.ChatMessagePart{
			Type: goopenai.ChatMessagePartTypeImageURL,
			ImageURL: &goopenai.ChatMessageImageURL{
				URL: fmt.Sprintf("data:%s;base64,%s", img.MimeType, base64.StdEncoding.EncodeToString(img.Data)),
			},
		})
	}

	resp, err := a.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:     a.model,
		MaxTokens: 1024,
		Messages: []goopenai.ChatCompletionMessage{{
			Role:         goopenai.ChatMessageRoleUser,
			MultiContent: parts,
		}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call openai-compatible endpoint: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
