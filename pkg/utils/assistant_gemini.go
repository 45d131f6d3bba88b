package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiAssistantClient struct {
	client *genai.Client
	model  string
}

func NewGeminiAssistantClient(apiKey, model string) (AssistantClientInterface, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAssistantClient{client: client, model: model}, nil
}

func (c *GeminiAssistantClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(0.4)
	return c.generate(ctx, m, system, prompt)
}

func (c *GeminiAssistantClient) CompleteJSON(ctx context.Context, system, prompt string) (string, error) {
	m := c.client.GenerativeModel(c.model)
	// Force JSON-only output so brace-matching hacks stay unnecessary.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetTopP(0.5)
	m.SetTopK(20)

	content, err := c.generate(ctx, m, system, prompt)
	if err != nil {
		return "", err
	}
	content = CleanJSONResponse(content)
	if !json.Valid([]byte(content)) {
		return "", fmt.Errorf("gemini: response is not valid JSON")
	}
	return content, nil
}

func (c *GeminiAssistantClient) generate(ctx context.Context, m *genai.GenerativeModel, system, prompt string) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := m.GenerateContent(ctxWithTimeout, genai.Text(system+"\n\n"+prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
