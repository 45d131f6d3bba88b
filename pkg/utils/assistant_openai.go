package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIAssistantClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIAssistantClient(apiKey, model string) AssistantClientInterface {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAssistantClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIAssistantClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	return c.complete(ctx, system, prompt, nil)
}

func (c *OpenAIAssistantClient) CompleteJSON(ctx context.Context, system, prompt string) (string, error) {
	format := &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONObject,
	}
	content, err := c.complete(ctx, system, prompt, format)
	if err != nil {
		return "", err
	}
	return CleanJSONResponse(content), nil
}

func (c *OpenAIAssistantClient) complete(ctx context.Context, system, prompt string, format *openai.ChatCompletionResponseFormat) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: format,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
