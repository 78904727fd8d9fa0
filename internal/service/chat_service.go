package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	openAIBaseURL   = "https://api.openai.com/v1"
	deepSeekBaseURL = "https://api.deepseek.com"

	requestTimeout = 90 * time.Second
)

// ChatService talks to any OpenAI-compatible chat-completions endpoint.
// OpenAI and DeepSeek differ only in base URL.
type ChatService struct {
	apiKey  string
	baseURL string
	client  *resty.Client
}

func NewChatService(apiKey, baseURL string) *ChatService {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)
	return &ChatService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

func (s *ChatService) Complete(ctx context.Context, systemPrompt, userPrompt, model string, opts ...CompletionOption) (string, error) {
	if model == "" {
		model = DefaultModel
	}
	settings := ApplyCompletionOptions(opts)

	body := map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
	}
	if settings.Temperature != nil {
		body["temperature"] = *settings.Temperature
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion request failed: %s: %s", resp.Status(), gjson.Get(resp.String(), "error.message").String())
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if content == "" {
		return "", fmt.Errorf("empty response from chat completion")
	}
	return content, nil
}
