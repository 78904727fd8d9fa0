package service

import (
	"context"
	"fmt"
)

const (
	ModelTypeOpenAI   = "OpenAI"
	ModelTypeDeepSeek = "DeepSeek"
	ModelTypeGemini   = "Gemini"

	DefaultModel = "gpt-4o"
)

// Backend is the uniform completion capability every vendor implements.
// Calls carry no internal retry: a single failure is reported to the caller,
// which decides whether the loss is tolerable.
type Backend interface {
	Complete(ctx context.Context, systemPrompt, userPrompt, model string, opts ...CompletionOption) (string, error)
}

// CompletionSettings holds per-call tuning. A nil Temperature leaves the
// vendor default in place.
type CompletionSettings struct {
	Temperature *float64
}

type CompletionOption func(*CompletionSettings)

func WithTemperature(t float64) CompletionOption {
	return func(s *CompletionSettings) { s.Temperature = &t }
}

func ApplyCompletionOptions(opts []CompletionOption) CompletionSettings {
	var s CompletionSettings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// ResolveBackend selects a vendor backend by the request's model_type
// discriminator. API keys are supplied per request and never persisted.
func ResolveBackend(modelType, apiKey string) (Backend, error) {
	switch modelType {
	case ModelTypeOpenAI:
		return NewChatService(apiKey, openAIBaseURL), nil
	case ModelTypeDeepSeek:
		return NewChatService(apiKey, deepSeekBaseURL), nil
	case ModelTypeGemini:
		return NewGeminiService(apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported model_type %q", modelType)
	}
}
