package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"google.golang.org/genai"
)

// GeminiService implements the completion capability against the Gemini API.
// The client is created per call because API keys arrive with each request.
type GeminiService struct {
	apiKey string
}

func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{apiKey: apiKey}
}

func (s *GeminiService) newClient(ctx context.Context) (*genai.Client, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}

func (s *GeminiService) Complete(ctx context.Context, systemPrompt, userPrompt, model string, opts ...CompletionOption) (string, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	if strings.TrimSpace(userPrompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	settings := ApplyCompletionOptions(opts)

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	client, err := s.newClient(timeoutCtx)
	if err != nil {
		return "", err
	}

	temperature := float32(0.1)
	if settings.Temperature != nil {
		temperature = float32(*settings.Temperature)
	}
	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
	}
	if systemPrompt != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	result, err := client.Models.GenerateContent(timeoutCtx, model, genai.Text(userPrompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", fmt.Errorf("invalid response: %w", err)
	}
	return result.Text(), nil
}

// GenerateEmbedding returns an embedding vector for the given text, used for
// duplicate-upload detection on task records.
func (s *GeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return nil, fmt.Errorf("text for embedding cannot be empty")
	}
	if len(trimmedText) > 10000 {
		trimmedText = trimmedText[:10000]
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	client, err := s.newClient(timeoutCtx)
	if err != nil {
		return nil, err
	}

	content := []*genai.Content{genai.NewContentFromText(trimmedText, genai.RoleUser)}
	result, err := client.Models.EmbedContent(timeoutCtx, "gemini-embedding-001", content, nil)
	if err != nil {
		return nil, fmt.Errorf("generate embedding failed: %w", err)
	}
	return validateEmbeddingResponse(result)
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}

func validateEmbeddingResponse(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}
	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	embeddings := resp.Embeddings[0].Values
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}
	for i, val := range embeddings {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}
	return embeddings, nil
}
