// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/finance-ai/backend/internal/application/adapter"
)

// openRouterBaseURL is OpenRouter's OpenAI-compatible endpoint.
const openRouterBaseURL = "https://openrouter.ai/api/v1"

// defaultOpenRouterModel is used when the request does not name a model.
const defaultOpenRouterModel = "microsoft/wizardlm-2-8x22b"

// openRouterModels are the free-tier models exposed to clients. A request
// naming a model outside this list falls back to the default.
var openRouterModels = map[string]struct{}{
	"microsoft/wizardlm-2-8x22b":     {},
	"meta-llama/llama-3-8b-instruct": {},
	"mistralai/mistral-7b-instruct":  {},
	"google/gemma-7b-it":             {},
}

// OpenRouterService implements the adapter.AdvisorService against OpenRouter.
type OpenRouterService struct {
	apiKey string
	client *openai.Client
}

// NewOpenRouterService creates a new OpenRouter advisor instance.
func NewOpenRouterService(apiKey string) *OpenRouterService {
	service := &OpenRouterService{
		apiKey: apiKey,
	}
	if apiKey != "" {
		config := openai.DefaultConfig(apiKey)
		config.BaseURL = openRouterBaseURL
		service.client = openai.NewClientWithConfig(config)
	}
	return service
}

// IsAvailable checks if the OpenRouter service is configured with an API key.
func (s *OpenRouterService) IsAvailable() bool {
	return s.apiKey != ""
}

// Advise sends the prompt to OpenRouter and returns the generated advice text.
func (s *OpenRouterService) Advise(ctx context.Context, request *adapter.AdviceRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("openrouter service is not configured")
	}

	model := request.Model
	if _, ok := openRouterModels[model]; !ok {
		model = defaultOpenRouterModel
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if request.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: request.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: request.Prompt,
	})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from openrouter")
	}

	advice := strings.TrimSpace(resp.Choices[0].Message.Content)
	if advice == "" {
		return "", fmt.Errorf("empty response from openrouter")
	}
	return advice, nil
}
