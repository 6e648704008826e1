// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/finance-ai/backend/internal/application/adapter"
)

// defaultGeminiModel is used when the request does not name a model.
const defaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiService implements the adapter.AdvisorService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini advisor instance.
func NewGeminiService(apiKey string) *GeminiService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: defaultGeminiModel,
	}
}

// IsAvailable checks if the Gemini service is configured with an API key.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Advise sends the prompt to Gemini and returns the generated advice text.
func (s *GeminiService) Advise(ctx context.Context, request *adapter.AdviceRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	modelName := request.Model
	if modelName == "" {
		modelName = s.modelName
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	if request.SystemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(request.SystemPrompt)},
		}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(request.Prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	advice := extractText(resp)
	if advice == "" {
		return "", fmt.Errorf("empty response from gemini")
	}
	return advice, nil
}

// extractText concatenates the text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
