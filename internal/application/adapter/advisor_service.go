// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// AdviceRequest represents a request for financial advice from an LLM provider.
type AdviceRequest struct {
	// SystemPrompt frames the model as a financial advisor.
	SystemPrompt string
	// Prompt carries the user-facing question plus the ledger summary.
	Prompt string
	// Model optionally overrides the provider's default model.
	Model string
}

// AdvisorService defines the interface for AI financial advice generation.
type AdvisorService interface {
	// Advise sends the prompt to the configured provider and returns the
	// generated advice text.
	Advise(ctx context.Context, request *AdviceRequest) (string, error)

	// IsAvailable checks if the advisor is configured with credentials.
	IsAvailable() bool
}
