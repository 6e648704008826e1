// Package insight contains the AI financial-advice use cases.
package insight

import (
	"context"

	"github.com/google/uuid"

	domainerror "github.com/finance-ai/backend/internal/domain/error"
)

// Quick-insight topics map to canned questions so clients can offer one-tap
// advice without composing a prompt.
const (
	TopicSpendingAnalysis = "spending_analysis"
	TopicSavingTips       = "saving_tips"
	TopicBudgetPlan       = "budget_plan"
)

var quickQuestions = map[string]string{
	TopicSpendingAnalysis: "Analyze my spending patterns and point out anything unusual or worth attention.",
	TopicSavingTips:       "Based on my spending, suggest three concrete ways I could save more money.",
	TopicBudgetPlan:       "Suggest a simple monthly budget based on my income and spending habits.",
}

// QuickInsightInput represents the input for a canned-topic insight.
type QuickInsightInput struct {
	UserID uuid.UUID
	Topic  string
}

// QuickInsightUseCase resolves a topic to its canned question and delegates
// to the advice generator.
type QuickInsightUseCase struct {
	generate *GenerateInsightUseCase
}

// NewQuickInsightUseCase creates a new QuickInsightUseCase instance.
func NewQuickInsightUseCase(generate *GenerateInsightUseCase) *QuickInsightUseCase {
	return &QuickInsightUseCase{
		generate: generate,
	}
}

// Execute generates advice for one of the predefined topics.
func (uc *QuickInsightUseCase) Execute(ctx context.Context, input QuickInsightInput) (*GenerateInsightOutput, error) {
	question, ok := quickQuestions[input.Topic]
	if !ok {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeUnknownTopic,
			"unknown insight topic",
			domainerror.ErrUnknownInsightTopic,
		)
	}

	return uc.generate.Execute(ctx, GenerateInsightInput{
		UserID:   input.UserID,
		Question: question,
	})
}
