// Package insight contains the AI financial-advice use cases.
package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ai/backend/internal/application/adapter"
	"github.com/finance-ai/backend/internal/application/usecase/dashboard"
	"github.com/finance-ai/backend/internal/domain/entity"
	domainerror "github.com/finance-ai/backend/internal/domain/error"
)

// advisorSystemPrompt frames the model before any ledger data is attached.
const advisorSystemPrompt = "You are a helpful financial advisor. Provide clear, " +
	"actionable advice based on the user's financial data. Be concise and practical."

// summaryTopCategories bounds how many expense categories the prompt carries.
const summaryTopCategories = 5

// GenerateInsightInput represents the input for generating financial advice.
type GenerateInsightInput struct {
	UserID   uuid.UUID
	Question string
	// Model optionally overrides the provider's default model.
	Model string
}

// GenerateInsightOutput represents the output of generating financial advice.
type GenerateInsightOutput struct {
	Advice string
}

// GenerateInsightUseCase summarizes the user's ledger and asks the configured
// advisor provider for advice grounded on that summary.
type GenerateInsightUseCase struct {
	transactionRepo adapter.TransactionRepository
	advisorService  adapter.AdvisorService
}

// NewGenerateInsightUseCase creates a new GenerateInsightUseCase instance.
func NewGenerateInsightUseCase(
	transactionRepo adapter.TransactionRepository,
	advisorService adapter.AdvisorService,
) *GenerateInsightUseCase {
	return &GenerateInsightUseCase{
		transactionRepo: transactionRepo,
		advisorService:  advisorService,
	}
}

// Execute builds the ledger summary, attaches the user's question and returns
// the provider's advice.
func (uc *GenerateInsightUseCase) Execute(ctx context.Context, input GenerateInsightInput) (*GenerateInsightOutput, error) {
	if !uc.advisorService.IsAvailable() {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeAdvisorUnavailable,
			"no ai advisor provider is configured",
			domainerror.ErrAdvisorUnavailable,
		)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	prompt := buildAdvicePrompt(transactions, input.Question)

	advice, err := uc.advisorService.Advise(ctx, &adapter.AdviceRequest{
		SystemPrompt: advisorSystemPrompt,
		Prompt:       prompt,
		Model:        input.Model,
	})
	if err != nil {
		return nil, domainerror.NewInsightError(
			domainerror.ErrCodeAdvisorFailed,
			"advisor request failed",
			fmt.Errorf("%w: %w", domainerror.ErrAdvisorRequestFailed, err),
		)
	}

	return &GenerateInsightOutput{Advice: advice}, nil
}

// buildAdvicePrompt renders the ledger summary followed by the question. An
// empty ledger still produces a valid summary with zero figures.
func buildAdvicePrompt(transactions []*entity.Transaction, question string) string {
	totals := dashboard.ComputeTotals(transactions)
	stats := dashboard.TopCategories(dashboard.ComputeCategoryStats(transactions), summaryTopCategories)

	var b strings.Builder
	b.WriteString("Financial Summary:\n")
	fmt.Fprintf(&b, "- Total Income: $%s\n", totals.TotalIncome.StringFixed(2))
	fmt.Fprintf(&b, "- Total Expenses: $%s\n", totals.TotalExpenses.StringFixed(2))
	fmt.Fprintf(&b, "- Net Savings: $%s\n", totals.NetWorth.StringFixed(2))
	fmt.Fprintf(&b, "- Number of Transactions: %d\n", len(transactions))
	fmt.Fprintf(&b, "- Average Transaction: $%s\n", averageTransaction(transactions).StringFixed(2))

	if len(stats) > 0 {
		b.WriteString("\nTop Expense Categories:\n")
		for _, s := range stats {
			fmt.Fprintf(&b, "- %s: $%s (%d transactions)\n", s.Category, s.Total.StringFixed(2), s.Count)
		}
	}

	b.WriteString("\nQuestion: ")
	b.WriteString(question)
	return b.String()
}

// averageTransaction is the mean of the signed amounts, zero for an empty set.
func averageTransaction(transactions []*entity.Transaction) decimal.Decimal {
	if len(transactions) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, t := range transactions {
		sum = sum.Add(t.Amount)
	}
	return sum.Div(decimal.NewFromInt(int64(len(transactions)))).Round(2)
}
