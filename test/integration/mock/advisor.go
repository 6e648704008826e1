package mock

import (
	"context"
	"errors"

	"github.com/finance-ai/backend/internal/application/adapter"
)

// Advisor is a scripted adapter.AdvisorService. Scenarios set the canned
// advice or force a failure; the last request stays inspectable.
type Advisor struct {
	Available   bool
	Advice      string
	Fail        bool
	LastRequest *adapter.AdviceRequest
}

// NewAdvisor returns an available advisor with a default canned answer.
func NewAdvisor() *Advisor {
	return &Advisor{
		Available: true,
		Advice:    "Consider setting aside 20% of your income each month.",
	}
}

// Advise implements adapter.AdvisorService.
func (a *Advisor) Advise(_ context.Context, request *adapter.AdviceRequest) (string, error) {
	a.LastRequest = request
	if a.Fail {
		return "", errors.New("provider unavailable")
	}
	return a.Advice, nil
}

// IsAvailable implements adapter.AdvisorService.
func (a *Advisor) IsAvailable() bool {
	return a.Available
}

// Reset restores the default scripted behavior between scenarios.
func (a *Advisor) Reset() {
	a.Available = true
	a.Fail = false
	a.LastRequest = nil
}
