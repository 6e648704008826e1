// Package error defines domain-specific errors for the FinanceAI application.
package error

import "errors"

// Insight domain errors.
var (
	// ErrAdvisorUnavailable is returned when no AI advisor provider is configured.
	ErrAdvisorUnavailable = errors.New("ai advisor is not configured")

	// ErrAdvisorRequestFailed is returned when the advisor provider rejects a request.
	ErrAdvisorRequestFailed = errors.New("ai advisor request failed")

	// ErrUnknownInsightTopic is returned when a quick-insight topic is not recognized.
	ErrUnknownInsightTopic = errors.New("unknown insight topic")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	// Provider errors (01XXXX)
	ErrCodeAdvisorUnavailable InsightErrorCode = "INS-010001"
	ErrCodeAdvisorFailed      InsightErrorCode = "INS-010002"

	// Request errors (02XXXX)
	ErrCodeUnknownTopic InsightErrorCode = "INS-020001"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code    InsightErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
