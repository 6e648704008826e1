// Package error defines domain-specific errors for the FinanceAI application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidCurrentAmount is returned when the current amount is negative.
	ErrInvalidCurrentAmount = errors.New("invalid current amount")

	// ErrInvalidTargetDate is returned when the target date is missing or unparsable.
	ErrInvalidTargetDate = errors.New("invalid target date")

	// ErrUnauthorizedGoalAccess is returned when user is not authorized to access a goal.
	ErrUnauthorizedGoalAccess = errors.New("unauthorized access to goal")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount    GoalErrorCode = "GOL-010002"
	ErrCodeInvalidCurrentAmount   GoalErrorCode = "GOL-010003"
	ErrCodeInvalidTargetDate      GoalErrorCode = "GOL-010004"
	ErrCodeUnauthorizedGoalAccess GoalErrorCode = "GOL-010005"
	ErrCodeMissingGoalFields      GoalErrorCode = "GOL-010006"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
