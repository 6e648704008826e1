// Package error defines domain-specific errors for the FinanceAI application.
package error

import "errors"

// ErrStoreUnavailable is returned when the persistence layer cannot complete
// a read or write. It is never retried by the engines; an append either fully
// succeeds or leaves no record behind.
var ErrStoreUnavailable = errors.New("store unavailable")
