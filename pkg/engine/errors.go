package engine

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidConfig indicates invalid engine configuration.
	ErrInvalidConfig = errors.New("invalid engine configuration")

	// ErrNilRepository indicates the engine was constructed without a rule
	// repository.
	ErrNilRepository = errors.New("rule repository is nil")
)

// LookupError indicates the rule repository failed during a translate call.
// No fallback text is safe without a candidate pool, so this is returned to
// the caller rather than recovered.
type LookupError struct {
	Key     string
	Context string
	Cause   error
}

// Error returns the error message.
func (e *LookupError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("lookup of %q (context %q) failed: %v", e.Key, e.Context, e.Cause)
	}
	return fmt.Sprintf("lookup of %q failed: %v", e.Key, e.Cause)
}

// Unwrap returns the underlying repository error.
func (e *LookupError) Unwrap() error {
	return e.Cause
}
