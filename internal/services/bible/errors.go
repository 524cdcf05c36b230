// File: internal/services/bible/errors.go
package bible

import "fmt"

type ErrorType string

const (
	ErrTypeConfig     ErrorType = "CONFIG"
	ErrTypeNetwork    ErrorType = "NETWORK"
	ErrTypeProvider   ErrorType = "PROVIDER"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeValidation ErrorType = "VALIDATION"
)

type BibleError struct {
	Type    ErrorType
	Code    int
	Message string
	Cause   error
}

func (e *BibleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Bible %s error: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("Bible %s error: %s", e.Type, e.Message)
}

func (e *BibleError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is a passage-not-found failure, so
// handlers can map it to a 404 instead of a 502.
func IsNotFound(err error) bool {
	be, ok := err.(*BibleError)
	return ok && be.Type == ErrTypeNotFound
}
