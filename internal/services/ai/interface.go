// File: internal/services/ai/interface.go
package ai

import "context"

// CompletionProvider produces chat completions. Implementations wrap a
// concrete backend; services depend on this interface so tests can
// substitute a canned provider.
type CompletionProvider interface {
	GetCompletion(ctx context.Context, prompt string) (string, error)
	HealthCheck(ctx context.Context) error
}
