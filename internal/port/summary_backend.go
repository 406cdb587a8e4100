package port

import "context"

// SummaryBackend abstracts the generative-text backend. Complete sends one
// built prompt and returns the parsed structured reply, or a classified
// terminal error once its internal retry budget is exhausted.
type SummaryBackend interface {
	Complete(ctx context.Context, prompt string) (map[string]any, error)
}
