package llm

import "context"

type purposeKey struct{}

// WithPurpose tags the context with a short label describing what the
// request is for, e.g. "quiz-hint". The logging decorator records it.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose label from the context, or "" if unset.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return ""
}
