package llm

import (
	"context"
	"os"
	"time"

	"github.com/learncheck/learncheck/internal/store"
)

// RequestRecorder receives one record per LLM API call. store.EventRepo
// satisfies it.
type RequestRecorder interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LoggingProvider is a decorator that records every request to the
// event log with latency, token usage and outcome.
type LoggingProvider struct {
	inner    Provider
	provider string
	recorder RequestRecorder
}

// WithLogging wraps a Provider so that every call is recorded. The
// provider name labels the records ("anthropic", "openai", ...).
func WithLogging(p Provider, providerName string, recorder RequestRecorder) Provider {
	return &LoggingProvider{inner: p, provider: providerName, recorder: recorder}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}

	// Logging failures must not break the request itself. The original
	// context may already be cancelled, so record with a fresh one.
	logCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if logErr := l.recorder.AppendLLMRequest(logCtx, data); logErr != nil {
		os.Stderr.WriteString("warning: failed to record llm request: " + logErr.Error() + "\n")
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
