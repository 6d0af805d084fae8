package gateway

import (
	"context"
	"fmt"
	"os"

	"github.com/learncheck/learncheck/internal/hints"
	"github.com/learncheck/learncheck/internal/quiz"
)

// LLMHintGateway decorates a Gateway, serving hints from a local LLM
// generator instead of the backend hint endpoint. The backend remains
// the fallback when generation fails. All other operations pass through.
type LLMHintGateway struct {
	Gateway
	generator hints.Generator
}

// WithLLMHints wraps a Gateway so that GenerateHint runs against the
// given generator first.
func WithLLMHints(gw Gateway, gen hints.Generator) *LLMHintGateway {
	return &LLMHintGateway{Gateway: gw, generator: gen}
}

func (g *LLMHintGateway) GenerateHint(ctx context.Context, params HintParams) (string, error) {
	hint, err := g.generator.Generate(ctx, hints.GenerateInput{
		Question: quiz.Question{
			ID:       params.QuestionID,
			Question: params.QuestionText,
			Options:  params.Options,
		},
		Selected:    params.StudentAnswerIDs,
		ContextText: params.ContextText,
	})
	if err == nil {
		return hint, nil
	}

	fmt.Fprintf(os.Stderr, "warning: local hint generation failed, falling back to backend: %v\n", err)
	return g.Gateway.GenerateHint(ctx, params)
}
