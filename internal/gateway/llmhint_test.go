package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/learncheck/learncheck/internal/hints"
)

type scriptedGenerator struct {
	hint string
	err  error
}

func (g *scriptedGenerator) Generate(_ context.Context, _ hints.GenerateInput) (string, error) {
	return g.hint, g.err
}

func TestLLMHintOverride(t *testing.T) {
	inner := &Mock{}
	gw := WithLLMHints(inner, &scriptedGenerator{hint: "Consider the base case."})

	hint, err := gw.GenerateHint(context.Background(), HintParams{QuestionID: "q1"})
	if err != nil {
		t.Fatalf("GenerateHint: %v", err)
	}
	if hint != "Consider the base case." {
		t.Errorf("hint = %q", hint)
	}
	if inner.HintCalls != 0 {
		t.Error("backend should not be called when local generation succeeds")
	}
}

func TestLLMHintFallsBackToBackend(t *testing.T) {
	inner := &Mock{
		GenerateHintFunc: func(context.Context, HintParams) (string, error) {
			return "backend hint", nil
		},
	}
	gw := WithLLMHints(inner, &scriptedGenerator{err: errors.New("no key")})

	hint, err := gw.GenerateHint(context.Background(), HintParams{QuestionID: "q1"})
	if err != nil {
		t.Fatalf("GenerateHint: %v", err)
	}
	if hint != "backend hint" {
		t.Errorf("hint = %q", hint)
	}
	if inner.HintCalls != 1 {
		t.Errorf("backend calls = %d, want 1", inner.HintCalls)
	}
}
