package hints

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/learncheck/learncheck/internal/llm"
	"github.com/learncheck/learncheck/internal/quiz"
)

func sampleInput() GenerateInput {
	return GenerateInput{
		Question: quiz.Question{
			ID:       "q1",
			Question: "Which HTTP methods are idempotent?",
			Options: []quiz.Option{
				{ID: "a", Text: "GET", IsCorrect: true},
				{ID: "b", Text: "POST"},
				{ID: "c", Text: "PUT", IsCorrect: true},
			},
		},
		Selected:    []string{"b"},
		ContextText: "Idempotent methods can be repeated safely.",
	}
}

func TestGenerateReturnsHint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"Think about what happens when you repeat the request."}`),
	})
	g := New(mock, DefaultConfig())

	hint, err := g.Generate(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if hint != "Think about what happens when you repeat the request." {
		t.Errorf("hint = %q", hint)
	}
}

func TestGeneratePromptContents(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"x"}`),
	})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), sampleInput()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d", len(mock.Calls))
	}
	req := mock.Calls[0]

	if req.Schema != HintSchema {
		t.Error("request should carry the hint schema")
	}
	if !strings.Contains(req.Prompt, "Which HTTP methods are idempotent?") {
		t.Error("prompt missing question text")
	}
	if !strings.Contains(req.Prompt, "POST") {
		t.Error("prompt missing selected option text")
	}
	if !strings.Contains(req.Prompt, "Idempotent methods can be repeated safely.") {
		t.Error("prompt missing lesson material")
	}
	// The prompt lists option texts, never which ones are correct.
	if strings.Contains(strings.ToLower(req.Prompt), "correct") {
		t.Error("prompt should not mention correctness")
	}
}

func TestGenerateEmptySelection(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"x"}`),
	})
	g := New(mock, DefaultConfig())

	in := sampleInput()
	in.Selected = nil
	if _, err := g.Generate(context.Background(), in); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Prompt, "nothing (no options selected)") {
		t.Error("prompt should note the empty selection")
	}
}

func TestGeneratePropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), sampleInput())
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %v, want ErrProviderUnavailable", err)
	}
}

func TestGenerateRejectsBlankHint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"hint":"   "}`),
	})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), sampleInput()); err == nil {
		t.Fatal("expected error for blank hint")
	}
}
