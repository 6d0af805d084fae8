package hints

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/learncheck/learncheck/internal/llm"
	"github.com/learncheck/learncheck/internal/quiz"
)

// GenerateInput carries everything the generator needs to produce a hint.
type GenerateInput struct {
	// Question is the question the learner got wrong.
	Question quiz.Question

	// Selected holds the option IDs the learner chose.
	Selected []string

	// ContextText is the lesson material the quiz was built from. Optional.
	ContextText string
}

// Generator produces a hint for an incorrectly answered question.
type Generator interface {
	Generate(ctx context.Context, in GenerateInput) (string, error)
}

// Config bounds LLM hint generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard hint generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   300,
		Temperature: 0.7,
	}
}

// LLMGenerator implements Generator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// hintOutput is the raw LLM response shape.
type hintOutput struct {
	Hint string `json:"hint"`
}

// Generate produces a hint for the given question and selection.
func (g *LLMGenerator) Generate(ctx context.Context, in GenerateInput) (string, error) {
	ctx = llm.WithPurpose(ctx, "quiz-hint")

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(in),
		Schema:      HintSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("hint generation failed: %w", err)
	}

	var raw hintOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return "", fmt.Errorf("failed to parse hint response: %w", err)
	}

	hint := strings.TrimSpace(raw.Hint)
	if hint == "" {
		return "", fmt.Errorf("empty hint in response")
	}

	return hint, nil
}
