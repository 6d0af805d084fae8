package hints

import "github.com/learncheck/learncheck/internal/llm"

// HintSchema defines the JSON schema for LLM hint responses.
var HintSchema = &llm.Schema{
	Name:        "quiz-hint",
	Description: "A single guiding hint for a learner who answered a quiz question incorrectly",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"minLength":   float64(1),
				"description": "One or two sentences nudging the learner toward the right reasoning without stating the answer",
			},
		},
		"required":             []any{"hint"},
		"additionalProperties": false,
	},
}
