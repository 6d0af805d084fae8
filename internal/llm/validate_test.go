package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func hintSchema() *Schema {
	return &Schema{
		Name:        "test-hint",
		Description: "A single hint string.",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hint": map[string]any{
					"type":      "string",
					"minLength": float64(1),
				},
			},
			"required":             []any{"hint"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	err := validateResponse(hintSchema(), json.RawMessage(`{"hint":"Think about edge cases."}`))
	if err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejectsMissingField(t *testing.T) {
	err := validateResponse(hintSchema(), json.RawMessage(`{"tip":"wrong key"}`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseRejectsNonJSON(t *testing.T) {
	err := validateResponse(hintSchema(), json.RawMessage(`Sure! Here is your hint:`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
	if invalid.Content == nil {
		t.Error("ErrInvalidResponse should carry the raw content")
	}
}

func TestValidateResponseRejectsWrongType(t *testing.T) {
	err := validateResponse(hintSchema(), json.RawMessage(`{"hint":42}`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestPurposeRoundTrip(t *testing.T) {
	ctx := WithPurpose(t.Context(), "quiz-hint")
	if got := PurposeFrom(ctx); got != "quiz-hint" {
		t.Errorf("PurposeFrom = %q", got)
	}
	if got := PurposeFrom(t.Context()); got != "" {
		t.Errorf("PurposeFrom on bare context = %q", got)
	}
}
