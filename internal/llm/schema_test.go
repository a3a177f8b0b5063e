package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func challengeSchema() *Schema {
	return &Schema{
		Name:        "challenge_hint",
		Description: "A hint for a stuck lesson challenge.",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hint": map[string]any{"type": "string"},
				"challenge_type": map[string]any{
					"type": "string",
					"enum": []any{"css", "js", "html"},
				},
			},
			"required":             []any{"hint", "challenge_type"},
			"additionalProperties": false,
		},
	}
}

func TestSchemaCheckAcceptsValidDocument(t *testing.T) {
	s := challengeSchema()
	raw := json.RawMessage(`{"hint":"Check the import path.","challenge_type":"js"}`)
	if err := s.Check(raw); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
}

func TestSchemaCheckRejectsNonJSON(t *testing.T) {
	s := challengeSchema()
	err := s.Check(json.RawMessage(`Sure! Here is your hint:`))
	var bad *ErrBadOutput
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrBadOutput, got: %T (%v)", err, err)
	}
	if string(bad.Raw) != `Sure! Here is your hint:` {
		t.Fatalf("raw output not preserved: %s", bad.Raw)
	}
}

func TestSchemaCheckRejectsSchemaViolation(t *testing.T) {
	s := challengeSchema()
	// Missing hint and an out-of-enum challenge type.
	err := s.Check(json.RawMessage(`{"challenge_type":"rust"}`))
	var bad *ErrBadOutput
	if !errors.As(err, &bad) {
		t.Fatalf("expected ErrBadOutput, got: %T (%v)", err, err)
	}
}

func TestSchemaCompilesOnce(t *testing.T) {
	s := challengeSchema()
	doc := json.RawMessage(`{"hint":"Use a relative path.","challenge_type":"css"}`)
	for i := 0; i < 3; i++ {
		if err := s.Check(doc); err != nil {
			t.Fatalf("check %d failed: %v", i, err)
		}
	}
	if s.compiled == nil {
		t.Fatal("schema was never compiled")
	}
}

func TestSchemaCheckReportsBadDefinition(t *testing.T) {
	s := &Schema{
		Name: "broken",
		Definition: map[string]any{
			"type": 42, // type must be a string or list of strings
		},
	}
	if err := s.Check(json.RawMessage(`{}`)); err == nil {
		t.Fatal("expected an error for an uncompilable definition")
	}
}
