package llm

import (
	"testing"
)

func TestGeminiAliases(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := canonicalModel(tt.input, geminiAliases)
		if got != tt.expected {
			t.Errorf("canonicalModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	// The shape the insight schema uses: an object of strings with an
	// enum-bound kind and a list of follow-up topics.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{"type": "string"},
			"body":     map[string]any{"type": "string", "description": "One short paragraph."},
			"kind":     map[string]any{"type": "string", "enum": []any{"concept", "pitfall", "tip"}},
			"related": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"headline", "body"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["headline"].Type != "STRING" {
		t.Fatalf("expected STRING for headline, got %s", schema.Properties["headline"].Type)
	}
	if schema.Properties["body"].Description != "One short paragraph." {
		t.Fatalf("description not carried over: %q", schema.Properties["body"].Description)
	}
	if len(schema.Properties["kind"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["kind"].Enum))
	}
	if schema.Properties["related"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for related, got %s", schema.Properties["related"].Type)
	}
	if schema.Properties["related"].Items.Type != "STRING" {
		t.Fatalf("expected STRING items for related, got %s", schema.Properties["related"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
