package tutor

import "viteroad/internal/llm"

// InsightSchema defines the JSON schema for lesson insight generation.
var InsightSchema = &llm.Schema{
	Name:        "lesson-insight",
	Description: "A short tutor insight deepening one build-tool lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"headline": map[string]any{
				"type":        "string",
				"description": "Punchy one-line takeaway (5-10 words)",
			},
			"body": map[string]any{
				"type":        "string",
				"description": "2-4 sentences going one level deeper than the lesson text",
			},
			"key_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 concrete facts or commands worth remembering (5-12 words each)",
			},
		},
		"required":             []any{"headline", "body", "key_points"},
		"additionalProperties": false,
	},
}
