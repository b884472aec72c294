package analysis

import "github.com/abhisek/arogya/internal/llm"

// analysisSchema is the JSON Schema the LLM's analysis must conform to.
// Providers enforce it via structured output; responses are validated
// again locally before use.
func analysisSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "symptom-analysis",
		Description: "Preliminary health analysis of reported symptoms",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"urgencyLevel": map[string]any{
					"type": "string",
					"enum": []any{"low", "moderate", "high", "emergency"},
				},
				"possibleConditions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"condition":   map[string]any{"type": "string"},
							"probability": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
							"description": map[string]any{"type": "string"},
						},
						"required": []any{"condition", "probability", "description"},
					},
				},
				"recommendations": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"action": map[string]any{"type": "string"},
							"priority": map[string]any{
								"type": "string",
								"enum": []any{"high", "medium", "low"},
							},
						},
						"required": []any{"action", "priority"},
					},
				},
				"whenToSeekHelp": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"disclaimer": map[string]any{"type": "string"},
			},
			"required": []any{"urgencyLevel", "possibleConditions", "recommendations", "whenToSeekHelp", "disclaimer"},
		},
	}
}
