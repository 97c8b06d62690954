package catalog

// JSON schemas for the embedded catalog files. The catalogs are static data
// compiled into the binary, but they are still validated at load so a bad
// edit fails fast at startup instead of surfacing as a nil task mid-session.

var categoryEnum = []any{
	"threat-detection",
	"vulnerability-scan",
	"secure-coding",
	"incident-response",
}

var exercisesSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "string", "minLength": 1},
			"title":    map[string]any{"type": "string", "minLength": 1},
			"scenario": map[string]any{"type": "string", "minLength": 1},
			"answer":   map[string]any{"type": "string", "minLength": 1},
		},
		"required":             []any{"id", "title", "scenario", "answer"},
		"additionalProperties": false,
	},
}

var challengesSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "string", "minLength": 1},
			"category":    map[string]any{"type": "string", "enum": categoryEnum},
			"title":       map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string", "minLength": 1},
			"target":      map[string]any{"type": "integer", "minimum": 1},
			"xpReward":    map[string]any{"type": "integer", "minimum": 0},
		},
		"required":             []any{"id", "category", "title", "description", "target", "xpReward"},
		"additionalProperties": false,
	},
}

var tracksSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category":    map[string]any{"type": "string", "enum": categoryEnum},
			"name":        map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string", "minLength": 1},
			"tasks": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "string", "minLength": 1},
						"title":       map[string]any{"type": "string", "minLength": 1},
						"description": map[string]any{"type": "string", "minLength": 1},
						"difficulty":  map[string]any{"type": "string", "enum": []any{"Easy", "Medium", "Hard"}},
						"xpReward":    map[string]any{"type": "integer", "minimum": 0},
					},
					"required":             []any{"id", "title", "description", "difficulty", "xpReward"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"category", "name", "description", "tasks"},
		"additionalProperties": false,
	},
}

var modulesSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "integer", "minimum": 1},
			"title":       map[string]any{"type": "string", "minLength": 1},
			"description": map[string]any{"type": "string", "minLength": 1},
			"duration":    map[string]any{"type": "string", "minLength": 1},
			"difficulty":  map[string]any{"type": "string", "enum": []any{"Beginner", "Intermediate", "Advanced"}},
		},
		"required":             []any{"id", "title", "description", "duration", "difficulty"},
		"additionalProperties": false,
	},
}
