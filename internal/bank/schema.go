package bank

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionRecordSchema describes a well-formed dataset record before
// sanitation. Lint reports records that miss it; Sanitize repairs them
// regardless.
var questionRecordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"statement": map[string]any{"type": "string", "minLength": 1},
		"question":  map[string]any{"type": "string", "minLength": 1},
		"options": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items":    map[string]any{"type": []any{"string", "number"}},
		},
		"answer":      map[string]any{"type": []any{"string", "number"}},
		"type":        map[string]any{"type": "string"},
		"explanation": map[string]any{"type": "string"},
		"id":          map[string]any{"type": "string"},
	},
	"required": []any{"options", "answer"},
	"anyOf": []any{
		map[string]any{"required": []any{"statement"}},
		map[string]any{"required": []any{"question"}},
	},
}

var (
	compileSchemaOnce sync.Once
	compiledSchema    *jsonschema.Schema
	compileSchemaErr  error
)

func recordSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		defBytes, err := json.Marshal(questionRecordSchema)
		if err != nil {
			compileSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-record.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			compileSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileSchemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileSchemaErr
}

// Lint validates every record in a raw dataset value against the
// canonical record schema and returns one finding per offending record.
// Findings are advisory: Normalize accepts and repairs these records
// anyway.
func Lint(v any) ([]string, error) {
	if _, err := recordSchema(); err != nil {
		return nil, err
	}

	var findings []string
	switch data := v.(type) {
	case map[string]any:
		lowered := make(map[string]any, len(data))
		for k, val := range data {
			lowered[strings.ToLower(k)] = val
		}
		if hasTierKey(lowered) {
			for _, t := range Tiers {
				if arr, ok := lowered[string(t)].([]any); ok {
					findings = append(findings, lintRecords(string(t), arr)...)
				}
			}
			return findings, nil
		}
		if arr, ok := lowered["questions"].([]any); ok {
			return lintRecords("questions", arr), nil
		}
		return []string{"dataset: unrecognized object shape (no tier keys, no questions array)"}, nil
	case []any:
		return lintRecords("questions", data), nil
	default:
		return []string{"dataset: not an object or array"}, nil
	}
}

func lintRecords(section string, records []any) []string {
	schema, err := recordSchema()
	if err != nil {
		return nil
	}

	var findings []string
	for i, rec := range records {
		if err := schema.Validate(rec); err != nil {
			findings = append(findings, fmt.Sprintf("%s[%d]: %s", section, i, firstLine(err.Error())))
		}
	}
	return findings
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
