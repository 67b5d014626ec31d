package bank

import (
	"encoding/json"
	"strings"
)

// Sanitize repairs one arbitrary decoded JSON value into a canonical
// Question. Returns ok=false when v is not an object; every object input
// yields a Question with at least one option and a non-nil answer.
//
// Repair rules, applied in order:
//  1. A missing "statement" falls back to "question".
//  2. A string "options" is re-parsed as a JSON array after swapping
//     single quotes for double quotes; on failure it becomes a
//     one-element array holding the raw string.
//  3. Missing/empty/non-array options are seeded from the answer, or
//     ["N/A"] when there is no answer either.
//  4. A missing answer defaults to the first option.
//  5. A missing type is inferred from the statement and explanation.
//  6. Statement and options are coerced to trimmed strings; a numeric
//     answer stays numeric, anything else is coerced to a trimmed string.
func Sanitize(v any) (Question, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Question{}, false
	}

	var q Question
	q.ID = coerceString(obj["id"])
	q.Explanation = coerceString(obj["explanation"])

	statement := obj["statement"]
	if coerceString(statement) == "" {
		statement = obj["question"]
	}
	q.Statement = coerceString(statement)

	answer, hasAnswer := obj["answer"]
	if answer == nil {
		hasAnswer = false
	}

	q.Options = repairOptions(obj["options"], answer, hasAnswer)

	if !hasAnswer {
		answer = q.Options[0]
	}
	if f, isNum := answer.(float64); isNum {
		q.Answer = f
	} else {
		q.Answer = coerceString(answer)
	}

	q.Type = Category(strings.ToLower(coerceString(obj["type"])))
	if q.Type == "" {
		q.Type = Classify(q.Statement, q.Explanation)
	}

	return q, true
}

// repairOptions coerces the raw options value into a non-empty []string.
func repairOptions(raw any, answer any, hasAnswer bool) []string {
	switch opts := raw.(type) {
	case string:
		// Pseudo-array like "['4','8','12']" from sloppy exporters.
		var parsed []any
		if err := json.Unmarshal([]byte(strings.ReplaceAll(opts, "'", `"`)), &parsed); err != nil {
			return []string{strings.TrimSpace(opts)}
		}
		if len(parsed) > 0 {
			return coerceAll(parsed)
		}
		// Parsed to an empty array; fall through to the answer seeding.
	case []any:
		if len(opts) > 0 {
			return coerceAll(opts)
		}
	}

	if hasAnswer {
		return []string{coerceString(answer)}
	}
	return []string{"N/A"}
}

func coerceAll(vals []any) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = coerceString(v)
	}
	return out
}

// Canonicalize re-applies the sanitizer's coercions to an already-typed
// Question. Sanitizer output is a fixed point: canonicalizing it again
// changes nothing.
func Canonicalize(q Question) Question {
	q.Statement = strings.TrimSpace(q.Statement)
	if len(q.Options) == 0 {
		if q.Answer != nil {
			q.Options = []string{coerceString(q.Answer)}
		} else {
			q.Options = []string{"N/A"}
		}
	}
	opts := make([]string, len(q.Options))
	for i, o := range q.Options {
		opts[i] = strings.TrimSpace(o)
	}
	q.Options = opts
	if q.Answer == nil {
		q.Answer = q.Options[0]
	}
	if s, isStr := q.Answer.(string); isStr {
		q.Answer = strings.TrimSpace(s)
	}
	q.Type = Category(strings.ToLower(strings.TrimSpace(string(q.Type))))
	if q.Type == "" {
		q.Type = Classify(q.Statement, q.Explanation)
	}
	return q
}
