package bank

import "strings"

// Normalize converts an arbitrary decoded JSON value into a Bank.
// Accepted shapes, in priority order:
//  1. object with tier keys (normal/moderate/hard/jee/neet, any case)
//  2. object with a "questions" array → the normal tier
//  3. bare array → the normal tier
//  4. anything else → empty bank
//
// Shapes 1-3 always materialize the four base tiers, so an unpopulated
// tier reads as present but empty; neet appears only when the source
// carries it. Entries that are not objects are dropped; everything else
// is repaired by Sanitize. Never returns nil and never panics, whatever
// v holds.
func Normalize(v any) Bank {
	if obj, isObj := v.(map[string]any); isObj {
		lowered := make(map[string]any, len(obj))
		for k, val := range obj {
			lowered[strings.ToLower(k)] = val
		}

		if hasTierKey(lowered) {
			b := newBank()
			for _, t := range Tiers {
				if arr, ok := lowered[string(t)].([]any); ok {
					b[t] = sanitizeAll(arr)
				}
			}
			return b
		}

		if arr, ok := lowered["questions"].([]any); ok {
			b := newBank()
			b[TierNormal] = sanitizeAll(arr)
			return b
		}

		return Bank{}
	}

	if arr, isArr := v.([]any); isArr {
		b := newBank()
		b[TierNormal] = sanitizeAll(arr)
		return b
	}

	return Bank{}
}

// newBank returns a Bank with the base tiers present and empty.
func newBank() Bank {
	return Bank{
		TierNormal:   []Question{},
		TierModerate: []Question{},
		TierHard:     []Question{},
		TierJEE:      []Question{},
	}
}

func hasTierKey(obj map[string]any) bool {
	for _, t := range Tiers {
		if v, ok := obj[string(t)]; ok && v != nil {
			return true
		}
	}
	return false
}

func sanitizeAll(entries []any) []Question {
	out := make([]Question, 0, len(entries))
	for _, e := range entries {
		if q, ok := Sanitize(e); ok {
			out = append(out, q)
		}
	}
	return out
}
