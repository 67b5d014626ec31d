package bank

import (
	"reflect"
	"testing"
)

func TestSanitize_NonObjectInput(t *testing.T) {
	for _, v := range []any{nil, "a string", 42.0, []any{"x"}, true} {
		if _, ok := Sanitize(v); ok {
			t.Errorf("Sanitize(%v) ok = true, want false", v)
		}
	}
}

func TestSanitize_QuestionFieldFallback(t *testing.T) {
	q, ok := Sanitize(map[string]any{
		"question": "What is 2+2?",
		"options":  []any{"3", "4"},
		"answer":   "4",
	})
	if !ok {
		t.Fatal("Sanitize ok = false")
	}
	if q.Statement != "What is 2+2?" {
		t.Errorf("Statement = %q, want question field value", q.Statement)
	}
}

func TestSanitize_StringifiedOptions(t *testing.T) {
	q, ok := Sanitize(map[string]any{
		"statement": "Pick one",
		"options":   "['4','8','12']",
		"answer":    "8",
	})
	if !ok {
		t.Fatal("Sanitize ok = false")
	}
	want := []string{"4", "8", "12"}
	if !reflect.DeepEqual(q.Options, want) {
		t.Errorf("Options = %v, want %v", q.Options, want)
	}
}

func TestSanitize_UnparseableStringOptions(t *testing.T) {
	q, _ := Sanitize(map[string]any{
		"statement": "Pick one",
		"options":   "just a sentence",
		"answer":    "x",
	})
	want := []string{"just a sentence"}
	if !reflect.DeepEqual(q.Options, want) {
		t.Errorf("Options = %v, want raw string wrapped", q.Options)
	}
}

func TestSanitize_MissingOptions(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
		want  []string
	}{
		{
			name:  "seeded from answer",
			input: map[string]any{"statement": "s", "answer": "42"},
			want:  []string{"42"},
		},
		{
			name:  "numeric answer seeds string option",
			input: map[string]any{"statement": "s", "answer": 42.0},
			want:  []string{"42"},
		},
		{
			name:  "no answer either",
			input: map[string]any{"statement": "s"},
			want:  []string{"N/A"},
		},
		{
			name:  "empty array options",
			input: map[string]any{"statement": "s", "options": []any{}, "answer": "yes"},
			want:  []string{"yes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := Sanitize(tt.input)
			if !ok {
				t.Fatal("Sanitize ok = false")
			}
			if !reflect.DeepEqual(q.Options, tt.want) {
				t.Errorf("Options = %v, want %v", q.Options, tt.want)
			}
		})
	}
}

func TestSanitize_MissingAnswerDefaultsToFirstOption(t *testing.T) {
	q, _ := Sanitize(map[string]any{
		"statement": "s",
		"options":   []any{"alpha", "beta"},
	})
	if q.Answer != "alpha" {
		t.Errorf("Answer = %v, want first option", q.Answer)
	}
}

func TestSanitize_TypeInferredWhenMissing(t *testing.T) {
	q, _ := Sanitize(map[string]any{
		"statement": "Calculate the velocity of the cart.",
		"options":   []any{"1", "2"},
		"answer":    "1",
	})
	if q.Type != CategoryNumerical {
		t.Errorf("Type = %q, want inferred numerical", q.Type)
	}
}

func TestSanitize_CoercesAndTrims(t *testing.T) {
	q, _ := Sanitize(map[string]any{
		"statement": "  padded  ",
		"options":   []any{" a ", 7.0},
		"answer":    "  a ",
		"type":      "Conceptual",
	})
	if q.Statement != "padded" {
		t.Errorf("Statement = %q, want trimmed", q.Statement)
	}
	if !reflect.DeepEqual(q.Options, []string{"a", "7"}) {
		t.Errorf("Options = %v, want trimmed strings", q.Options)
	}
	if q.Answer != "a" {
		t.Errorf("Answer = %v, want trimmed string", q.Answer)
	}
	if q.Type != CategoryConceptual {
		t.Errorf("Type = %q, want lowercased conceptual", q.Type)
	}
}

func TestSanitize_NumericAnswerStaysNumeric(t *testing.T) {
	q, _ := Sanitize(map[string]any{
		"statement": "s",
		"options":   []any{"a", "b", "c"},
		"answer":    2.0,
	})
	if _, isNum := q.Answer.(float64); !isNum {
		t.Errorf("Answer = %T, want float64 preserved", q.Answer)
	}
}

func TestCanonicalize_Idempotent(t *testing.T) {
	q, ok := Sanitize(map[string]any{
		"statement":   " What is photosynthesis? ",
		"options":     "['light','dark']",
		"answer":      "light",
		"explanation": "plants",
	})
	if !ok {
		t.Fatal("Sanitize ok = false")
	}

	once := Canonicalize(q)
	twice := Canonicalize(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Canonicalize not idempotent:\nonce  = %+v\ntwice = %+v", once, twice)
	}
	if !reflect.DeepEqual(q, once) {
		t.Errorf("sanitized question changed by Canonicalize:\ngot  = %+v\nwant = %+v", once, q)
	}
}
