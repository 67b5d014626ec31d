package bank

import "testing"

func record(statement string) map[string]any {
	return map[string]any{
		"statement": statement,
		"options":   []any{"a", "b"},
		"answer":    "a",
	}
}

func TestNormalize_TieredObject(t *testing.T) {
	b := Normalize(map[string]any{
		"normal": []any{record("q1"), record("q2")},
		"hard":   []any{record("q3")},
	})

	if got := len(b[TierNormal]); got != 2 {
		t.Errorf("normal tier = %d questions, want 2", got)
	}
	if got := len(b[TierHard]); got != 1 {
		t.Errorf("hard tier = %d questions, want 1", got)
	}
	if got := len(b[TierModerate]); got != 0 {
		t.Errorf("moderate tier = %d questions, want 0", got)
	}
}

func TestNormalize_TierKeysCaseInsensitive(t *testing.T) {
	b := Normalize(map[string]any{
		"Normal": []any{record("q1")},
		"JEE":    []any{record("q2")},
	})
	if len(b[TierNormal]) != 1 || len(b[TierJEE]) != 1 {
		t.Errorf("mixed-case tier keys not collapsed: %v", b)
	}
}

func TestNormalize_QuestionsObject(t *testing.T) {
	b := Normalize(map[string]any{
		"questions": []any{record("q1"), record("q2"), record("q3")},
	})
	if got := len(b[TierNormal]); got != 3 {
		t.Errorf("normal tier = %d questions, want 3", got)
	}
	if b.Count() != 3 {
		t.Errorf("Count() = %d, want 3 (no other tiers)", b.Count())
	}
}

func TestNormalize_BareArray(t *testing.T) {
	b := Normalize([]any{record("q1"), record("q2")})
	if got := len(b[TierNormal]); got != 2 {
		t.Errorf("normal tier = %d questions, want 2", got)
	}
}

func TestNormalize_UnrecognizedInput(t *testing.T) {
	for _, v := range []any{nil, "text", 12.0, map[string]any{"banana": true}} {
		b := Normalize(v)
		if b == nil {
			t.Fatalf("Normalize(%v) = nil, want empty bank", v)
		}
		if b.Count() != 0 {
			t.Errorf("Normalize(%v).Count() = %d, want 0", v, b.Count())
		}
	}
}

func TestNormalize_DropsNonObjectEntries(t *testing.T) {
	b := Normalize([]any{record("good"), "garbage", nil, 7.0, record("also good")})
	if got := len(b[TierNormal]); got != 2 {
		t.Errorf("normal tier = %d questions, want 2 (garbage dropped)", got)
	}
}

func TestNormalize_MaterializesBaseTiers(t *testing.T) {
	shapes := map[string]any{
		"tiered":    map[string]any{"normal": []any{record("q1")}},
		"questions": map[string]any{"questions": []any{record("q1")}},
		"bare":      []any{record("q1")},
	}
	base := []Tier{TierNormal, TierModerate, TierHard, TierJEE}

	for name, v := range shapes {
		b := Normalize(v)
		for _, tier := range base {
			if _, ok := b[tier]; !ok {
				t.Errorf("%s: tier %s absent, want present and empty", name, tier)
			}
		}
		if _, ok := b[TierNEET]; ok {
			t.Errorf("%s: neet materialized without source data", name)
		}
	}
}

func TestNormalize_NEETOnlyWhenPresent(t *testing.T) {
	b := Normalize(map[string]any{"neet": []any{record("q1")}})
	if got := len(b[TierNEET]); got != 1 {
		t.Errorf("neet tier = %d questions, want 1", got)
	}
	if _, ok := b[TierNormal]; !ok {
		t.Error("base tiers should still be materialized")
	}
}

func TestNormalize_TieredTakesPriorityOverQuestions(t *testing.T) {
	b := Normalize(map[string]any{
		"normal":    []any{record("tiered")},
		"questions": []any{record("flat"), record("flat2")},
	})
	if got := len(b[TierNormal]); got != 1 {
		t.Errorf("normal tier = %d questions, want 1 (tiered shape wins)", got)
	}
}
