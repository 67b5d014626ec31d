package picker

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/abhisek/deltabase/internal/bank"
)

func q(statement string) bank.Question {
	return bank.Question{
		Statement: statement,
		Options:   []string{"a", "b"},
		Answer:    "a",
		Type:      bank.CategoryConceptual,
	}
}

func testPicker(seed int64) *Picker {
	return New(rand.New(rand.NewSource(seed)))
}

func TestValidateCount(t *testing.T) {
	tests := []struct {
		difficulty string
		count      int
		wantErr    bool
	}{
		{"normal", 1, false},
		{"normal", 20, false},
		{"normal", 0, true},
		{"normal", 21, true},
		{"mixed", 50, false},
		{"mixed", 51, true},
		{"Mixed", 50, false},
	}

	for _, tt := range tests {
		err := ValidateCount(tt.difficulty, tt.count)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCount(%q, %d) err = %v, wantErr %v", tt.difficulty, tt.count, err, tt.wantErr)
		}
		if err != nil {
			var ir *ErrInvalidRequest
			if !errors.As(err, &ir) {
				t.Errorf("ValidateCount error type = %T, want *ErrInvalidRequest", err)
			}
		}
	}
}

func TestSingle_SmallPoolReturnsWholePool(t *testing.T) {
	b := bank.Bank{bank.TierNormal: []bank.Question{q("1"), q("2"), q("3")}}

	got, err := testPicker(1).Single(b, "normal", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 (whole pool)", len(got))
	}

	seen := make(map[string]bool)
	for _, item := range got {
		if seen[item.Statement] {
			t.Errorf("duplicate question %q in selection", item.Statement)
		}
		seen[item.Statement] = true
	}
}

func TestSingle_ShufflesOrder(t *testing.T) {
	qs := make([]bank.Question, 12)
	for i := range qs {
		qs[i] = q(string(rune('a' + i)))
	}
	b := bank.Bank{bank.TierNormal: qs}

	// At least one of several seeds must produce a non-input order.
	changed := false
	for seed := int64(0); seed < 5; seed++ {
		got, err := testPicker(seed).Single(b, "normal", 12)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range got {
			if got[i].Statement != qs[i].Statement {
				changed = true
			}
		}
	}
	if !changed {
		t.Error("selection order matched input order for every seed")
	}
}

func TestSingle_CaseInsensitiveDifficulty(t *testing.T) {
	b := bank.Bank{bank.TierHard: []bank.Question{q("h1")}}
	got, err := testPicker(1).Single(b, "HARD", 1)
	if err != nil || len(got) != 1 {
		t.Errorf("Single(HARD) = (%d items, %v), want 1 item from hard tier", len(got), err)
	}
}

func TestSingle_AbsentTierFallsBackToUnion(t *testing.T) {
	b := bank.Bank{
		bank.TierNormal: []bank.Question{q("n1"), q("n2")},
		bank.TierHard:   []bank.Question{q("h1")},
	}

	got, err := testPicker(1).Single(b, "jee", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3 (flattened union)", len(got))
	}
}

// A normalized dataset materializes its base tiers, so asking for an
// unpopulated tier is an empty pool, not a union fallback over whatever
// the other tiers hold.
func TestSingle_UnpopulatedTierIsEmptyPool(t *testing.T) {
	record := map[string]any{
		"statement": "q1",
		"options":   []any{"a", "b"},
		"answer":    "a",
	}
	b := bank.Normalize(map[string]any{"questions": []any{record, record}})

	got, err := testPicker(1).Single(b, "hard", 5)
	if len(got) != 0 {
		t.Fatalf("Single(hard) = %d questions, want none from an empty hard tier", len(got))
	}
	var ep *ErrEmptyPool
	if !errors.As(err, &ep) {
		t.Errorf("err = %v, want *ErrEmptyPool", err)
	}
}

func TestSingle_DropsInvalidQuestions(t *testing.T) {
	invalid := bank.Question{Statement: "", Options: []string{"a"}, Answer: "a"}
	b := bank.Bank{bank.TierNormal: []bank.Question{q("ok"), invalid}}

	got, err := testPicker(1).Single(b, "normal", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1 (invalid dropped)", len(got))
	}
}

func TestSingle_EmptyPool(t *testing.T) {
	_, err := testPicker(1).Single(bank.Bank{}, "normal", 5)
	var ep *ErrEmptyPool
	if !errors.As(err, &ep) {
		t.Errorf("err = %v, want *ErrEmptyPool", err)
	}
}

func TestMixed_PerTierCap(t *testing.T) {
	normal := make([]bank.Question, 4)
	for i := range normal {
		normal[i] = q("n" + string(rune('0'+i)))
	}
	b := bank.Bank{
		bank.TierNormal: normal,
		bank.TierHard:   []bank.Question{q("h0"), q("h1")},
	}

	// ceil(10/2) = 5 per tier, capped by pool sizes 4 and 2.
	got, err := testPicker(1).Mixed(b, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 6 {
		t.Errorf("len = %d, want 6 (4 normal + 2 hard)", len(got))
	}
}

func TestMixed_TruncatesToTotal(t *testing.T) {
	tier := func(prefix string, n int) []bank.Question {
		qs := make([]bank.Question, n)
		for i := range qs {
			qs[i] = q(prefix + string(rune('0'+i)))
		}
		return qs
	}
	b := bank.Bank{
		bank.TierNormal:   tier("n", 8),
		bank.TierModerate: tier("m", 8),
		bank.TierHard:     tier("h", 8),
	}

	got, err := testPicker(1).Mixed(b, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("len = %d, want exactly 10", len(got))
	}
}

func TestMixed_EmptyBank(t *testing.T) {
	_, err := testPicker(1).Mixed(bank.Bank{}, 10)
	var ep *ErrEmptyPool
	if !errors.As(err, &ep) {
		t.Errorf("err = %v, want *ErrEmptyPool", err)
	}
}

func TestPick_DispatchesMixed(t *testing.T) {
	b := bank.Bank{bank.TierNormal: []bank.Question{q("1")}}
	got, err := testPicker(1).Pick(b, "mixed", 5)
	if err != nil || len(got) != 1 {
		t.Errorf("Pick(mixed) = (%d items, %v), want mixed-mode draw", len(got), err)
	}
}
