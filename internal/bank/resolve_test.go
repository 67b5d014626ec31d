package bank

import "testing"

func TestCorrectIndex(t *testing.T) {
	tests := []struct {
		name   string
		q      Question
		want   int
		wantOK bool
	}{
		{
			name:   "numeric index in range",
			q:      Question{Options: []string{"a", "b", "c", "d"}, Answer: 2.0},
			want:   2,
			wantOK: true,
		},
		{
			name:   "text match",
			q:      Question{Options: []string{"4", "8", "12"}, Answer: "8"},
			want:   1,
			wantOK: true,
		},
		{
			name:   "whitespace variance",
			q:      Question{Options: []string{"4", "8 ", "12"}, Answer: " 8 "},
			want:   1,
			wantOK: true,
		},
		{
			name:   "tex spacing stripped",
			q:      Question{Options: []string{`3\,m`, `4\,m`}, Answer: "4m"},
			want:   1,
			wantOK: true,
		},
		{
			name:   "string parsed as index",
			q:      Question{Options: []string{"x", "y", "z"}, Answer: "2"},
			want:   2,
			wantOK: true,
		},
		{
			name:   "integer prefix with trailing letter",
			q:      Question{Options: []string{"x", "y", "z"}, Answer: "2x"},
			want:   2,
			wantOK: true,
		},
		{
			name:   "integer prefix of a decimal",
			q:      Question{Options: []string{"x", "y", "z", "w"}, Answer: "3.7"},
			want:   3,
			wantOK: true,
		},
		{
			name:   "unmatchable falls back to zero",
			q:      Question{Options: []string{"a", "b"}, Answer: "zz"},
			want:   0,
			wantOK: false,
		},
		{
			name:   "numeric index out of range falls through",
			q:      Question{Options: []string{"a", "9"}, Answer: 9.0},
			want:   1, // matches option text "9"
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CorrectIndex(tt.q)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("CorrectIndex = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// Exact numeric index takes precedence over a text match: with answer 0
// and an option literally named "0" elsewhere, the index wins.
func TestCorrectIndex_NumericBeatsText(t *testing.T) {
	q := Question{Options: []string{"first", "0"}, Answer: 0.0}
	got, ok := CorrectIndex(q)
	if got != 0 || !ok {
		t.Errorf("CorrectIndex = (%d, %v), want (0, true): numeric index outranks text", got, ok)
	}
}
