package bank

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	texSpacing    = regexp.MustCompile(`\\,|\\;|\\!`)
)

// normalizeAnswerText collapses whitespace runs and strips TeX spacing
// commands left behind by typeset statements, then trims.
func normalizeAnswerText(s string) string {
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = texSpacing.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// CorrectIndex resolves which option index is correct for q. It never
// fails: ok=false means no rule matched and the caller got the index 0
// fallback. Resolution order:
//  1. a numeric answer already in [0, len(Options)) is taken as the index
//  2. an option whose normalized text equals the normalized answer
//  3. an answer string whose leading integer is an in-range index
//  4. index 0
func CorrectIndex(q Question) (int, bool) {
	if idx, isNum := numericAnswer(q.Answer); isNum {
		if idx >= 0 && idx < len(q.Options) {
			return idx, true
		}
	}

	ans := normalizeAnswerText(coerceString(q.Answer))
	for i, opt := range q.Options {
		if normalizeAnswerText(opt) == ans {
			return i, true
		}
	}

	if n, ok := leadingInt(coerceString(q.Answer)); ok {
		if n >= 0 && n < len(q.Options) {
			return n, true
		}
	}

	return 0, false
}

// leadingInt parses the integer prefix of s: leading whitespace, an
// optional sign, then digits. Trailing characters are ignored, so "2x"
// and "3.7" read as 2 and 3. ok=false when no digits lead.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0, false
	}
	return n, true
}

// numericAnswer extracts an integral answer value. Sanitized questions
// carry float64 (JSON numbers); int covers hand-built values in tests and
// callers.
func numericAnswer(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	case int:
		return n, true
	}
	return 0, false
}
