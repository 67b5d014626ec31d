package bank

import (
	"fmt"
	"strings"
)

// Category classifies a question by the kind of reasoning it asks for.
type Category string

const (
	CategoryNumerical    Category = "numerical"
	CategoryAnalytical   Category = "analytical"
	CategoryGraphical    Category = "graphical"
	CategoryExperimental Category = "experimental"
	CategoryDescriptive  Category = "descriptive"
	CategoryConceptual   Category = "conceptual"
)

// Tier names a difficulty bucket within a subject's question bank.
type Tier string

const (
	TierNormal   Tier = "normal"
	TierModerate Tier = "moderate"
	TierHard     Tier = "hard"
	TierJEE      Tier = "jee"
	TierNEET     Tier = "neet"
)

// Tiers lists every recognized tier in menu order.
var Tiers = []Tier{TierNormal, TierModerate, TierHard, TierJEE, TierNEET}

// Question is a single canonical multiple-choice question.
type Question struct {
	ID        string
	Statement string
	Options   []string

	// Answer is either the text of the correct option or a numeric index
	// into Options. Numbers decoded from JSON arrive as float64.
	Answer any

	Type        Category
	Explanation string
}

// Bank maps tiers to their sanitized question lists. Absent tiers read as
// empty slices; a Bank is never nil when produced by Normalize.
type Bank map[Tier][]Question

// Valid reports whether q is playable: a non-empty statement, at least one
// option, and a defined answer.
func (q Question) Valid() bool {
	return q.Statement != "" && len(q.Options) > 0 && q.Answer != nil
}

// Flatten returns every question across all tiers, in tier order.
func (b Bank) Flatten() []Question {
	var out []Question
	for _, t := range Tiers {
		out = append(out, b[t]...)
	}
	return out
}

// Count returns the total number of questions across all tiers.
func (b Bank) Count() int {
	n := 0
	for _, qs := range b {
		n += len(qs)
	}
	return n
}

// coerceString renders an arbitrary decoded JSON value as a trimmed string.
// nil renders as the empty string. Whole-valued floats drop the ".0" that
// fmt would otherwise print for JSON integers.
func coerceString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return strings.TrimSpace(fmt.Sprintf("%v", x))
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", x))
	}
}
