package bank

import (
	"regexp"
	"strings"
)

// classifierRules are evaluated in order against the lowercased
// statement+explanation text; the first match wins. Keyword sets overlap
// (e.g. "derive", "structure"), so the order is part of the contract —
// do not reorder or merge the patterns.
var classifierRules = []struct {
	pattern  *regexp.Regexp
	category Category
}{
	{regexp.MustCompile(`\b(find|calculate|determine|evaluate|compute|solve|simplify|derive|obtain|ratio|velocity|speed|acceleration|energy|power|mass|charge|potential|distance|time|period|radius|temperature|concentration|pressure|current|voltage|resistance|weight|frequency|wavelength|momentum|magnitude|work|heat|enthalpy|moles|volume|equilibrium|displacement|atomic|number)\b`), CategoryNumerical},
	{regexp.MustCompile(`\b(prove|show|derive|deduce|verify|establish|explain why|reason|relation|expression|law|equation|derive the relation|graph of|plot|represent|draw)\b`), CategoryAnalytical},
	{regexp.MustCompile(`\b(graph|plot|curve|locus|diagram|arrangement|structure|shape|representation|bond|orbital|molecular|arranged|layout)\b`), CategoryGraphical},
	{regexp.MustCompile(`\b(experiment|observe|measurement|apparatus|device|setup|instrument|reading|method|procedure|test|indicator|detect|record)\b`), CategoryExperimental},
	{regexp.MustCompile(`\b(function|role|organ|process|enzyme|cycle|phase|stage|mechanism|structure|synthesis|pathway|cell|tissue|organism|gene|protein|replication|division|respiration|photosynthesis)\b`), CategoryDescriptive},
	{regexp.MustCompile(`\b(concept|definition|which|true|false|reason|assertion|property|principle|statement|inference|based on|reasoning|type of|depends|is called|results in|caused by|because)\b`), CategoryConceptual},
}

// numericHint matches digits and arithmetic symbols for the fallback check.
var numericHint = regexp.MustCompile(`[0-9]|=|\+|-|/|\*|√`)

// Classify infers a category from a question's statement and explanation.
// Falls back to numerical when the text carries digits or operators, and
// to conceptual otherwise.
func Classify(statement, explanation string) Category {
	text := strings.ToLower(statement + " " + explanation)

	for _, rule := range classifierRules {
		if rule.pattern.MatchString(text) {
			return rule.category
		}
	}

	if numericHint.MatchString(text) {
		return CategoryNumerical
	}
	return CategoryConceptual
}
