package score

import "strings"

// Normalize lower-cases text for case-insensitive substring matching.
func Normalize(text string) string {
	return strings.ToLower(text)
}

// ScoreStructure checks the text for each expected resume section and sums the
// section points. It returns the clamped score and, for every section not
// found, the suggestion from the section table in declared order. Empty input
// yields 0 and the full suggestion list; keyword containment gets full section
// credit, there is no partial credit.
func ScoreStructure(text string) (int, []string) {
	normalized := Normalize(text)

	total := 0
	missing := make([]string, 0, len(sectionTable))
	for _, sec := range sectionTable {
		if containsAny(normalized, sec.Keywords) {
			total += sec.Points
			continue
		}
		missing = append(missing, sec.Suggestion)
	}
	return clampPercent(total), missing
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
