package score

import "strings"

// ATSGap returns every expected ATS keyword for the domain that is absent from
// the text, preserving the table's declared order. Domains without an expected
// keyword list return an empty slice.
func ATSGap(domain, text string) []string {
	expected, ok := atsKeywordTable[domain]
	if !ok {
		return []string{}
	}

	normalized := Normalize(text)
	missing := make([]string, 0, len(expected))
	for _, kw := range expected {
		if !strings.Contains(normalized, kw) {
			missing = append(missing, kw)
		}
	}
	return missing
}
