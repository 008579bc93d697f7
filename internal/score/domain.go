package score

import (
	"math"
	"strings"
)

// ClassifyDomain scores the text against every domain's weighted keyword list
// and returns the winning domain with a confidence percentage.
//
// A keyword counts when it is a substring of the text or an exact member of
// detectedSkills; the same keyword may score for several domains. Employer
// mentions add their fixed bonus. The strictly highest score wins, with ties
// broken by domain declaration order. All-zero scores return the first domain
// with confidence 0.
func ClassifyDomain(text string, detectedSkills []string) (string, int) {
	normalized := Normalize(text)

	skills := make(map[string]bool, len(detectedSkills))
	for _, s := range detectedSkills {
		skills[Normalize(strings.TrimSpace(s))] = true
	}

	scores := domainScores(normalized, skills)

	winner := 0
	total := 0
	for i, s := range scores {
		total += s
		if s > scores[winner] {
			winner = i
		}
	}

	if total == 0 {
		return domainTable[0].Name, 0
	}

	confidence := int(math.Round(100 * float64(scores[winner]) / float64(total)))
	return domainTable[winner].Name, clampPercent(confidence)
}

// domainScores computes the raw per-domain scores in table order. The caller
// must pass already-normalized text and skill keys.
func domainScores(normalized string, skills map[string]bool) []int {
	scores := make([]int, len(domainTable))
	for i, d := range domainTable {
		for _, kw := range d.Strong {
			if strings.Contains(normalized, kw) || skills[kw] {
				scores[i] += strongWeight
			}
		}
		for _, kw := range d.Weak {
			if strings.Contains(normalized, kw) || skills[kw] {
				scores[i] += weakWeight
			}
		}
	}

	for _, b := range employerBonuses {
		if !strings.Contains(normalized, b.Employer) {
			continue
		}
		for i, d := range domainTable {
			if d.Name == b.Domain {
				scores[i] += b.Bonus
				break
			}
		}
	}
	return scores
}
