package score

import (
	"regexp"
	"strconv"
	"strings"
)

// Level is a classified experience level.
type Level string

// Levels, coarsest first. Senior/Lead and Experienced are both top tier.
const (
	LevelUnknown      Level = "Unknown"
	LevelFresher      Level = "Fresher"
	LevelJunior       Level = "Junior"
	LevelIntermediate Level = "Intermediate"
	LevelMidLevel     Level = "Mid-level"
	LevelExperienced  Level = "Experienced"
	LevelSenior       Level = "Senior/Lead"
)

// IsTopTier reports whether the level maps to the most senior bucket.
func (l Level) IsTopTier() bool {
	return l == LevelExperienced || l == LevelSenior
}

var yearsPattern = regexp.MustCompile(`(\d+)\s*\+?\s*years?`)

// ExtractYears pulls a stated years-of-experience figure from text, returning
// 0 when no "<N> years" phrase is present. The first match wins.
func ExtractYears(text string) int {
	m := yearsPattern.FindStringSubmatch(Normalize(text))
	if len(m) < 2 {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return years
}

// ClassifyExperience maps resume text to an experience level.
//
// Empty text returns LevelUnknown. A positive yearsHint wins over keyword
// rules and uses fixed thresholds (>=8 Senior/Lead, >=4 Mid-level, >=1
// Junior). Otherwise the keyword rules apply in priority order: seniority
// keyword, internship keyword, page count >= 2, then Fresher. The rule order
// matters because the categories overlap.
func ClassifyExperience(text string, pages int, yearsHint int) Level {
	if strings.TrimSpace(text) == "" {
		return LevelUnknown
	}

	if yearsHint > 0 {
		switch {
		case yearsHint >= 8:
			return LevelSenior
		case yearsHint >= 4:
			return LevelMidLevel
		default:
			return LevelJunior
		}
	}

	normalized := Normalize(text)
	switch {
	case containsAny(normalized, seniorityKeywords):
		return LevelExperienced
	case containsAny(normalized, internshipKeywords):
		return LevelIntermediate
	case pages >= 2:
		return LevelIntermediate
	default:
		return LevelFresher
	}
}
