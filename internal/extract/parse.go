package extract

import (
	"regexp"
	"strings"

	"github.com/reventhtv/careerscope-AI/internal/score"
)

// Contact holds the fields recovered from resume text when no structured
// parser output is available. Fields are empty when nothing matched; this
// fallback never errors.
type Contact struct {
	Name   string
	Email  string
	Phone  string
	Skills []string
}

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s\-]{8,}`)
)

// ParseContact runs the regex-based fallback extraction: email, phone, a name
// guess from the first non-empty line, and keyword-substring skill detection
// against the fixed skill vocabulary.
func ParseContact(text string) Contact {
	return Contact{
		Name:   guessName(text),
		Email:  strings.TrimRight(emailPattern.FindString(text), ".,;"),
		Phone:  strings.TrimSpace(phonePattern.FindString(text)),
		Skills: DetectSkills(text),
	}
}

// DetectSkills returns every vocabulary skill present as a substring of the
// text, in vocabulary order.
func DetectSkills(text string) []string {
	normalized := strings.ToLower(text)
	skills := make([]string, 0, 8)
	for _, skill := range score.SkillVocabulary {
		if strings.Contains(normalized, skill) {
			skills = append(skills, skill)
		}
	}
	return skills
}

// guessName takes the first non-empty line that is neither an email nor a
// phone number. Resume headers usually open with the candidate's name, but
// this is only a heuristic.
func guessName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if emailPattern.MatchString(line) || phonePattern.MatchString(line) {
			continue
		}
		if len(line) > 80 {
			return ""
		}
		return line
	}
	return ""
}
