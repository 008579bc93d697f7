package score

import (
	"math"
	"sort"
	"strings"
)

// JDMatch is the result of a resume vs job-description vocabulary overlap.
type JDMatch struct {
	FitScore int      `json:"fitScore"`
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
}

// MatchJobDescription intersects the whitespace-tokenized word sets of the
// resume and job description. This is a crude bag-of-words overlap with no
// stemming and no stopword removal, not semantic similarity; a resume can
// describe the same skill in different words and still score zero. Matched and
// missing words are returned sorted for stable output.
func MatchJobDescription(resumeText, jdText string) JDMatch {
	resumeWords := wordSet(resumeText)
	jdWords := wordSet(jdText)

	matched := make([]string, 0, len(jdWords))
	missing := make([]string, 0, len(jdWords))
	for w := range jdWords {
		if resumeWords[w] {
			matched = append(matched, w)
		} else {
			missing = append(missing, w)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	denom := len(jdWords)
	if denom < 1 {
		denom = 1
	}
	fit := int(math.Round(100 * float64(len(matched)) / float64(denom)))

	return JDMatch{
		FitScore: clampPercent(fit),
		Matched:  matched,
		Missing:  missing,
	}
}

func wordSet(text string) map[string]bool {
	words := strings.Fields(Normalize(text))
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
