// Package score derives deterministic signals from extracted resume text:
// structural completeness, experience level, technical domain, ATS keyword
// gaps, and suggested roles. Everything here is pure string matching against
// static tables; there is no I/O, no randomness, and no error path. Malformed
// or empty input degrades to the documented zero-value outputs.
package score

// Input carries one scoring pass's caller-owned values. Text is the sole
// required artifact; the rest refine the classification when available.
type Input struct {
	Text           string
	Pages          int
	YearsHint      int
	Skills         []string
	JobDescription string
}

// Result is the output record of one scoring pass. It is created fresh per
// call and never mutated afterwards. StructureScore, DomainConfidence, and
// ManagementConfidence are always within [0,100]; Domain is always a key of
// the domain table; SuggestedRoles is duplicate-free in first-seen order.
type Result struct {
	ExperienceLevel      Level    `json:"experienceLevel"`
	StructureScore       int      `json:"structureScore"`
	MissingSections      []string `json:"missingSections"`
	Domain               string   `json:"domain"`
	DomainConfidence     int      `json:"domainConfidence"`
	MissingATSKeywords   []string `json:"missingAtsKeywords"`
	SuggestedRoles       []string `json:"suggestedRoles"`
	ManagementConfidence int      `json:"managementConfidence"`
	JDMatch              *JDMatch `json:"jdMatch,omitempty"`
}

// Score runs the full pipeline over one input. The structure, experience, and
// domain passes are independent; the ATS gap and role suggestions consume the
// domain pass's output. Nothing feeds back into an earlier stage.
func Score(in Input) Result {
	years := in.YearsHint
	if years <= 0 {
		years = ExtractYears(in.Text)
	}

	structureScore, missingSections := ScoreStructure(in.Text)
	level := ClassifyExperience(in.Text, in.Pages, years)
	domain, confidence := ClassifyDomain(in.Text, in.Skills)
	mgmt := ManagementConfidence(in.Text)

	// A zero confidence means every domain scored zero; the winning domain is
	// then only the deterministic table default, so no roles are suggested.
	roleDomain := domain
	if confidence == 0 {
		roleDomain = ""
	}

	result := Result{
		ExperienceLevel:      level,
		StructureScore:       structureScore,
		MissingSections:      missingSections,
		Domain:               domain,
		DomainConfidence:     confidence,
		MissingATSKeywords:   ATSGap(domain, in.Text),
		SuggestedRoles:       SuggestRoles(roleDomain, level, mgmt),
		ManagementConfidence: mgmt,
	}

	if in.JobDescription != "" {
		match := MatchJobDescription(in.Text, in.JobDescription)
		result.JDMatch = &match
	}

	return result
}
