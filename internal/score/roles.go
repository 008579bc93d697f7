package score

import "strings"

const managementThreshold = 60

// managementSignals is the additive point table for management confidence.
var managementCertPoints = []struct {
	Keyword string
	Points  int
}{
	{Keyword: "pmp", Points: 40},
	{Keyword: "capm", Points: 30},
}

var managementPhrases = []string{"program manager", "project manager", "roadmap", "delivery"}

// ManagementConfidence scores management signals in the text on a 0-100 scale.
// Certification keywords score individually; the phrase group scores once if
// any phrase is present.
func ManagementConfidence(text string) int {
	normalized := Normalize(text)

	total := 0
	for _, cert := range managementCertPoints {
		if strings.Contains(normalized, cert.Keyword) {
			total += cert.Points
		}
	}
	if containsAny(normalized, managementPhrases) {
		total += 30
	}
	return clampPercent(total)
}

// SuggestRoles maps a domain and experience level to suggested job titles.
// Top-tier levels get a "Senior " prefix on every base role, and a management
// confidence at or above the threshold appends a synthesized program-manager
// role. The result preserves first-seen order with duplicates removed.
func SuggestRoles(domain string, level Level, managementConfidence int) []string {
	base := baseRoleTable[domain]

	roles := make([]string, 0, len(base)+1)
	for _, role := range base {
		if level.IsTopTier() {
			role = "Senior " + role
		}
		roles = append(roles, role)
	}
	if managementConfidence >= managementThreshold && domain != "" {
		roles = append(roles, "Technical Program Manager ("+domain+")")
	}

	return dedupeInOrder(roles)
}

func dedupeInOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
