package score

import "testing"

func TestScoreStructureEmptyText(t *testing.T) {
	got, missing := ScoreStructure("")
	if got != 0 {
		t.Fatalf("expected score 0 for empty text, got %d", got)
	}
	if len(missing) != len(sectionTable) {
		t.Fatalf("expected %d suggestions for empty text, got %d", len(sectionTable), len(missing))
	}
}

func TestScoreStructureFourSections(t *testing.T) {
	text := "Education at State College. Work Experience at Acme. Skills: Go. Projects: various."
	got, missing := ScoreStructure(text)
	if got != 48 {
		t.Fatalf("expected score 48, got %d", got)
	}
	if len(missing) != 4 {
		t.Fatalf("expected 4 missing suggestions, got %d: %v", len(missing), missing)
	}
}

func TestScoreStructureFullResume(t *testing.T) {
	text := "summary education experience skills projects certifications achievements internship"
	got, missing := ScoreStructure(text)
	if got != 100 {
		t.Fatalf("expected score 100, got %d", got)
	}
	if len(missing) != 0 {
		t.Fatalf("expected no suggestions, got %v", missing)
	}
}

// Adding any recognized section keyword to a text must never decrease the score.
func TestScoreStructureMonotonic(t *testing.T) {
	base := "worked on backend systems"
	baseScore, _ := ScoreStructure(base)
	for _, sec := range sectionTable {
		for _, kw := range sec.Keywords {
			augmented, _ := ScoreStructure(base + " " + kw)
			if augmented < baseScore {
				t.Fatalf("adding %q decreased score from %d to %d", kw, baseScore, augmented)
			}
		}
	}
}

func TestSectionPointsSumToHundred(t *testing.T) {
	total := 0
	for _, sec := range sectionTable {
		total += sec.Points
	}
	if total != 100 {
		t.Fatalf("section points sum to %d, want 100", total)
	}
}
