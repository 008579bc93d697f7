package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchJobDescriptionOverlap(t *testing.T) {
	resume := "go postgres kubernetes grpc"
	jd := "go kubernetes terraform aws"

	match := MatchJobDescription(resume, jd)
	assert.Equal(t, 50, match.FitScore)
	assert.Equal(t, []string{"go", "kubernetes"}, match.Matched)
	assert.Equal(t, []string{"aws", "terraform"}, match.Missing)
}

func TestMatchJobDescriptionEmptyJD(t *testing.T) {
	match := MatchJobDescription("go postgres", "")
	assert.Zero(t, match.FitScore)
	assert.Empty(t, match.Matched)
	assert.Empty(t, match.Missing)
}

func TestMatchJobDescriptionEmptyResume(t *testing.T) {
	match := MatchJobDescription("", "go kubernetes")
	assert.Zero(t, match.FitScore)
	assert.Empty(t, match.Matched)
	assert.Equal(t, []string{"go", "kubernetes"}, match.Missing)
}

func TestMatchJobDescriptionCaseInsensitive(t *testing.T) {
	match := MatchJobDescription("Kubernetes", "kubernetes")
	assert.Equal(t, 100, match.FitScore)
}

// Raw token equality only: "golang" in the resume does not match "go" in the
// JD. The naivety is intentional and mirrors how scoring has always behaved.
func TestMatchJobDescriptionNoStemming(t *testing.T) {
	match := MatchJobDescription("golang developer", "go developer")
	assert.Equal(t, 50, match.FitScore)
	assert.Equal(t, []string{"go"}, match.Missing)
}
