package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyDomainDeterministic(t *testing.T) {
	text := "built apis with django and react, deployed on kubernetes"
	skills := []string{"javascript"}

	d1, c1 := ClassifyDomain(text, skills)
	d2, c2 := ClassifyDomain(text, skills)
	assert.Equal(t, d1, d2)
	assert.Equal(t, c1, c2)
}

func TestClassifyDomainAllZero(t *testing.T) {
	domain, confidence := ClassifyDomain("", nil)
	assert.Equal(t, DefaultDomain(), domain)
	assert.Zero(t, confidence)

	domain, confidence = ClassifyDomain("plain prose without signals", nil)
	assert.Equal(t, DefaultDomain(), domain)
	assert.Zero(t, confidence)
}

func TestClassifyDomainTelecomWithEmployerBonus(t *testing.T) {
	text := "optimized 5g and lte ran rollouts at ericsson"

	scores := domainScores(Normalize(text), nil)
	var telecomScore int
	for i, d := range domainTable {
		if d.Name == "Telecommunications" {
			telecomScore = scores[i]
		}
	}
	// Three strong keywords plus the employer bonus.
	require.GreaterOrEqual(t, telecomScore, 15)

	domain, confidence := ClassifyDomain(text, nil)
	assert.Equal(t, "Telecommunications", domain)
	assert.Greater(t, confidence, 0)
	assert.LessOrEqual(t, confidence, 100)
}

func TestClassifyDomainSkillsCountAsHits(t *testing.T) {
	// No substring hits in the text itself; skills alone should decide.
	domain, confidence := ClassifyDomain("to whom it may concern", []string{"TensorFlow", "pandas"})
	assert.Equal(t, "Data Science", domain)
	assert.Greater(t, confidence, 0)
}

func TestClassifyDomainTieBreakDeclarationOrder(t *testing.T) {
	// One strong hit each for Data Science and Web Development; the
	// first-declared domain must win the tie.
	domain, _ := ClassifyDomain("pytorch and react", nil)
	assert.Equal(t, "Data Science", domain)
}

func TestDomainConfidenceBounds(t *testing.T) {
	texts := []string{
		"",
		"react react react react",
		"machine learning deep learning tensorflow pytorch data science keras pandas",
		"5g lte ran volte ericsson nokia qualcomm huawei",
	}
	for _, text := range texts {
		_, confidence := ClassifyDomain(text, nil)
		assert.GreaterOrEqual(t, confidence, 0, "text %q", text)
		assert.LessOrEqual(t, confidence, 100, "text %q", text)
	}
}
