package analyses

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reventhtv/careerscope-AI/internal/ai"
	"github.com/reventhtv/careerscope-AI/internal/auditlog"
	"github.com/reventhtv/careerscope-AI/internal/score"
	"github.com/reventhtv/careerscope-AI/internal/shared/storage/object/local"
)

const resumeText = "Priya Sharma\n" +
	"priya@example.com\n" +
	"+91 98765 43210\n" +
	"Summary\n" +
	"Data science engineer with 5 years of experience building machine learning pipelines in python and pandas.\n" +
	"Education\n" +
	"B.Tech, Computer Science\n" +
	"Experience\n" +
	"Built model deployment tooling and dashboards.\n" +
	"Skills\n" +
	"python, pandas, sql\n" +
	"Projects\n" +
	"Churn prediction model."

// buildDocx assembles a minimal in-memory .docx so tests exercise the real
// extraction path end to end.
func buildDocx(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	doc, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = fmt.Fprintf(doc, `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>%s</w:body></w:document>`, paragraphs(text))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func paragraphs(text string) string {
	var out bytes.Buffer
	for _, line := range bytes.Split([]byte(text), []byte("\n")) {
		fmt.Fprintf(&out, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", line)
	}
	return out.String()
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	audit, err := auditlog.New(t.TempDir())
	require.NoError(t, err)
	return &Service{
		Store: local.New(t.TempDir()),
		Repo:  NewMemoryRepo(),
		Audit: audit,
		Cache: ai.NewCache(0, 0),
	}
}

func TestAnalyzePersistsScoredResume(t *testing.T) {
	svc := newTestService(t)

	analysis, err := svc.Analyze(context.Background(), AnalyzeRequest{
		GuestID:  "g1",
		FileName: "resume.docx",
		File:     bytes.NewReader(buildDocx(t, resumeText)),
	})
	require.NoError(t, err)

	require.NotEmpty(t, analysis.ID)
	require.Equal(t, "g1", analysis.GuestID)
	require.Equal(t, "Priya Sharma", analysis.Name)
	require.Equal(t, "priya@example.com", analysis.Email)
	require.Contains(t, analysis.Skills, "python")

	require.Equal(t, "Data Science", analysis.Result.Domain)
	require.Equal(t, score.LevelMidLevel, analysis.Result.ExperienceLevel)
	require.Greater(t, analysis.Result.StructureScore, 0)

	require.NotEmpty(t, analysis.StorageKey)
	require.Equal(t, analysis.StorageKey+".extracted.txt", analysis.ExtractedTextKey)

	got, err := svc.Get(context.Background(), "g1", analysis.ID)
	require.NoError(t, err)
	require.Equal(t, analysis.ID, got.ID)
}

func TestAnalyzeFormFieldsWinOverParsedContact(t *testing.T) {
	svc := newTestService(t)

	analysis, err := svc.Analyze(context.Background(), AnalyzeRequest{
		GuestID:  "g1",
		FileName: "resume.docx",
		File:     bytes.NewReader(buildDocx(t, resumeText)),
		Name:     "P. Sharma",
		Email:    "override@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "P. Sharma", analysis.Name)
	require.Equal(t, "override@example.com", analysis.Email)
	// Phone was not overridden, keep the parsed one.
	require.NotEmpty(t, analysis.Phone)
}

func TestAnalyzeDegradesOnExtractionFailure(t *testing.T) {
	svc := newTestService(t)

	analysis, err := svc.Analyze(context.Background(), AnalyzeRequest{
		GuestID:  "g1",
		FileName: "notes.txt",
		File:     bytes.NewReader([]byte("just some plain text, not a resume format we parse")),
	})
	require.NoError(t, err)

	// Scored as an empty document.
	require.Equal(t, score.LevelUnknown, analysis.Result.ExperienceLevel)
	require.Equal(t, 0, analysis.Result.StructureScore)
	require.Empty(t, analysis.Result.SuggestedRoles)
	require.Empty(t, analysis.ExtractedTextKey)
	require.NotEmpty(t, analysis.StorageKey)
}

type failingStore struct{}

func (failingStore) Save(ctx context.Context, userId, fileName string, r io.Reader) (string, int64, string, error) {
	return "", 0, "", errors.New("disk full")
}

func (failingStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	return nil, errors.New("disk full")
}

func TestAnalyzeStorageFailure(t *testing.T) {
	svc := newTestService(t)
	svc.Store = failingStore{}

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{
		GuestID:  "g1",
		FileName: "resume.docx",
		File:     bytes.NewReader([]byte("x")),
	})
	require.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestAnalyzeInvalidInput(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{FileName: "resume.docx", File: bytes.NewReader(nil)})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Analyze(context.Background(), AnalyzeRequest{GuestID: "g1", File: bytes.NewReader(nil)})
	require.ErrorIs(t, err, ErrInvalidInput)
}

type fakeAI struct {
	calls  int
	answer string
}

func (f *fakeAI) Ask(ctx context.Context, prompt string) string {
	f.calls++
	return f.answer
}

func TestSuggestionsCachesAnswers(t *testing.T) {
	svc := newTestService(t)
	client := &fakeAI{answer: "1) Strong Python background"}
	svc.AI = client

	analysis, err := svc.Analyze(context.Background(), AnalyzeRequest{
		GuestID:  "g1",
		FileName: "resume.docx",
		File:     bytes.NewReader(buildDocx(t, resumeText)),
	})
	require.NoError(t, err)

	first, err := svc.Suggestions(context.Background(), "g1", analysis.ID)
	require.NoError(t, err)
	require.Equal(t, client.answer, first)

	second, err := svc.Suggestions(context.Background(), "g1", analysis.ID)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, client.calls)
}

func TestSuggestionsApologyNotCached(t *testing.T) {
	svc := newTestService(t)
	client := &fakeAI{answer: ai.Apology}
	svc.AI = client

	analysis, err := svc.Analyze(context.Background(), AnalyzeRequest{
		GuestID:  "g1",
		FileName: "resume.docx",
		File:     bytes.NewReader(buildDocx(t, resumeText)),
	})
	require.NoError(t, err)

	_, err = svc.Suggestions(context.Background(), "g1", analysis.ID)
	require.NoError(t, err)
	_, err = svc.Suggestions(context.Background(), "g1", analysis.ID)
	require.NoError(t, err)
	require.Equal(t, 2, client.calls)
}

func TestSuggestionsWithoutClientUsesPlaceholder(t *testing.T) {
	svc := newTestService(t)

	analysis, err := svc.Analyze(context.Background(), AnalyzeRequest{
		GuestID:  "g1",
		FileName: "resume.docx",
		File:     bytes.NewReader(buildDocx(t, resumeText)),
	})
	require.NoError(t, err)

	answer, err := svc.Suggestions(context.Background(), "g1", analysis.ID)
	require.NoError(t, err)
	require.Equal(t, ai.NotConfigured, answer)
}

func TestSuggestionsUnknownAnalysis(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Suggestions(context.Background(), "g1", "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
