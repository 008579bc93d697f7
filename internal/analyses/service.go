package analyses

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reventhtv/careerscope-AI/internal/ai"
	"github.com/reventhtv/careerscope-AI/internal/auditlog"
	"github.com/reventhtv/careerscope-AI/internal/extract"
	"github.com/reventhtv/careerscope-AI/internal/score"
	"github.com/reventhtv/careerscope-AI/internal/shared/metrics"
	"github.com/reventhtv/careerscope-AI/internal/shared/storage/object"
	"github.com/reventhtv/careerscope-AI/internal/shared/telemetry"
)

// AuditTrail records completed analyses. *auditlog.Logger satisfies it; a nil
// field disables auditing.
type AuditTrail interface {
	AppendAnalysis(row auditlog.AnalysisRow) error
}

// Service contains the business logic for resume analyses.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
	Audit AuditTrail
	AI    ai.Client
	Cache *ai.Cache
}

// AnalyzeRequest carries one uploaded resume and its optional companions.
type AnalyzeRequest struct {
	GuestID        string
	FileName       string
	File           io.Reader
	JobDescription string

	// Optional contact fields from the upload form. They win over whatever
	// the resume text yields.
	Name  string
	Email string
	Phone string
}

// Analyze stores the file, extracts its text, scores it and persists the
// result. Extraction failures degrade to an empty document rather than
// failing the whole request; storage failures do fail it.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (Analysis, error) {
	if req.GuestID == "" || req.FileName == "" || req.File == nil {
		return Analysis{}, ErrInvalidInput
	}

	metrics.IncAnalysisStarted()
	started := metrics.NowMillis()

	storageKey, size, mimeType, err := s.Store.Save(ctx, req.GuestID, req.FileName, req.File)
	if err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, errors.Join(ErrStorageUnavailable, err)
	}

	doc, extractErr := extract.FromStore(ctx, s.Store, storageKey, mimeType, req.FileName)
	extractedTextKey := storageKey + ".extracted.txt"
	if extractErr != nil {
		telemetry.Error("extraction failed, scoring empty document", map[string]any{
			"guest_id":    req.GuestID,
			"file_name":   req.FileName,
			"storage_key": storageKey,
			"error":       extractErr.Error(),
		})
		doc = extract.Document{}
		extractedTextKey = ""
	}

	contact := extract.ParseContact(doc.Text)
	if req.Name != "" {
		contact.Name = req.Name
	}
	if req.Email != "" {
		contact.Email = req.Email
	}
	if req.Phone != "" {
		contact.Phone = req.Phone
	}

	result := score.Score(score.Input{
		Text:           doc.Text,
		Pages:          doc.Pages,
		YearsHint:      score.ExtractYears(doc.Text),
		Skills:         contact.Skills,
		JobDescription: req.JobDescription,
	})

	analysis := Analysis{
		ID:               uuid.NewString(),
		GuestID:          req.GuestID,
		FileName:         req.FileName,
		MimeType:         mimeType,
		SizeBytes:        size,
		StorageKey:       storageKey,
		ExtractedTextKey: extractedTextKey,
		Pages:            doc.Pages,
		JobDescription:   strings.TrimSpace(req.JobDescription),
		Name:             contact.Name,
		Email:            contact.Email,
		Phone:            contact.Phone,
		Skills:           contact.Skills,
		Result:           result,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, analysis); err != nil {
		metrics.IncAnalysisFailed()
		return Analysis{}, err
	}

	if s.Audit != nil {
		if err := s.Audit.AppendAnalysis(auditlog.AnalysisRow{
			Timestamp:       analysis.CreatedAt,
			AnalysisID:      analysis.ID,
			GuestID:         analysis.GuestID,
			FileName:        analysis.FileName,
			Domain:          result.Domain,
			Confidence:      result.DomainConfidence,
			ExperienceLevel: string(result.ExperienceLevel),
			StructureScore:  result.StructureScore,
		}); err != nil {
			telemetry.Error("audit append failed", map[string]any{
				"analysis_id": analysis.ID,
				"error":       err.Error(),
			})
		}
	}

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(metrics.NowMillis() - started)

	return analysis, nil
}

// Get returns one analysis owned by the guest.
func (s *Service) Get(ctx context.Context, guestID, analysisID string) (Analysis, error) {
	if guestID == "" || analysisID == "" {
		return Analysis{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, guestID, analysisID)
}

// List returns the guest's analyses, newest first.
func (s *Service) List(ctx context.Context, guestID string, limit, offset int) ([]Analysis, error) {
	if guestID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByGuest(ctx, guestID, limit, offset)
}

// Suggestions asks the AI client for resume improvement advice. The answer is
// cached per prompt so repeated requests for the same analysis do not hit the
// upstream model. Apology and not-configured answers are never cached.
func (s *Service) Suggestions(ctx context.Context, guestID, analysisID string) (string, error) {
	analysis, err := s.Get(ctx, guestID, analysisID)
	if err != nil {
		return "", err
	}

	text := s.extractedText(ctx, analysis)
	prompt := ai.BuildSuggestionPrompt(text)
	key := ai.Key(prompt, ai.PromptVersion)

	if s.Cache != nil {
		if answer, ok := s.Cache.Get(key); ok {
			metrics.IncAICacheHit()
			return answer, nil
		}
		metrics.IncAICacheMiss()
	}

	client := s.AI
	if client == nil {
		client = ai.Placeholder{}
	}
	answer := client.Ask(ctx, prompt)

	if s.Cache != nil && answer != ai.Apology && answer != ai.NotConfigured {
		s.Cache.Set(key, answer)
	}
	return answer, nil
}

func (s *Service) extractedText(ctx context.Context, analysis Analysis) string {
	if analysis.ExtractedTextKey == "" {
		return ""
	}
	body, err := s.Store.Open(ctx, analysis.ExtractedTextKey)
	if err != nil {
		telemetry.Error("open extracted text failed", map[string]any{
			"analysis_id": analysis.ID,
			"error":       err.Error(),
		})
		return ""
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return ""
	}
	return string(raw)
}
