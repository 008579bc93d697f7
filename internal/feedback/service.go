package feedback

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/reventhtv/careerscope-AI/internal/auditlog"
	"github.com/reventhtv/careerscope-AI/internal/shared/telemetry"
)

// AuditTrail records submitted feedback. *auditlog.Logger satisfies it; a nil
// field disables auditing.
type AuditTrail interface {
	AppendFeedback(row auditlog.FeedbackRow) error
}

// Service contains business logic for feedback.
type Service struct {
	Repo  Repo
	Audit AuditTrail
}

// SubmitRequest carries one feedback submission.
type SubmitRequest struct {
	GuestID string
	Name    string
	Email   string
	Rating  int
	Comment string
}

// Submit validates and stores one feedback entry.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (Feedback, error) {
	if req.GuestID == "" {
		return Feedback{}, ErrInvalidInput
	}

	fb := Feedback{
		ID:        uuid.NewString(),
		GuestID:   req.GuestID,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		CreatedAt: time.Now().UTC(),
	}
	if err := fb.Validate(); err != nil {
		return Feedback{}, err
	}

	if err := s.Repo.Create(ctx, fb); err != nil {
		return Feedback{}, err
	}

	if s.Audit != nil {
		if err := s.Audit.AppendFeedback(auditlog.FeedbackRow{
			Timestamp: fb.CreatedAt,
			GuestID:   fb.GuestID,
			Rating:    fb.Rating,
			Comment:   fb.Comment,
		}); err != nil {
			telemetry.Error("audit append failed", map[string]any{
				"feedback_id": fb.ID,
				"error":       err.Error(),
			})
		}
	}

	return fb, nil
}

// Summarize aggregates all feedback received so far.
func (s *Service) Summarize(ctx context.Context, recentLimit int) (Summary, error) {
	return s.Repo.Summary(ctx, recentLimit)
}
