package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/reventhtv/careerscope-AI/internal/score"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis. The score result and detected skills are
// stored as JSONB documents.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
    id,
    guest_id,
    file_name,
    mime_type,
    size_bytes,
    storage_key,
    extracted_text_key,
    pages,
    job_description,
    name,
    email,
    phone,
    skills,
    result,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	skills, err := json.Marshal(analysis.Skills)
	if err != nil {
		return fmt.Errorf("marshal skills: %w", err)
	}
	result, err := json.Marshal(analysis.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		analysis.ID,
		analysis.GuestID,
		analysis.FileName,
		analysis.MimeType,
		analysis.SizeBytes,
		analysis.StorageKey,
		analysis.ExtractedTextKey,
		analysis.Pages,
		analysis.JobDescription,
		analysis.Name,
		analysis.Email,
		analysis.Phone,
		skills,
		result,
		analysis.CreatedAt,
	)
	return err
}

const selectColumns = `
SELECT id, guest_id, file_name, mime_type, size_bytes, storage_key, extracted_text_key, pages, job_description, name, email, phone, skills, result, created_at
FROM analyses`

// GetByID returns one analysis owned by the guest.
func (r *PGRepo) GetByID(ctx context.Context, guestID, analysisID string) (Analysis, error) {
	query := selectColumns + `
WHERE id = $1 AND guest_id = $2`
	row := r.DB.QueryRowContext(ctx, query, analysisID, guestID)
	analysis, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// ListByGuest returns the guest's analyses, newest first.
func (r *PGRepo) ListByGuest(ctx context.Context, guestID string, limit, offset int) ([]Analysis, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := selectColumns + `
WHERE guest_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, guestID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Analysis, 0, limit)
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var analysis Analysis
	var jobDescription, name, email, phone sql.NullString
	var skills, result []byte

	err := row.Scan(
		&analysis.ID,
		&analysis.GuestID,
		&analysis.FileName,
		&analysis.MimeType,
		&analysis.SizeBytes,
		&analysis.StorageKey,
		&analysis.ExtractedTextKey,
		&analysis.Pages,
		&jobDescription,
		&name,
		&email,
		&phone,
		&skills,
		&result,
		&analysis.CreatedAt,
	)
	if err != nil {
		return Analysis{}, err
	}

	analysis.JobDescription = jobDescription.String
	analysis.Name = name.String
	analysis.Email = email.String
	analysis.Phone = phone.String

	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &analysis.Skills); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal skills: %w", err)
		}
	}
	if len(result) > 0 {
		var scored score.Result
		if err := json.Unmarshal(result, &scored); err != nil {
			return Analysis{}, fmt.Errorf("unmarshal result: %w", err)
		}
		analysis.Result = scored
	}
	return analysis, nil
}
