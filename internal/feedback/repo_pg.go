package feedback

import (
	"context"
	"database/sql"
	"math"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new feedback row.
func (r *PGRepo) Create(ctx context.Context, fb Feedback) error {
	const query = `
INSERT INTO feedback (id, guest_id, name, email, rating, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.ExecContext(ctx, query, fb.ID, fb.GuestID, fb.Name, fb.Email, fb.Rating, fb.Comment, fb.CreatedAt)
	return err
}

// Summary aggregates all feedback rows plus the most recent comments.
func (r *PGRepo) Summary(ctx context.Context, recentLimit int) (Summary, error) {
	if recentLimit <= 0 {
		recentLimit = 5
	}

	summary := Summary{
		RatingCounts:   make(map[int]int),
		RecentComments: []Feedback{},
	}

	const histogramQuery = `
SELECT rating, COUNT(*)
FROM feedback
GROUP BY rating`

	rows, err := r.DB.QueryContext(ctx, histogramQuery)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return Summary{}, err
		}
		summary.RatingCounts[rating] = count
		summary.Count += count
		total += rating * count
	}
	if err := rows.Err(); err != nil {
		return Summary{}, err
	}
	if summary.Count > 0 {
		avg := float64(total) / float64(summary.Count)
		summary.AverageRating = math.Round(avg*100) / 100
	}

	const recentQuery = `
SELECT id, guest_id, name, email, rating, comment, created_at
FROM feedback
WHERE comment <> ''
ORDER BY created_at DESC
LIMIT $1`

	recent, err := r.DB.QueryContext(ctx, recentQuery, recentLimit)
	if err != nil {
		return Summary{}, err
	}
	defer recent.Close()

	for recent.Next() {
		var fb Feedback
		if err := recent.Scan(&fb.ID, &fb.GuestID, &fb.Name, &fb.Email, &fb.Rating, &fb.Comment, &fb.CreatedAt); err != nil {
			return Summary{}, err
		}
		summary.RecentComments = append(summary.RecentComments, fb)
	}
	return summary, recent.Err()
}
