package feedback

import (
	"context"
	"math"
	"sync"
)

// MemoryRepo is an in-memory Repo for local development and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries []Feedback
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends the feedback entry.
func (r *MemoryRepo) Create(ctx context.Context, fb Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, fb)
	return nil
}

// Summary aggregates the stored entries. Recent comments come back newest
// first and skip entries without a comment.
func (r *MemoryRepo) Summary(ctx context.Context, recentLimit int) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	if recentLimit <= 0 {
		recentLimit = 5
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := Summary{
		RatingCounts:   make(map[int]int),
		RecentComments: []Feedback{},
	}

	total := 0
	for _, fb := range r.entries {
		summary.Count++
		summary.RatingCounts[fb.Rating]++
		total += fb.Rating
	}
	if summary.Count > 0 {
		avg := float64(total) / float64(summary.Count)
		summary.AverageRating = math.Round(avg*100) / 100
	}

	for i := len(r.entries) - 1; i >= 0 && len(summary.RecentComments) < recentLimit; i-- {
		if r.entries[i].Comment == "" {
			continue
		}
		summary.RecentComments = append(summary.RecentComments, r.entries[i])
	}
	return summary, nil
}
