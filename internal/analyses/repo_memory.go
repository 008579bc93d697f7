package analyses

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database is
// configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Analysis // guestID -> analyses
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Analysis)}
}

// Create stores an analysis for the guest.
func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[analysis.GuestID] = append(r.data[analysis.GuestID], analysis)
	return nil
}

// GetByID returns one analysis owned by the guest.
func (r *MemoryRepo) GetByID(ctx context.Context, guestID, analysisID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.data[guestID] {
		if a.ID == analysisID {
			return a, nil
		}
	}
	return Analysis{}, ErrNotFound
}

// ListByGuest returns the guest's analyses, newest first.
func (r *MemoryRepo) ListByGuest(ctx context.Context, guestID string, limit, offset int) ([]Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	owned := r.data[guestID]
	r.mu.RUnlock()

	if len(owned) == 0 || offset >= len(owned) {
		return []Analysis{}, nil
	}

	out := make([]Analysis, len(owned))
	copy(out, owned)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}
