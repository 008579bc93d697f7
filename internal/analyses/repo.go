package analyses

import "context"

// Repo defines persistence operations for analyses.
type Repo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, guestID, analysisID string) (Analysis, error)
	ListByGuest(ctx context.Context, guestID string, limit, offset int) ([]Analysis, error)
}
