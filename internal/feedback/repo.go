package feedback

import "context"

// Repo persists feedback entries.
type Repo interface {
	Create(ctx context.Context, fb Feedback) error
	Summary(ctx context.Context, recentLimit int) (Summary, error)
}
