package feedback

import (
	"errors"
	"time"
)

// ErrInvalidInput flags feedback that fails validation.
var ErrInvalidInput = errors.New("invalid input")

const maxCommentLength = 2000

// Feedback is one rating submitted by a guest.
type Feedback struct {
	ID        string    `json:"id"`
	GuestID   string    `json:"guestId"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the rating range and comment length.
func (f Feedback) Validate() error {
	if f.Rating < 1 || f.Rating > 5 {
		return ErrInvalidInput
	}
	if len(f.Comment) > maxCommentLength {
		return ErrInvalidInput
	}
	return nil
}

// Summary aggregates all feedback received so far.
type Summary struct {
	Count          int         `json:"count"`
	AverageRating  float64     `json:"averageRating"`
	RatingCounts   map[int]int `json:"ratingCounts"`
	RecentComments []Feedback  `json:"recentComments"`
}
