package analyses

import (
	"time"

	"github.com/reventhtv/careerscope-AI/internal/score"
)

// Analysis is one scored resume upload. The score result is computed
// synchronously at upload time and never mutated afterwards.
type Analysis struct {
	ID               string       `json:"id"`
	GuestID          string       `json:"guestId"`
	FileName         string       `json:"fileName"`
	MimeType         string       `json:"mimeType"`
	SizeBytes        int64        `json:"sizeBytes"`
	StorageKey       string       `json:"-"`
	ExtractedTextKey string       `json:"-"`
	Pages            int          `json:"pages"`
	JobDescription   string       `json:"jobDescription,omitempty"`
	Name             string       `json:"name,omitempty"`
	Email            string       `json:"email,omitempty"`
	Phone            string       `json:"phone,omitempty"`
	Skills           []string     `json:"skills"`
	Result           score.Result `json:"result"`
	CreatedAt        time.Time    `json:"createdAt"`
}
