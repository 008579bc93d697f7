package auditlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

const (
	analysesFile = "analyses_log.csv"
	feedbackFile = "feedback_log.csv"
)

var analysesHeader = []string{"timestamp", "analysis_id", "guest_id", "file_name", "domain", "confidence", "experience_level", "structure_score"}

var feedbackHeader = []string{"timestamp", "guest_id", "rating", "comment"}

// Logger appends audit rows to CSV files under a directory. Each file gets a
// header row when first created. Safe for concurrent use.
type Logger struct {
	dir string
	mu  sync.Mutex
}

// New creates the log directory if needed and returns a Logger.
func New(dir string) (*Logger, error) {
	if dir == "" {
		return nil, fmt.Errorf("auditlog: dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("auditlog: create dir: %w", err)
	}
	return &Logger{dir: dir}, nil
}

// AnalysisRow is one completed analysis in the audit trail.
type AnalysisRow struct {
	Timestamp       time.Time
	AnalysisID      string
	GuestID         string
	FileName        string
	Domain          string
	Confidence      int
	ExperienceLevel string
	StructureScore  int
}

// FeedbackRow is one submitted feedback entry in the audit trail.
type FeedbackRow struct {
	Timestamp time.Time
	GuestID   string
	Rating    int
	Comment   string
}

// AppendAnalysis records a completed analysis.
func (l *Logger) AppendAnalysis(row AnalysisRow) error {
	record := []string{
		row.Timestamp.UTC().Format(time.RFC3339),
		row.AnalysisID,
		row.GuestID,
		row.FileName,
		row.Domain,
		strconv.Itoa(row.Confidence),
		row.ExperienceLevel,
		strconv.Itoa(row.StructureScore),
	}
	return l.append(analysesFile, analysesHeader, record)
}

// AppendFeedback records a feedback submission.
func (l *Logger) AppendFeedback(row FeedbackRow) error {
	record := []string{
		row.Timestamp.UTC().Format(time.RFC3339),
		row.GuestID,
		strconv.Itoa(row.Rating),
		row.Comment,
	}
	return l.append(feedbackFile, feedbackHeader, record)
}

func (l *Logger) append(name string, header, record []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	path := filepath.Join(l.dir, name)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("auditlog: open %s: %w", name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("auditlog: stat %s: %w", name, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("auditlog: write header: %w", err)
		}
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("auditlog: write record: %w", err)
	}
	w.Flush()
	return w.Error()
}

// ReadAnalyses returns the most recent analysis rows, newest first. A
// non-positive limit returns everything.
func (l *Logger) ReadAnalyses(limit int) ([]AnalysisRow, error) {
	records, err := l.read(analysesFile, limit)
	if err != nil {
		return nil, err
	}
	out := make([]AnalysisRow, 0, len(records))
	for _, rec := range records {
		if len(rec) < len(analysesHeader) {
			continue
		}
		ts, _ := time.Parse(time.RFC3339, rec[0])
		confidence, _ := strconv.Atoi(rec[5])
		structure, _ := strconv.Atoi(rec[7])
		out = append(out, AnalysisRow{
			Timestamp:       ts,
			AnalysisID:      rec[1],
			GuestID:         rec[2],
			FileName:        rec[3],
			Domain:          rec[4],
			Confidence:      confidence,
			ExperienceLevel: rec[6],
			StructureScore:  structure,
		})
	}
	return out, nil
}

// ReadFeedback returns the most recent feedback rows, newest first. A
// non-positive limit returns everything.
func (l *Logger) ReadFeedback(limit int) ([]FeedbackRow, error) {
	records, err := l.read(feedbackFile, limit)
	if err != nil {
		return nil, err
	}
	out := make([]FeedbackRow, 0, len(records))
	for _, rec := range records {
		if len(rec) < len(feedbackHeader) {
			continue
		}
		ts, _ := time.Parse(time.RFC3339, rec[0])
		rating, _ := strconv.Atoi(rec[2])
		out = append(out, FeedbackRow{
			Timestamp: ts,
			GuestID:   rec[1],
			Rating:    rating,
			Comment:   rec[3],
		})
	}
	return out, nil
}

func (l *Logger) read(name string, limit int) ([][]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	path := filepath.Join(l.dir, name)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("auditlog: open %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("auditlog: read %s: %w", name, err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	// Drop the header, reverse so newest rows come first.
	rows := records[1:]
	out := make([][]string, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		out = append(out, rows[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
