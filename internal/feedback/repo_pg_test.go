package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	fb := Feedback{
		ID:        "fb-1",
		GuestID:   "guest-1",
		Name:      "Priya",
		Email:     "priya@example.com",
		Rating:    4,
		Comment:   "solid",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO feedback").
		WithArgs(fb.ID, fb.GuestID, fb.Name, fb.Email, fb.Rating, fb.Comment, fb.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), fb); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoSummary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT rating, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}).
			AddRow(5, 2).
			AddRow(3, 1))

	mock.ExpectQuery("SELECT id, guest_id, name, email, rating, comment, created_at").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "guest_id", "name", "email", "rating", "comment", "created_at"}).
			AddRow("fb-2", "guest-1", "", "", 3, "ok", time.Now().UTC()))

	summary, err := repo.Summary(context.Background(), 5)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.Count != 3 {
		t.Fatalf("count = %d, want 3", summary.Count)
	}
	if summary.AverageRating != 4.33 {
		t.Fatalf("average = %v, want 4.33", summary.AverageRating)
	}
	if len(summary.RecentComments) != 1 || summary.RecentComments[0].Comment != "ok" {
		t.Fatalf("recent = %v", summary.RecentComments)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
