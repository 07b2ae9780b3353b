package repo

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSwapRepo_ListReceived(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT m\.id, m\.time_value, m\.mood, m\.text`).
		WithArgs(7, 2, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "time_value", "mood", "text"}).
			AddRow(5, "10:15", "focus", "coffee beside laptop").
			AddRow(3, "06:20", nil, "sunrise"))

	repo := NewSwapRepo(db)
	received, err := repo.ListReceived(context.Background(), 7, 2, 0)
	if err != nil {
		t.Fatalf("ListReceived: %v", err)
	}
	if len(received) != 2 {
		t.Fatalf("expected 2 moments, got %d", len(received))
	}
	if received[0].ID != 5 || received[1].ID != 3 {
		t.Errorf("unexpected order: %+v", received)
	}
	if received[1].Mood != nil {
		t.Errorf("expected nil mood, got %q", *received[1].Mood)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestSwapRepo_ListReceived_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT m\.id, m\.time_value, m\.mood, m\.text`).
		WithArgs(7, 9, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "time_value", "mood", "text"}))

	repo := NewSwapRepo(db)
	received, err := repo.ListReceived(context.Background(), 7, 9, 0)
	if err != nil {
		t.Fatalf("ListReceived: %v", err)
	}
	if len(received) != 0 {
		t.Errorf("expected no moments, got %+v", received)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestSwapRepo_CountByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM swaps WHERE user_id`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	repo := NewSwapRepo(db)
	n, err := repo.CountByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("CountByUser: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
