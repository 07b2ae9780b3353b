package exchange

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestSubmit_ReceivesPeerMoment(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO moments`).
		WithArgs(7, "08:10", "calm", "hello").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`SELECT id, time_value, mood, text`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "time_value", "mood", "text"}).
			AddRow(3, "06:20", "hopeful", "world"))
	mock.ExpectExec(`INSERT INTO swaps`).
		WithArgs(7, 5, 3).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	svc := NewService(db)
	received, err := svc.Submit(context.Background(), 7, "08:10", "calm", "hello")
	require.NoError(t, err)
	require.Equal(t, 3, received.ID)
	require.Equal(t, "world", received.Text)
	require.NotNil(t, received.Mood)
	require.Equal(t, "hopeful", *received.Mood)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_SelfFallbackWhenStoreEmpty(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO moments`).
		WithArgs(7, "08:10", "calm", "hello").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`SELECT id, time_value, mood, text`).
		WithArgs(1).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO swaps`).
		WithArgs(7, 1, 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	svc := NewService(db)
	received, err := svc.Submit(context.Background(), 7, "08:10", "calm", "hello")
	require.NoError(t, err)
	require.Equal(t, 1, received.ID, "first-ever submission returns the user's own moment")
	require.Equal(t, "hello", received.Text)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_EmptyText(t *testing.T) {
	db, mock := newMock(t)

	svc := NewService(db)
	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Submit(context.Background(), 7, "08:10", "calm", text)
		require.ErrorIs(t, err, ErrEmptyText)
	}
	// No statements should reach the store for rejected submissions.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_DefaultsTimeValueAndOmitsBlankMood(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO moments`).
		WithArgs(7, DefaultTimeValue, nil, "hello").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`SELECT id, time_value, mood, text`).
		WithArgs(1).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO swaps`).
		WithArgs(7, 1, 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	svc := NewService(db)
	received, err := svc.Submit(context.Background(), 7, "  ", "", "hello")
	require.NoError(t, err)
	require.Equal(t, DefaultTimeValue, received.TimeValue)
	require.Nil(t, received.Mood)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_RollsBackWhenSwapInsertFails(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO moments`).
		WithArgs(7, "08:10", "calm", "hello").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`SELECT id, time_value, mood, text`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "time_value", "mood", "text"}).
			AddRow(3, "06:20", "hopeful", "world"))
	mock.ExpectExec(`INSERT INTO swaps`).
		WithArgs(7, 5, 3).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	svc := NewService(db)
	_, err := svc.Submit(context.Background(), 7, "08:10", "calm", "hello")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_RollsBackWhenMomentInsertFails(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO moments`).
		WithArgs(7, "08:10", "calm", "hello").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	svc := NewService(db)
	_, err := svc.Submit(context.Background(), 7, "08:10", "calm", "hello")
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
