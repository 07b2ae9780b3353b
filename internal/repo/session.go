package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/quiethours/momentswap/internal/models"
)

// ==========================
// SessionRepo
// ==========================
type SessionRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{DB: db}
}

// ==========================
// Create Session
// ==========================
func (r *SessionRepo) Create(ctx context.Context, id string, userID int, expiresAt time.Time) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, expires_at)
		VALUES ($1, $2, $3)
	`, id, userID, expiresAt)
	return err
}

// ==========================
// Get Session
// ==========================
func (r *SessionRepo) Get(ctx context.Context, id string) (*models.Session, error) {
	query := `
		SELECT id, user_id, created_at, expires_at
		FROM sessions
		WHERE id = $1
	`

	s := &models.Session{}

	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.ExpiresAt)

	if err != nil {
		return nil, err
	}

	return s, nil
}

// ==========================
// Delete Session
// ==========================
func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

// ==========================
// Delete Expired Sessions
// ==========================
// Run from the background cleanup job. Returns the number of rows removed.
func (r *SessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
