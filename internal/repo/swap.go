package repo

import (
	"context"
	"database/sql"

	"github.com/quiethours/momentswap/internal/models"
)

// ==========================
// SwapRepo
// ==========================
type SwapRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewSwapRepo(db *sql.DB) *SwapRepo {
	return &SwapRepo{DB: db}
}

// ==========================
// Count By User
// ==========================
// One swap per exchange, so this is also the number of moments received.
func (r *SwapRepo) CountByUser(ctx context.Context, userID int) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM swaps WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

// ==========================
// List Received Moments
// ==========================
// The gallery feed: moments the user received, newest swap first.
func (r *SwapRepo) ListReceived(ctx context.Context, userID, limit, offset int) ([]models.ReceivedMoment, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT m.id, m.time_value, m.mood, m.text
		FROM swaps s
		JOIN moments m ON s.receiver_moment_id = m.id
		WHERE s.user_id = $1
		ORDER BY s.swap_time DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var received []models.ReceivedMoment
	for rows.Next() {
		var m models.ReceivedMoment
		if err := rows.Scan(&m.ID, &m.TimeValue, &m.Mood, &m.Text); err != nil {
			return nil, err
		}
		received = append(received, m)
	}

	return received, rows.Err()
}
