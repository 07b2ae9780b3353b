package repo

import (
	"context"
	"database/sql"

	"github.com/quiethours/momentswap/internal/models"
)

// ==========================
// MomentRepo
// ==========================
type MomentRepo struct {
	DB *sql.DB
}

// ==========================
// Constructor
// ==========================
func NewMomentRepo(db *sql.DB) *MomentRepo {
	return &MomentRepo{DB: db}
}

// ==========================
// Insert Moment
// ==========================
// userID and mood may be nil (ownerless seed entries, blank mood).
func (r *MomentRepo) Insert(ctx context.Context, userID *int, timeValue string, mood *string, text string) (*models.Moment, error) {
	query := `
		INSERT INTO moments (user_id, time_value, mood, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, time_value, mood, text, created_at
	`

	m := &models.Moment{}

	err := r.DB.QueryRowContext(ctx, query, userID, timeValue, mood, text).
		Scan(&m.ID, &m.UserID, &m.TimeValue, &m.Mood, &m.Text, &m.CreatedAt)

	if err != nil {
		return nil, err
	}

	return m, nil
}

// ==========================
// Get By ID
// ==========================
func (r *MomentRepo) GetByID(ctx context.Context, id int) (*models.Moment, error) {
	query := `
		SELECT id, user_id, time_value, mood, text, created_at
		FROM moments
		WHERE id = $1
	`

	m := &models.Moment{}

	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&m.ID, &m.UserID, &m.TimeValue, &m.Mood, &m.Text, &m.CreatedAt)

	if err != nil {
		return nil, err
	}

	return m, nil
}

// ==========================
// Count All Moments
// ==========================
func (r *MomentRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM moments`).Scan(&n)
	return n, err
}

// ==========================
// Count By User
// ==========================
func (r *MomentRepo) CountByUser(ctx context.Context, userID int) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM moments WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

// ==========================
// Count Distinct Active Days
// ==========================
// Counts the distinct calendar dates on which the user authored at least one
// moment. This is what the stats page calls "streak".
func (r *MomentRepo) CountDistinctDays(ctx context.Context, userID int) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT created_at::date) FROM moments WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

// ==========================
// List Recent
// ==========================
func (r *MomentRepo) ListRecent(ctx context.Context, limit int) ([]models.Moment, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, time_value, mood, text, created_at
		FROM moments
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var moments []models.Moment
	for rows.Next() {
		var m models.Moment
		if err := rows.Scan(&m.ID, &m.UserID, &m.TimeValue, &m.Mood, &m.Text, &m.CreatedAt); err != nil {
			return nil, err
		}
		moments = append(moments, m)
	}

	return moments, rows.Err()
}
