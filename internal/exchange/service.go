package exchange

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/quiethours/momentswap/internal/metrics"
	"github.com/quiethours/momentswap/internal/models"
)

// ErrEmptyText is returned when the submitted moment has no text after
// trimming whitespace. The handler treats it as a silent redirect back to
// the form, not a server error.
var ErrEmptyText = errors.New("moment text is empty")

// DefaultTimeValue is substituted when the form omits the time-of-day label.
const DefaultTimeValue = "00:00"

// Service runs the submit-and-pair workflow: persist the user's moment,
// pick one moment at random from everything anyone has ever submitted
// (excluding the new one), and record the pairing as a swap.
type Service struct {
	DB *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Submit persists a new moment for userID and returns the moment received
// in exchange. Selection is uniform over all other moments in the store; a
// moment may be received by any number of users across swaps. When the
// store holds no other moment, the user receives their own moment back.
//
// The moment insert, the peer selection, and the swap insert run in a
// single transaction so a moment and its swap never exist independently.
func (s *Service) Submit(ctx context.Context, userID int, timeValue, mood, text string) (*models.ReceivedMoment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	timeValue = strings.TrimSpace(timeValue)
	if timeValue == "" {
		timeValue = DefaultTimeValue
	}

	var moodVal *string
	if m := strings.TrimSpace(mood); m != "" {
		moodVal = &m
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var giverID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO moments (user_id, time_value, mood, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, userID, timeValue, moodVal, text).Scan(&giverID)
	if err != nil {
		return nil, err
	}

	received := &models.ReceivedMoment{}
	selfSwap := false
	err = tx.QueryRowContext(ctx, `
		SELECT id, time_value, mood, text
		FROM moments
		WHERE id <> $1
		ORDER BY RANDOM()
		LIMIT 1
	`, giverID).Scan(&received.ID, &received.TimeValue, &received.Mood, &received.Text)
	if errors.Is(err, sql.ErrNoRows) {
		// First moment in the store: the user receives their own back.
		received = &models.ReceivedMoment{ID: giverID, TimeValue: timeValue, Mood: moodVal, Text: text}
		selfSwap = true
	} else if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO swaps (user_id, giver_moment_id, receiver_moment_id)
		VALUES ($1, $2, $3)
	`, userID, giverID, received.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	metrics.RecordExchange(selfSwap)
	return received, nil
}
