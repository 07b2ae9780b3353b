package models

import "time"

// Moment is a single journal entry. UserID is nil for seeded demo entries,
// and Mood is nil when the author left it blank.
type Moment struct {
	ID        int       `json:"id"`
	UserID    *int      `json:"user_id,omitempty"`
	TimeValue string    `json:"time_value"`
	Mood      *string   `json:"mood"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ReceivedMoment is the gallery/result view of a moment: what a user sees
// after an exchange, without ownership or timing metadata.
type ReceivedMoment struct {
	ID        int     `json:"id"`
	TimeValue string  `json:"time_value"`
	Mood      *string `json:"mood"`
	Text      string  `json:"text"`
}
