package models

import "time"

// Swap pairs the moment a user gave with the moment they received in
// exchange. In the first-ever-submission case the two are the same moment.
type Swap struct {
	ID               int       `json:"id"`
	UserID           int       `json:"user_id"`
	GiverMomentID    int       `json:"giver_moment_id"`
	ReceiverMomentID int       `json:"receiver_moment_id"`
	SwapTime         time.Time `json:"swap_time"`
}

// Stats are the per-user counters shown on the stats page. Streak is the
// number of distinct calendar days with at least one authored moment, not a
// consecutive-day run; the name is kept for wire compatibility.
type Stats struct {
	UserMoments  int `json:"user_moments"`
	UserReceived int `json:"user_received"`
	TotalMoments int `json:"total_moments"`
	Streak       int `json:"streak"`
}
