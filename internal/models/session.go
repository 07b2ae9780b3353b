package models

import "time"

// Session is a server-side login session. The browser only holds a signed
// cookie carrying the session id.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
