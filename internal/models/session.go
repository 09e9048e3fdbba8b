package models

import "time"

// Session binds an opaque random token to a user and an expiry.
// Presented back via the session cookie on subsequent requests.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is stale relative to now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
