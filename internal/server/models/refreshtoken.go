package models

import "time"

// RefreshToken is the single stored refresh token of a user. The refresh_tokens
// table has a uniqueness constraint on UserID, so rotation overwrites the row
// in place.
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

// Expired reports whether the token's expiry time has passed at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return t.Expires.Before(now)
}
