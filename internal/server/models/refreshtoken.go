package models

import "time"

// RefreshToken is a single-use token exchanged for a new token pair.
type RefreshToken struct {
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}
