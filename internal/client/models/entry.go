package models

import "time"

// NewEntry is what the editor sends when a draft is released.
type NewEntry struct {
	OwnerID string
	Content string
	Emotion Emotion
}

// Entry is a stored journal entry as returned by the sync server.
type Entry struct {
	ID        string
	OwnerID   string
	Content   string
	Emotion   Emotion
	CreatedAt time.Time
}
