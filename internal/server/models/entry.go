// Package models defines server-side data models persisted in PostgreSQL.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/refugio/internal/common"
)

// Emotion is one of the closed set of tags an entry can carry.
type Emotion string

const (
	EmotionJoy     Emotion = "joy"
	EmotionCalm    Emotion = "calm"
	EmotionAnxiety Emotion = "anxiety"
	EmotionSadness Emotion = "sadness"
	EmotionNeutral Emotion = "neutral"
)

// ParseEmotion validates s. The empty string means "no tag" and maps to
// EmotionNeutral.
func ParseEmotion(s string) (Emotion, error) {
	switch e := Emotion(strings.TrimSpace(s)); e {
	case "":
		return EmotionNeutral, nil
	case EmotionJoy, EmotionCalm, EmotionAnxiety, EmotionSadness, EmotionNeutral:
		return e, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrorUnknownEmotion, s)
	}
}

// Entry is an immutable journal entry. ID and CreatedAt are assigned by the
// server.
type Entry struct {
	ID        string
	UserID    string
	Content   string
	Emotion   Emotion
	CreatedAt time.Time
}
