package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/refugio/internal/common"
)

const (
	MaxNameLength     = 60
	MaxPronounsLength = 30
	MaxEmotions       = 12
	MaxEmotionLength  = 24
)

var colorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Reminder is the daily writing reminder of a profile.
type Reminder struct {
	Enabled bool
	Hour    int
	Minute  int
}

// Profile holds the per-user preferences shown on the settings screen. There
// is at most one per user.
type Profile struct {
	UserID    string
	Name      string
	Pronouns  string
	Color     string
	Emotions  []string
	Reminder  Reminder
	UpdatedAt time.Time
}

// Normalize trims the text fields, drops blank and repeated emotions and
// validates the rest. Errors wrap common.ErrorValidation.
func (p *Profile) Normalize() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Pronouns = strings.TrimSpace(p.Pronouns)
	p.Color = strings.TrimSpace(p.Color)

	if utf8.RuneCountInString(p.Name) > MaxNameLength {
		return fmt.Errorf("%w: name longer than %d characters", common.ErrorValidation, MaxNameLength)
	}
	if utf8.RuneCountInString(p.Pronouns) > MaxPronounsLength {
		return fmt.Errorf("%w: pronouns longer than %d characters", common.ErrorValidation, MaxPronounsLength)
	}
	if p.Color != "" && !colorRe.MatchString(p.Color) {
		return fmt.Errorf("%w: color must look like #RRGGBB", common.ErrorValidation)
	}

	seen := make(map[string]struct{}, len(p.Emotions))
	emotions := make([]string, 0, len(p.Emotions))
	for _, e := range p.Emotions {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		key := strings.ToLower(e)
		if _, ok := seen[key]; ok {
			continue
		}
		if utf8.RuneCountInString(e) > MaxEmotionLength {
			return fmt.Errorf("%w: emotion %q longer than %d characters", common.ErrorValidation, e, MaxEmotionLength)
		}
		seen[key] = struct{}{}
		emotions = append(emotions, e)
	}
	if len(emotions) > MaxEmotions {
		return fmt.Errorf("%w: at most %d emotions", common.ErrorValidation, MaxEmotions)
	}
	p.Emotions = emotions

	if p.Reminder.Hour < 0 || p.Reminder.Hour > 23 || p.Reminder.Minute < 0 || p.Reminder.Minute > 59 {
		return fmt.Errorf("%w: reminder time out of range", common.ErrorValidation)
	}
	return nil
}
