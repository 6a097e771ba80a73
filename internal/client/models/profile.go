package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Reminder is the daily writing reminder of a profile.
type Reminder struct {
	Enabled bool
	Hour    int
	Minute  int
}

// String renders the reminder as HH:MM, or "desactivado".
func (r Reminder) String() string {
	if !r.Enabled {
		return "desactivado"
	}
	return fmt.Sprintf("%02d:%02d", r.Hour, r.Minute)
}

// ParseReminder reads "HH:MM" as an enabled reminder and "no" or "off" as
// a disabled one that keeps the time of prev.
func ParseReminder(s string, prev Reminder) (Reminder, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "no", "off", "desactivado":
		prev.Enabled = false
		return prev, nil
	}

	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return prev, fmt.Errorf("reminder %q is not HH:MM", s)
	}
	h, herr := strconv.Atoi(hh)
	m, merr := strconv.Atoi(mm)
	if herr != nil || merr != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return prev, fmt.Errorf("reminder %q is not HH:MM", s)
	}
	return Reminder{Enabled: true, Hour: h, Minute: m}, nil
}

// Profile holds the preferences shown on the settings screen. It is stored
// on the server and follows the signed-in user.
type Profile struct {
	Name     string
	Pronouns string
	Color    string
	Emotions []string
	Reminder Reminder
}

// DefaultProfile is used while signed out and until a saved profile exists.
func DefaultProfile() Profile {
	return Profile{
		Color:    "#E5A9A9",
		Emotions: []string{"Alegría", "Ansiedad", "Gratitud", "Agotamiento"},
		Reminder: Reminder{Hour: 20},
	}
}
