package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchorFor(t *testing.T) {
	assert.Equal(t, "Soft Sage", AnchorFor(EmotionCalm).Label)
	assert.Equal(t, EmotionNeutral, AnchorFor("").Tag)
	assert.Equal(t, EmotionNeutral, AnchorFor("rage").Tag)
	assert.Len(t, Anchors, 4)
}

func TestEmotion_Valid(t *testing.T) {
	for _, e := range []Emotion{EmotionJoy, EmotionCalm, EmotionAnxiety, EmotionSadness, EmotionNeutral} {
		assert.True(t, e.Valid(), e)
	}
	assert.False(t, Emotion("").Valid())
	assert.False(t, Emotion("rage").Valid())
}

func TestEmotion_OrNeutral(t *testing.T) {
	assert.Equal(t, EmotionNeutral, Emotion("").OrNeutral())
	assert.Equal(t, EmotionJoy, EmotionJoy.OrNeutral())
}

func TestSession_Valid(t *testing.T) {
	assert.False(t, Session{}.Valid())
	assert.True(t, Session{UserID: "u1"}.Valid())
}

func TestView_Public(t *testing.T) {
	assert.True(t, ViewLanding.Public())
	for _, v := range []View{ViewEditor, ViewHistory, ViewSettings} {
		assert.False(t, v.Public(), v)
	}
}

func TestReminder_String(t *testing.T) {
	assert.Equal(t, "desactivado", Reminder{Hour: 20}.String())
	assert.Equal(t, "08:05", Reminder{Enabled: true, Hour: 8, Minute: 5}.String())
}

func TestParseReminder(t *testing.T) {
	prev := Reminder{Enabled: true, Hour: 21, Minute: 30}

	tests := []struct {
		in      string
		want    Reminder
		wantErr bool
	}{
		{in: "07:45", want: Reminder{Enabled: true, Hour: 7, Minute: 45}},
		{in: " 7:05 ", want: Reminder{Enabled: true, Hour: 7, Minute: 5}},
		{in: "no", want: Reminder{Hour: 21, Minute: 30}},
		{in: "OFF", want: Reminder{Hour: 21, Minute: 30}},
		{in: "24:00", want: prev, wantErr: true},
		{in: "12:60", want: prev, wantErr: true},
		{in: "mañana", want: prev, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReminder(tt.in, prev)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	assert.False(t, p.Reminder.Enabled)
	assert.Equal(t, 20, p.Reminder.Hour)
	assert.Len(t, p.Emotions, 4)

	// callers may edit the returned slice freely
	p.Emotions[0] = "x"
	assert.Equal(t, "Alegría", DefaultProfile().Emotions[0])
}
