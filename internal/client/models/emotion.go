// Package models defines the client-side data of Refugio.
package models

// Emotion tags an entry. The selectable set is Anchors; Neutral is what an
// untagged entry is stored as.
type Emotion string

const (
	EmotionJoy     Emotion = "joy"
	EmotionCalm    Emotion = "calm"
	EmotionAnxiety Emotion = "anxiety"
	EmotionSadness Emotion = "sadness"
	EmotionNeutral Emotion = "neutral"
)

// Anchor is one selectable emotion of the editor palette.
type Anchor struct {
	Tag   Emotion
	Label string
	Icon  string
	Color string
}

// Anchors in display order.
var Anchors = []Anchor{
	{Tag: EmotionJoy, Label: "Muted Rose", Icon: "✨", Color: "#C3A9E5"},
	{Tag: EmotionCalm, Label: "Soft Sage", Icon: "🌱", Color: "#A9E5C3"},
	{Tag: EmotionAnxiety, Label: "Warm Amber", Icon: "⚡", Color: "#E5D4A9"},
	{Tag: EmotionSadness, Label: "Deep Indigo", Icon: "🌧", Color: "#A9BAE5"},
}

var neutralAnchor = Anchor{Tag: EmotionNeutral, Label: "Neutral", Icon: "·", Color: "#E8E4DD"}

// AnchorFor returns the palette entry of e. Unknown tags render as neutral.
func AnchorFor(e Emotion) Anchor {
	for _, a := range Anchors {
		if a.Tag == e {
			return a
		}
	}
	return neutralAnchor
}

// Valid reports whether e is one of the known tags, neutral included.
func (e Emotion) Valid() bool {
	return e == EmotionNeutral || AnchorFor(e).Tag == e
}

// OrNeutral maps the empty tag to EmotionNeutral.
func (e Emotion) OrNeutral() Emotion {
	if e == "" {
		return EmotionNeutral
	}
	return e
}
