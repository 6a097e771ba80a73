package models

// View is a top-level screen of the client.
type View string

const (
	ViewLanding  View = "landing"
	ViewEditor   View = "editor"
	ViewHistory  View = "history"
	ViewSettings View = "settings"
)

// Public reports whether v can be shown without a session.
func (v View) Public() bool {
	return v == ViewLanding
}
