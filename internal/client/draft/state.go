package draft

import "github.com/dmitrijs2005/refugio/internal/client/models"

type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseEditing
	// PhaseSubmitting is only observable by listeners during Submit.
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

type Event int

const (
	EventFocusEntered Event = iota
	EventFocusExited
	EventAckShown
	EventAckHidden
	EventPromptRotated
	EventRestored
	EventSubmitted
	EventCleared
)

var eventNames = [...]string{
	EventFocusEntered:  "focus_entered",
	EventFocusExited:   "focus_exited",
	EventAckShown:      "ack_shown",
	EventAckHidden:     "ack_hidden",
	EventPromptRotated: "prompt_rotated",
	EventRestored:      "restored",
	EventSubmitted:     "submitted",
	EventCleared:       "cleared",
}

func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// Snapshot is a copy of the controller state for rendering.
type Snapshot struct {
	Phase      Phase
	Text       string
	Emotion    models.Emotion
	Focused    bool
	AckVisible bool
	Prompt     string
}

// Listener is called outside the controller lock, in the goroutine that
// caused the event. It must not block.
type Listener func(Event, Snapshot)

// Prompts rotate as the editor placeholder.
var Prompts = []string{
	"¿Qué pesa hoy en tu mente?",
	"Escribe sin preocuparte por la ortografía...",
	"Este es un espacio seguro. Nadie más lo leerá.",
	"¿Hubo algo que te hiciera sonreír hoy, por más pequeño que sea?",
	"Toma una respiración profunda antes de empezar...",
}

// AckMessage is shown for AckDuration after a release.
const AckMessage = "Guardado con éxito en tu refugio."

// ReleaseLabel is the caption of the submit action.
const ReleaseLabel = "Soltar pensamiento"
