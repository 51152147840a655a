package session

import "strings"

// Phase names the position of a session in the dashboard workflow.
type Phase string

const (
	PhaseLocked        Phase = "locked"
	PhaseNoTranscript  Phase = "no_transcript"
	PhaseHasTranscript Phase = "has_transcript"
	PhaseHasDraft      Phase = "has_draft"
)

// Transcript is either NoTranscript or HasTranscript(text).
type Transcript struct {
	text    string
	present bool
}

func NoTranscript() Transcript { return Transcript{} }

// HasTranscript returns NoTranscript for blank text, so a captured silence
// never unlocks drafting.
func HasTranscript(text string) Transcript {
	if strings.TrimSpace(text) == "" {
		return NoTranscript()
	}
	return Transcript{text: text, present: true}
}

func (t Transcript) Text() (string, bool) { return t.text, t.present }

func (t Transcript) Present() bool { return t.present }

// Draft is either NoDraft or HasDraft(text). A draft cleared by the user is
// still a draft: the session stays in the review step.
type Draft struct {
	text    string
	present bool
}

func NoDraft() Draft { return Draft{} }

func HasDraft(text string) Draft { return Draft{text: text, present: true} }

func (d Draft) Text() (string, bool) { return d.text, d.present }

func (d Draft) Present() bool { return d.present }

// State is the per-session workflow state. It is only reachable through
// Session.Do and Session.Snapshot.
type State struct {
	Authenticated bool
	Transcript    Transcript
	Draft         Draft
}

func (st State) Phase() Phase {
	switch {
	case !st.Authenticated:
		return PhaseLocked
	case st.Draft.Present():
		return PhaseHasDraft
	case st.Transcript.Present():
		return PhaseHasTranscript
	default:
		return PhaseNoTranscript
	}
}
