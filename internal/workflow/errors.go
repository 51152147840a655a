package workflow

import (
	"errors"
	"net/http"
)

// Kind classifies a failed action for the user interface.
type Kind string

const (
	KindPrecondition  Kind = "precondition"
	KindAuth          Kind = "auth"
	KindTranscription Kind = "transcription"
	KindGeneration    Kind = "generation"
	KindPersistence   Kind = "persistence"
	KindUnavailable   Kind = "unavailable"
	KindNotConfigured Kind = "not_configured"
	KindInternal      Kind = "internal"
)

const (
	MsgMissingDraftInput = "Please provide Patient Name and Voice Dictation."
	MsgInvalidPasscode   = "Invalid Access Code"
	MsgLocked            = "Access code required"
)

var (
	ErrLocked       = errors.New("session is locked")
	ErrNoAudio      = errors.New("audio clip is required")
	ErrMissingInput = errors.New("patient name and transcript are required")
	ErrNoDraft      = errors.New("no draft letter yet")
	ErrEmptyLetter  = errors.New("letter text is empty")
	ErrNoSpeaker    = errors.New("draft read-back is not enabled")
)

// Error is the single failure type returned by Service. Msg, when set, is
// what the user sees instead of Err.
type Error struct {
	Kind Kind
	Op   string
	Err  error
	Msg  string
}

func (e *Error) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Message() string {
	if e.Msg != "" {
		return e.Msg
	}
	return e.Err.Error()
}

func fail(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var we *Error
	if errors.As(err, &we) {
		return we.Kind
	}
	return KindInternal
}

// Message returns the user-facing text for err.
func Message(err error) string {
	var we *Error
	if errors.As(err, &we) {
		return we.Message()
	}
	return "internal error"
}

// HTTPStatus maps a kind to the status the API answers with.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindPrecondition:
		return http.StatusUnprocessableEntity
	case KindAuth:
		return http.StatusUnauthorized
	case KindTranscription, KindGeneration, KindPersistence:
		return http.StatusBadGateway
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindNotConfigured:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
