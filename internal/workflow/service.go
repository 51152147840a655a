// Package workflow drives one dashboard session from passcode to saved or
// exported letter. Every action runs under the session lock, so a session
// never has two external calls in flight, and a failed action leaves the
// session state exactly as it was.
package workflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"AppealOS/internal/events"
	"AppealOS/internal/export"
	"AppealOS/internal/llm"
	"AppealOS/internal/logger"
	"AppealOS/internal/models"
	"AppealOS/internal/session"
	"AppealOS/internal/storage"
)

type Unlocker interface {
	Unlock(st *session.State, passcode string) error
}

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

type Drafter interface {
	Draft(ctx context.Context, prompt string) (string, error)
}

type Speaker interface {
	Speak(ctx context.Context, text string) ([]byte, error)
}

type Renderer interface {
	Render(patientName, letter string) ([]byte, error)
}

type Store interface {
	Save(ctx context.Context, appeal models.Appeal) (models.Appeal, error)
	ListRecent(ctx context.Context, limit int) ([]models.Appeal, error)
}

type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

// Deps are the collaborators of a Service. Speaker may be nil when read-back
// is disabled; Publisher and Now have defaults.
type Deps struct {
	Gate        Unlocker
	Transcriber Transcriber
	Drafter     Drafter
	Speaker     Speaker
	Store       Store
	Publisher   Publisher
	Exporter    Renderer
	Now         func() time.Time
}

type Service struct {
	gate        Unlocker
	transcriber Transcriber
	drafter     Drafter
	speaker     Speaker
	store       Store
	publisher   Publisher
	exporter    Renderer
	now         func() time.Time
}

func New(d Deps) *Service {
	s := &Service{
		gate:        d.Gate,
		transcriber: d.Transcriber,
		drafter:     d.Drafter,
		speaker:     d.Speaker,
		store:       d.Store,
		publisher:   d.Publisher,
		exporter:    d.Exporter,
		now:         d.Now,
	}
	if s.publisher == nil {
		s.publisher = &events.NoopPublisher{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Document is a rendered export ready for download.
type Document struct {
	FileName string
	Content  []byte
}

// Login unlocks the session on a passcode match. A wrong passcode is an error
// but never locks a session that is already open.
func (s *Service) Login(ctx context.Context, sess *session.Session, passcode string) error {
	return sess.Do(func(st *session.State) error {
		if err := s.gate.Unlock(st, passcode); err != nil {
			logger.Info(ctx, "login rejected")
			return &Error{Kind: KindAuth, Op: "login", Err: err, Msg: MsgInvalidPasscode}
		}
		logger.Info(ctx, "session unlocked")
		return nil
	})
}

// CaptureDictation transcribes one clip and replaces the transcript with the
// result. A silent clip clears it.
func (s *Service) CaptureDictation(ctx context.Context, sess *session.Session, audio []byte, filename string) (session.State, error) {
	const op = "capture dictation"
	return s.do(sess, op, func(st *session.State) error {
		if len(audio) == 0 {
			return fail(KindPrecondition, op, ErrNoAudio)
		}

		text, err := s.transcriber.Transcribe(ctx, audio, filename)
		if err != nil {
			logger.Error(ctx, "transcription failed", "error", err, "audio_bytes", len(audio))
			return fail(KindTranscription, op, err)
		}

		st.Transcript = session.HasTranscript(text)
		logger.Info(ctx, "dictation transcribed", "audio_bytes", len(audio), "transcript_present", st.Transcript.Present())
		return nil
	})
}

// EditTranscript stores the reviewed transcript. Blank text returns the
// session to the no-transcript step.
func (s *Service) EditTranscript(ctx context.Context, sess *session.Session, text string) (session.State, error) {
	return s.do(sess, "edit transcript", func(st *session.State) error {
		st.Transcript = session.HasTranscript(text)
		return nil
	})
}

// GenerateDraft asks the model for a new letter and replaces any earlier
// draft. Nothing is sent unless both the patient and the transcript are set.
func (s *Service) GenerateDraft(ctx context.Context, sess *session.Session, patientName, denialContext string) (session.State, error) {
	const op = "generate draft"
	return s.do(sess, op, func(st *session.State) error {
		notes, ok := st.Transcript.Text()
		if !ok || strings.TrimSpace(patientName) == "" {
			return &Error{Kind: KindPrecondition, Op: op, Err: ErrMissingInput, Msg: MsgMissingDraftInput}
		}

		prompt := llm.BuildAppealPrompt(llm.AppealInput{
			PatientName:   patientName,
			DenialContext: denialContext,
			Notes:         notes,
		})
		letter, err := s.drafter.Draft(ctx, prompt)
		if err != nil {
			logger.Error(ctx, "draft generation failed", "error", err)
			return fail(KindGeneration, op, err)
		}

		st.Draft = session.HasDraft(letter)
		logger.Info(ctx, "draft generated", "letter_bytes", len(letter))
		return nil
	})
}

// EditDraft stores the user's edits of the current draft.
func (s *Service) EditDraft(ctx context.Context, sess *session.Session, letter string) (session.State, error) {
	const op = "edit draft"
	return s.do(sess, op, func(st *session.State) error {
		if !st.Draft.Present() {
			return fail(KindPrecondition, op, ErrNoDraft)
		}
		st.Draft = session.HasDraft(letter)
		return nil
	})
}

// Save persists the reviewed letter exactly as submitted. An empty letter
// means the session draft unchanged.
func (s *Service) Save(ctx context.Context, sess *session.Session, patientName, letter string) (models.Appeal, error) {
	const op = "save appeal"
	var saved models.Appeal
	_, err := s.do(sess, op, func(st *session.State) error {
		text, err := reviewedLetter(*st, letter)
		if err != nil {
			return fail(KindPrecondition, op, err)
		}

		saved, err = s.store.Save(ctx, models.Appeal{
			PatientName: patientName,
			FinalLetter: text,
			CreatedAt:   s.now(),
		})
		if err != nil {
			logger.Error(ctx, "appeal not saved", "error", err)
			return fail(storageKind(err), op, err)
		}

		st.Draft = session.HasDraft(text)
		logger.Info(ctx, "appeal saved", "appeal_id", saved.ID)
		s.announce(ctx, saved)
		return nil
	})
	return saved, err
}

// ListRecent returns the newest saved appeals, at most limit of them after
// clamping.
func (s *Service) ListRecent(ctx context.Context, sess *session.Session, limit int) ([]models.Appeal, error) {
	const op = "list appeals"
	var appeals []models.Appeal
	_, err := s.do(sess, op, func(st *session.State) error {
		var err error
		appeals, err = s.store.ListRecent(ctx, storage.ClampLimit(limit))
		if err != nil {
			logger.Warn(ctx, "appeal history unavailable", "error", err)
			return fail(storageKind(err), op, err)
		}
		return nil
	})
	return appeals, err
}

// Export renders the reviewed letter as a PDF named after the patient.
func (s *Service) Export(ctx context.Context, sess *session.Session, patientName, letter string) (Document, error) {
	const op = "export appeal"
	var doc Document
	_, err := s.do(sess, op, func(st *session.State) error {
		text, err := reviewedLetter(*st, letter)
		if err != nil {
			return fail(KindPrecondition, op, err)
		}

		content, err := s.exporter.Render(patientName, text)
		if err != nil {
			logger.Error(ctx, "export failed", "error", err)
			return fail(KindInternal, op, err)
		}

		st.Draft = session.HasDraft(text)
		doc = Document{FileName: export.FileName(patientName), Content: content}
		logger.Info(ctx, "appeal exported", "pdf_bytes", len(content))
		return nil
	})
	return doc, err
}

// ReadBack synthesizes the current draft as MP3 audio.
func (s *Service) ReadBack(ctx context.Context, sess *session.Session) ([]byte, error) {
	const op = "read back draft"
	if s.speaker == nil {
		return nil, fail(KindNotConfigured, op, ErrNoSpeaker)
	}

	var audio []byte
	_, err := s.do(sess, op, func(st *session.State) error {
		text, ok := st.Draft.Text()
		if !ok {
			return fail(KindPrecondition, op, ErrNoDraft)
		}

		var err error
		audio, err = s.speaker.Speak(ctx, text)
		if err != nil {
			if errors.Is(err, llm.ErrTextTooLong) {
				return fail(KindPrecondition, op, err)
			}
			logger.Error(ctx, "speech synthesis failed", "error", err)
			return fail(KindGeneration, op, err)
		}
		return nil
	})
	return audio, err
}

// reviewedLetter picks the text a save or export acts on: the submitted
// letter, or the session draft when none was submitted.
func reviewedLetter(st session.State, submitted string) (string, error) {
	draft, ok := st.Draft.Text()
	if !ok {
		return "", ErrNoDraft
	}
	text := submitted
	if strings.TrimSpace(text) == "" {
		text = draft
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyLetter
	}
	return text, nil
}

func storageKind(err error) Kind {
	if errors.Is(err, storage.ErrUnavailable) {
		return KindUnavailable
	}
	return KindPersistence
}

// announce publishes a saved-record event. The save has already succeeded,
// so a failed publish is only logged.
func (s *Service) announce(ctx context.Context, saved models.Appeal) {
	event := events.AppealSaved{ID: saved.ID, CreatedAt: saved.CreatedAt}
	if err := s.publisher.Publish(ctx, events.TopicAppealSaved, event); err != nil {
		logger.Warn(ctx, "saved-appeal event not published", "appeal_id", saved.ID, "error", err)
	}
}

// do runs fn on a scratch copy of the state and commits it only when fn
// succeeds. It returns the state after the action.
func (s *Service) do(sess *session.Session, op string, fn func(st *session.State) error) (session.State, error) {
	var after session.State
	err := sess.Do(func(st *session.State) error {
		if !st.Authenticated {
			return &Error{Kind: KindAuth, Op: op, Err: ErrLocked, Msg: MsgLocked}
		}
		scratch := *st
		if err := fn(&scratch); err != nil {
			after = *st
			return err
		}
		*st = scratch
		after = scratch
		return nil
	})
	return after, err
}
