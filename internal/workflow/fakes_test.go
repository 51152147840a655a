package workflow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"AppealOS/internal/export"
	"AppealOS/internal/gate"
	"AppealOS/internal/models"
	"AppealOS/internal/session"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeTranscriber struct {
	text  string
	err   error
	calls int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeDrafter struct {
	letter  string
	err     error
	prompts []string
}

func (f *fakeDrafter) Draft(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.letter, f.err
}

type fakeSpeaker struct {
	audio []byte
	err   error
	text  string
}

func (f *fakeSpeaker) Speak(ctx context.Context, text string) ([]byte, error) {
	f.text = text
	return f.audio, f.err
}

type memoryStore struct {
	mu        sync.Mutex
	rows      []models.Appeal
	err       error
	lastLimit int
}

func (m *memoryStore) Save(ctx context.Context, a models.Appeal) (models.Appeal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.Appeal{}, m.err
	}
	a.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, a)
	return a, nil
}

func (m *memoryStore) ListRecent(ctx context.Context, limit int) ([]models.Appeal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Appeal{}
	for i := len(m.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.rows[i])
	}
	return out, nil
}

type recordingPublisher struct {
	topics []string
	events []any
	err    error
}

func (p *recordingPublisher) Publish(ctx context.Context, topic string, event any) error {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return p.err
}

var errUpstream = errors.New("upstream exploded")

var testNow = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

type fixture struct {
	svc         *Service
	sess        *session.Session
	transcriber *fakeTranscriber
	drafter     *fakeDrafter
	speaker     *fakeSpeaker
	store       *memoryStore
	publisher   *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	g, err := gate.New("clinic123", bcrypt.MinCost)
	require.NoError(t, err)

	f := &fixture{
		sess:        session.NewStore(time.Hour).Create(),
		transcriber: &fakeTranscriber{text: "Patient has chronic pain."},
		drafter:     &fakeDrafter{letter: "Dear Reviewer, please reconsider."},
		speaker:     &fakeSpeaker{audio: []byte("mp3")},
		store:       &memoryStore{},
		publisher:   &recordingPublisher{},
	}
	f.svc = New(Deps{
		Gate:        g,
		Transcriber: f.transcriber,
		Drafter:     f.drafter,
		Speaker:     f.speaker,
		Store:       f.store,
		Publisher:   f.publisher,
		Exporter:    export.New(export.WithClock(func() time.Time { return testNow })),
		Now:         func() time.Time { return testNow },
	})
	return f
}

// unlocked returns a fixture whose session is past the gate.
func unlocked(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	require.NoError(t, f.svc.Login(context.Background(), f.sess, "clinic123"))
	return f
}

// drafted returns a fixture whose session holds a generated draft.
func drafted(t *testing.T) *fixture {
	t.Helper()
	f := unlocked(t)
	ctx := context.Background()
	_, err := f.svc.CaptureDictation(ctx, f.sess, []byte("audio"), "clip.webm")
	require.NoError(t, err)
	_, err = f.svc.GenerateDraft(ctx, f.sess, "John Doe", "CO-50")
	require.NoError(t, err)
	return f
}
