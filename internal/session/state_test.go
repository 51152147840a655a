package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasTranscriptIgnoresBlank(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		assert.False(t, HasTranscript(text).Present(), "%q", text)
	}
	text, ok := HasTranscript("Patient has chronic pain.").Text()
	assert.True(t, ok)
	assert.Equal(t, "Patient has chronic pain.", text)
}

func TestHasDraftKeepsBlank(t *testing.T) {
	text, ok := HasDraft("").Text()
	assert.True(t, ok)
	assert.Empty(t, text)
	assert.False(t, NoDraft().Present())
}

func TestPhase(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Phase
	}{
		{"locked", State{}, PhaseLocked},
		{"locked with leftovers", State{Transcript: HasTranscript("x"), Draft: HasDraft("y")}, PhaseLocked},
		{"unlocked", State{Authenticated: true}, PhaseNoTranscript},
		{"transcript", State{Authenticated: true, Transcript: HasTranscript("x")}, PhaseHasTranscript},
		{"draft", State{Authenticated: true, Transcript: HasTranscript("x"), Draft: HasDraft("y")}, PhaseHasDraft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Phase())
		})
	}
}
