package llm

import (
	"context"
	"errors"
	"testing"

	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/gabriel-vasile/mimetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wavClip = []byte("RIFF\x24\x00\x00\x00WAVEfmt \x10\x00\x00\x00\x01\x00\x01\x00")

func TestGoogleTranscriberJoinsResults(t *testing.T) {
	var got *speechpb.RecognizeRequest
	g := &GoogleTranscriber{
		language: "en-US",
		recognize: func(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error) {
			got = req
			return &speechpb.RecognizeResponse{Results: []*speechpb.SpeechRecognitionResult{
				{Alternatives: []*speechpb.SpeechRecognitionAlternative{{Transcript: "Patient has"}, {Transcript: "Patient hat"}}},
				{Alternatives: nil},
				{Alternatives: []*speechpb.SpeechRecognitionAlternative{{Transcript: " chronic pain. "}}},
			}}, nil
		},
	}

	text, err := g.Transcribe(context.Background(), wavClip, "clip.wav")
	require.NoError(t, err)
	assert.Equal(t, "Patient has chronic pain.", text)

	require.NotNil(t, got)
	assert.Equal(t, "en-US", got.GetConfig().GetLanguageCode())
	assert.Equal(t, speechpb.RecognitionConfig_LINEAR16, got.GetConfig().GetEncoding())
	assert.True(t, got.GetConfig().GetEnableAutomaticPunctuation())
	assert.Equal(t, wavClip, got.GetAudio().GetContent())
}

func TestGoogleTranscriberSilence(t *testing.T) {
	g := &GoogleTranscriber{
		recognize: func(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error) {
			return &speechpb.RecognizeResponse{}, nil
		},
	}
	text, err := g.Transcribe(context.Background(), wavClip, "")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGoogleTranscriberError(t *testing.T) {
	boom := errors.New("quota exceeded")
	g := &GoogleTranscriber{
		recognize: func(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error) {
			return nil, boom
		},
	}
	_, err := g.Transcribe(context.Background(), wavClip, "")
	assert.ErrorIs(t, err, boom)
}

func TestRecognitionEncoding(t *testing.T) {
	tests := []struct {
		mime       string
		encoding   speechpb.RecognitionConfig_AudioEncoding
		sampleRate int32
	}{
		{"video/webm", speechpb.RecognitionConfig_WEBM_OPUS, opusSampleRate},
		{"audio/ogg", speechpb.RecognitionConfig_OGG_OPUS, opusSampleRate},
		{"audio/flac", speechpb.RecognitionConfig_FLAC, 0},
		{"audio/wav", speechpb.RecognitionConfig_LINEAR16, 0},
		{"text/plain", speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, 0},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			m := mimetype.Lookup(tt.mime)
			require.NotNil(t, m)
			encoding, rate := recognitionEncoding(m)
			assert.Equal(t, tt.encoding, encoding)
			assert.Equal(t, tt.sampleRate, rate)
		})
	}
}

func TestSniffAudio(t *testing.T) {
	assert.True(t, sniffAudio(wavClip).Is("audio/wav"))
	assert.Equal(t, ".wav", sniffAudio(wavClip).Extension())
}
