/**
* Name: 			tts.go
* Description: 		Google Text-to-Speech read-back of the draft letter
* Workflow: 		TTS client creation, text send, MP3 audio receive
 */

package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

// Synthesis input is limited to 5000 bytes per request.
const maxSynthesisBytes = 5000

var ErrTextTooLong = errors.New("text exceeds the text-to-speech request limit")

type synthesizeFunc func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error)

type TTSClient struct {
	synthesize synthesizeFunc
	close      func() error
	language   string
}

func NewTTSClient(ctx context.Context, credentialsFile, language string) (*TTSClient, error) {
	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("NewTTSClient(): failed to create TTS client: %w", err)
	}
	return &TTSClient{
		synthesize: func(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest) (*texttospeechpb.SynthesizeSpeechResponse, error) {
			return client.SynthesizeSpeech(ctx, req)
		},
		close:    client.Close,
		language: language,
	}, nil
}

// Speak converts text to MP3. The whole letter is synthesized before anything
// is returned.
func (t *TTSClient) Speak(ctx context.Context, text string) ([]byte, error) {
	if len(text) > maxSynthesisBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTextTooLong, len(text))
	}

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: t.language,
			SsmlGender:   texttospeechpb.SsmlVoiceGender_NEUTRAL,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := t.synthesize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}

	slog.Debug("TTSClient.Speak(): synthesized", "audio_bytes", len(resp.GetAudioContent()))
	return resp.GetAudioContent(), nil
}

func (t *TTSClient) Close() error {
	if t.close != nil {
		return t.close()
	}
	return nil
}
