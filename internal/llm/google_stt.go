/**
* Name: 			google_stt.go
* Description: 		Google Cloud Speech transcription of one recorded clip
* Workflow: 		Speech client creation, synchronous Recognize, transcript join
 */

package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

type recognizeFunc func(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error)

type GoogleTranscriber struct {
	recognize recognizeFunc
	close     func() error
	language  string
}

// NewGoogleTranscriber creates the Speech client from a service account file
func NewGoogleTranscriber(ctx context.Context, credentialsFile, language string) (*GoogleTranscriber, error) {
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("NewGoogleTranscriber(): failed to create speech client: %w", err)
	}

	return &GoogleTranscriber{
		recognize: func(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error) {
			return client.Recognize(ctx, req)
		},
		close:    client.Close,
		language: language,
	}, nil
}

// Transcribe runs a synchronous recognition and joins the top alternative of
// every result.
func (g *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	mime := sniffAudio(audio)
	encoding, sampleRate := recognitionEncoding(mime)
	slog.Debug("GoogleTranscriber.Transcribe(): sending audio",
		"mime", mime.String(), "encoding", encoding.String(), "bytes", len(audio))

	resp, err := g.recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:                   encoding,
			SampleRateHertz:            sampleRate,
			LanguageCode:               g.language,
			EnableAutomaticPunctuation: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", fmt.Errorf("speech recognize: %w", err)
	}

	parts := make([]string, 0, len(resp.GetResults()))
	for _, result := range resp.GetResults() {
		alts := result.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		if text := strings.TrimSpace(alts[0].GetTranscript()); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " "), nil
}

func (g *GoogleTranscriber) Close() error {
	if g.close != nil {
		return g.close()
	}
	return nil
}
