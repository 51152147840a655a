package llm

import (
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"github.com/gabriel-vasile/mimetype"
)

// opus recordings from browsers are 48kHz
const opusSampleRate = 48000

func sniffAudio(audio []byte) *mimetype.MIME {
	return mimetype.Detect(audio)
}

// recognitionEncoding maps a sniffed container to the Google encoding. Unknown
// types are sent unspecified and left to the service to accept or reject.
func recognitionEncoding(m *mimetype.MIME) (speechpb.RecognitionConfig_AudioEncoding, int32) {
	switch {
	case m.Is("video/webm"), m.Is("audio/webm"):
		return speechpb.RecognitionConfig_WEBM_OPUS, opusSampleRate
	case m.Is("audio/ogg"), m.Is("application/ogg"):
		return speechpb.RecognitionConfig_OGG_OPUS, opusSampleRate
	case m.Is("audio/flac"):
		return speechpb.RecognitionConfig_FLAC, 0
	case m.Is("audio/wav"):
		return speechpb.RecognitionConfig_LINEAR16, 0
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED, 0
	}
}
