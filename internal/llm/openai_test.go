package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAITestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewOpenAIClient(OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL + "/v1",
	})
}

func TestOpenAITranscribe(t *testing.T) {
	audio := []byte("RIFF\x24\x00\x00\x00WAVEfmt \x10\x00\x00\x00\x01\x00\x01\x00")

	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "whisper-1", r.FormValue("model"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "note.wav", header.Filename)
		body, _ := io.ReadAll(file)
		assert.Equal(t, audio, body)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"Patient has chronic pain."}`))
	})

	text, err := client.Transcribe(context.Background(), audio, "note.wav")
	require.NoError(t, err)
	assert.Equal(t, "Patient has chronic pain.", text)
}

func TestOpenAITranscribeAddsSniffedExtension(t *testing.T) {
	audio := []byte("RIFF\x24\x00\x00\x00WAVEfmt \x10\x00\x00\x00\x01\x00\x01\x00")

	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "dictation.wav", header.Filename)
		w.Write([]byte(`{"text":"ok"}`))
	})

	_, err := client.Transcribe(context.Background(), audio, "")
	require.NoError(t, err)
}

func TestOpenAITranscribeError(t *testing.T) {
	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid file format.","type":"invalid_request_error"}}`))
	})

	text, err := client.Transcribe(context.Background(), []byte("not audio"), "clip.txt")
	assert.Error(t, err)
	assert.Empty(t, text)
}

func TestOpenAIDraft(t *testing.T) {
	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "the prompt", req.Messages[0].Content)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","model":"gpt-4o",
			"choices":[{"index":0,"message":{"role":"assistant","content":"Dear Reviewer,"},"finish_reason":"stop"},
			           {"index":1,"message":{"role":"assistant","content":"ignored"},"finish_reason":"stop"}]}`))
	})

	letter, err := client.Draft(context.Background(), "the prompt")
	require.NoError(t, err)
	assert.Equal(t, "Dear Reviewer,", letter)
}

func TestOpenAIDraftEmpty(t *testing.T) {
	for name, body := range map[string]string{
		"no choices":    `{"choices":[]}`,
		"blank content": `{"choices":[{"index":0,"message":{"role":"assistant","content":"  "}}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body))
			})
			_, err := client.Draft(context.Background(), "p")
			assert.ErrorIs(t, err, ErrEmptyCompletion)
		})
	}
}

func TestOpenAIDraftServerError(t *testing.T) {
	client := newOpenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	})

	letter, err := client.Draft(context.Background(), "p")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyCompletion)
	assert.Empty(t, letter)
}

func TestNewOpenAIClientDefaults(t *testing.T) {
	c := NewOpenAIClient(OpenAIConfig{APIKey: "k"})
	assert.Equal(t, "gpt-4o", c.chatModel)
	assert.Equal(t, "whisper-1", c.transcribeModel)
}
