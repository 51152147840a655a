/**
* Name: 			openai.go
* Description: 		OpenAI Whisper transcription and chat drafting
* Workflow: 		audio -> transcript, prompt -> one user message -> letter
 */

package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion is returned when the model answers without any text.
var ErrEmptyCompletion = errors.New("model returned an empty completion")

type OpenAIConfig struct {
	APIKey          string
	BaseURL         string // empty keeps the library default
	ChatModel       string
	TranscribeModel string
}

type OpenAIClient struct {
	client          *openai.Client
	chatModel       string
	transcribeModel string
}

func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	chatModel := cfg.ChatModel
	if chatModel == "" {
		chatModel = openai.GPT4o
	}
	transcribeModel := cfg.TranscribeModel
	if transcribeModel == "" {
		transcribeModel = openai.Whisper1
	}
	return &OpenAIClient{
		client:          openai.NewClientWithConfig(clientCfg),
		chatModel:       chatModel,
		transcribeModel: transcribeModel,
	}
}

// Transcribe sends one recorded clip to Whisper. Whisper picks the decoder
// from the file extension, so a name without one gets the sniffed extension.
func (c *OpenAIClient) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if filepath.Ext(filename) == "" {
		filename = defaultName(filename) + sniffAudio(audio).Extension()
	}

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.transcribeModel,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", fmt.Errorf("create transcription: %w", err)
	}
	return resp.Text, nil
}

// Draft sends prompt as a single user message. No prior conversation is
// included, so every call is independent of earlier drafts.
func (c *OpenAIClient) Draft(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func defaultName(filename string) string {
	if filename == "" {
		return "dictation"
	}
	return filepath.Base(filename)
}
