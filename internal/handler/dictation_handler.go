package handler

import (
	"fmt"
	"io"
	"net/http"

	"AppealOS/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Whisper rejects uploads above 25 MB, Google above 10 MB inline
const maxAudioBytes = 25 << 20

type TranscriptRequest struct {
	Transcript string `json:"transcript" example:"Patient has chronic pain."`
}

// CaptureDictation godoc
// @Summary      Transcribe a dictation clip
// @Description  Sends one recorded clip to the transcription service and replaces the session transcript.
// @Description  On failure the previous transcript is kept. The clip is never stored.
// @Tags         Dictation
// @Accept       multipart/form-data
// @Produce      json
// @Security     SessionToken
// @Param        audio formData file true "recorded clip (webm, ogg, wav, flac, mp3, m4a)"
// @Success      200 {object} handler.SessionResponse
// @Failure      400 {object} handler.ErrorResponse "missing or empty clip"
// @Failure      401 {object} handler.ErrorResponse "session locked"
// @Failure      413 {object} handler.ErrorResponse "clip too large"
// @Failure      429 {object} handler.ErrorResponse "rate limited"
// @Failure      502 {object} handler.ErrorResponse "transcription failed"
// @Router       /api/dictation [post]
func (h *Handler) CaptureDictation(c *gin.Context) {
	header, err := c.FormFile("audio")
	if err != nil {
		badRequest(c, "Record a dictation clip first")
		return
	}
	if header.Size == 0 {
		badRequest(c, "The recorded clip is empty")
		return
	}
	if header.Size > maxAudioBytes {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error:     fmt.Sprintf("Clips are limited to %d MB", maxAudioBytes>>20),
			Kind:      "invalid_request",
			RequestID: middleware.GetRequestID(c),
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		badRequest(c, "Failed to read the recorded clip")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		badRequest(c, "Failed to read the recorded clip")
		return
	}

	st, err := h.svc.CaptureDictation(c.Request.Context(), middleware.GetSession(c), audio, header.Filename)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, st)
}

// EditTranscript godoc
// @Summary      Edit the transcript
// @Description  Replaces the transcript with the reviewed text. Blank text clears it.
// @Tags         Dictation
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        request body handler.TranscriptRequest true "reviewed transcript"
// @Success      200 {object} handler.SessionResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse "session locked"
// @Router       /api/dictation [put]
func (h *Handler) EditTranscript(c *gin.Context) {
	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	st, err := h.svc.EditTranscript(c.Request.Context(), middleware.GetSession(c), req.Transcript)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, st)
}
