package handler

import (
	"net/http"

	"AppealOS/internal/middleware"

	"github.com/gin-gonic/gin"
)

type DraftRequest struct {
	PatientName   string `json:"patient_name" example:"John Doe #9921"`
	DenialContext string `json:"denial_context" example:"Denial CO-50: Not Medically Necessary"`
}

type LetterRequest struct {
	Letter string `json:"letter" example:"Dear Claims Reviewer, ..."`
}

// GenerateDraft godoc
// @Summary      Draft the appeal letter
// @Description  Builds the appeal prompt from patient, denial context and transcript and replaces the draft
// @Description  with the model's answer. Requires a transcript and a patient name; otherwise nothing is sent.
// @Tags         Draft
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        request body handler.DraftRequest true "patient and denial context"
// @Success      200 {object} handler.SessionResponse
// @Failure      401 {object} handler.ErrorResponse "session locked"
// @Failure      422 {object} handler.ErrorResponse "Please provide Patient Name and Voice Dictation."
// @Failure      429 {object} handler.ErrorResponse "rate limited"
// @Failure      502 {object} handler.ErrorResponse "generation failed"
// @Router       /api/draft [post]
func (h *Handler) GenerateDraft(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	st, err := h.svc.GenerateDraft(c.Request.Context(), middleware.GetSession(c), req.PatientName, req.DenialContext)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, st)
}

// EditDraft godoc
// @Summary      Edit the draft
// @Description  Stores the user's edits of the current draft.
// @Tags         Draft
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        request body handler.LetterRequest true "edited letter"
// @Success      200 {object} handler.SessionResponse
// @Failure      401 {object} handler.ErrorResponse "session locked"
// @Failure      422 {object} handler.ErrorResponse "no draft yet"
// @Router       /api/draft [put]
func (h *Handler) EditDraft(c *gin.Context) {
	var req LetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	st, err := h.svc.EditDraft(c.Request.Context(), middleware.GetSession(c), req.Letter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondState(c, st)
}

// ReadBackDraft godoc
// @Summary      Read the draft aloud
// @Description  Synthesizes the current draft as MP3 audio. Only available when TTS_ENABLED is set.
// @Tags         Draft
// @Produce      audio/mpeg
// @Security     SessionToken
// @Success      200 {file} file "MP3 audio"
// @Failure      401 {object} handler.ErrorResponse "session locked"
// @Failure      422 {object} handler.ErrorResponse "no draft yet or draft too long"
// @Failure      501 {object} handler.ErrorResponse "read-back disabled"
// @Failure      502 {object} handler.ErrorResponse "synthesis failed"
// @Router       /api/draft/speech [post]
func (h *Handler) ReadBackDraft(c *gin.Context) {
	audio, err := h.svc.ReadBack(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
