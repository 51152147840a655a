package handler

import (
	"net/http"

	"AppealOS/internal/export"
	"AppealOS/internal/middleware"

	"github.com/gin-gonic/gin"
)

type ExportRequest struct {
	PatientName string `json:"patient_name" example:"John Doe"`
	Letter      string `json:"letter" example:"Dear Claims Reviewer, ..."`
}

// ExportAppeal godoc
// @Summary      Download the letter as PDF
// @Description  Renders the reviewed letter (or the current draft when letter is empty) as an A4 PDF named after the patient.
// @Tags         Appeals
// @Accept       json
// @Produce      application/pdf
// @Security     SessionToken
// @Param        request body handler.ExportRequest true "patient and reviewed letter"
// @Success      200 {file} file "PDF document"
// @Failure      401 {object} handler.ErrorResponse "session locked"
// @Failure      422 {object} handler.ErrorResponse "no draft yet or empty letter"
// @Router       /api/export [post]
func (h *Handler) ExportAppeal(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	doc, err := h.svc.Export(c.Request.Context(), middleware.GetSession(c), req.PatientName, req.Letter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", export.ContentDisposition(doc.FileName))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}
