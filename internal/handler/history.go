package handler

import (
	"net/http"
	"strconv"

	"AppealOS/internal/middleware"
	"AppealOS/internal/models"
	"AppealOS/internal/storage"
	"AppealOS/internal/workflow"

	"github.com/gin-gonic/gin"
)

const historyUnavailable = "Record history is unavailable right now. New appeals can still be drafted and exported."

type SaveRequest struct {
	PatientName string `json:"patient_name" example:"John Doe #9921"`
	Letter      string `json:"letter" example:"Dear Claims Reviewer, ..."`
}

type SaveResponse struct {
	Message string        `json:"message" example:"Saved to Secure Database"`
	Appeal  models.Appeal `json:"appeal"`
}

// Saved appeals, newest first. When the store cannot be reached Available is
// false and Message explains why; the request itself still succeeds.
type HistoryResponse struct {
	Available bool            `json:"available" example:"true"`
	Message   string          `json:"message,omitempty"`
	Appeals   []models.Appeal `json:"appeals"`
}

// SaveAppeal godoc
// @Summary      Save the reviewed letter
// @Description  Inserts one appeal record with exactly the submitted letter and the current time.
// @Description  An empty letter saves the current draft. Duplicate saves create separate records.
// @Tags         Appeals
// @Accept       json
// @Produce      json
// @Security     SessionToken
// @Param        request body handler.SaveRequest true "patient and reviewed letter"
// @Success      201 {object} handler.SaveResponse
// @Failure      401 {object} handler.ErrorResponse "session locked"
// @Failure      422 {object} handler.ErrorResponse "no draft yet or empty letter"
// @Failure      502 {object} handler.ErrorResponse "database error"
// @Failure      503 {object} handler.ErrorResponse "database unavailable"
// @Router       /api/appeals [post]
func (h *Handler) SaveAppeal(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	saved, err := h.svc.Save(c.Request.Context(), middleware.GetSession(c), req.PatientName, req.Letter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SaveResponse{Message: "Saved to Secure Database", Appeal: saved})
}

// ListAppeals godoc
// @Summary      Recent appeals
// @Description  Returns the most recently saved appeals, newest first.
// @Tags         Appeals
// @Produce      json
// @Security     SessionToken
// @Param        limit query int false "maximum number of records (1-100)" default(10)
// @Success      200 {object} handler.HistoryResponse
// @Failure      400 {object} handler.ErrorResponse "limit is not a number"
// @Failure      401 {object} handler.ErrorResponse "session locked"
// @Router       /api/appeals [get]
func (h *Handler) ListAppeals(c *gin.Context) {
	limit := storage.DefaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "limit must be a number")
			return
		}
		limit = n
	}

	appeals, err := h.svc.ListRecent(c.Request.Context(), middleware.GetSession(c), limit)
	if err != nil {
		switch workflow.KindOf(err) {
		case workflow.KindUnavailable, workflow.KindPersistence:
			c.JSON(http.StatusOK, HistoryResponse{Available: false, Message: historyUnavailable, Appeals: []models.Appeal{}})
		default:
			respondError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{Available: true, Appeals: appeals})
}
