package handler

import (
	"net/http"

	"AppealOS/internal/denial"

	"github.com/gin-gonic/gin"
)

type DenialCodesResponse struct {
	Codes []denial.Code `json:"codes"`
}

// ListDenialCodes godoc
// @Summary      Known denial codes
// @Description  Claim adjustment reason codes the drafter recognises in the denial context.
// @Tags         Draft
// @Produce      json
// @Security     SessionToken
// @Success      200 {object} handler.DenialCodesResponse
// @Failure      401 {object} handler.ErrorResponse "session locked"
// @Router       /api/denial-codes [get]
func (h *Handler) ListDenialCodes(c *gin.Context) {
	c.JSON(http.StatusOK, DenialCodesResponse{Codes: denial.All()})
}

// Health godoc
// @Summary      Liveness probe
// @Tags         System
// @Produce      json
// @Success      200 {object} object{status=string}
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
