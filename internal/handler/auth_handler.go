package handler

import (
	"net/http"

	"AppealOS/internal/logger"
	"AppealOS/internal/middleware"
	"AppealOS/internal/session"
	"AppealOS/internal/workflow"

	"github.com/gin-gonic/gin"
)

// /api/login request body
type LoginRequest struct {
	Passcode string `json:"passcode" example:"clinic123"`
}

// Login godoc
// @Summary      Unlock the session
// @Description  Compares the passcode with the clinic passcode. A match unlocks the session until it expires.
// @Description  There is no lockout and no attempt limit; a wrong passcode never re-locks an unlocked session.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "clinic passcode"
// @Success      200 {object} models.SessionView
// @Failure      400 {object} handler.ErrorResponse "malformed body"
// @Failure      401 {object} handler.ErrorResponse "Invalid Access Code"
// @Router       /api/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	// A caller without a session gets one only when the passcode matches.
	sess := middleware.GetSession(c)
	fresh := sess == nil
	if fresh {
		sess = session.New()
	}
	if err := h.svc.Login(c.Request.Context(), sess, req.Passcode); err != nil {
		respondError(c, err)
		return
	}
	if fresh {
		if err := middleware.Adopt(c, sess); err != nil {
			logger.Error(c.Request.Context(), "session not started", "error", err)
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, workflow.View(sess.Snapshot()))
}

// GetSession godoc
// @Summary      Current session state
// @Description  Reports whether the session is unlocked, its phase and the current transcript and draft.
// @Tags         Session
// @Produce      json
// @Success      200 {object} models.SessionView
// @Router       /api/session [get]
func (h *Handler) GetSession(c *gin.Context) {
	var st session.State
	if sess := middleware.GetSession(c); sess != nil {
		st = sess.Snapshot()
	}
	c.JSON(http.StatusOK, workflow.View(st))
}
