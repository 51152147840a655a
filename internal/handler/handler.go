/**
* Name: 			handler.go
* Description: 		Shared request/response types and error rendering for the API
 */

package handler

import (
	"net/http"

	"AppealOS/internal/middleware"
	"AppealOS/internal/models"
	"AppealOS/internal/session"
	"AppealOS/internal/workflow"

	"github.com/gin-gonic/gin"
)

// Handler serves the dashboard API on top of one workflow.Service
type Handler struct {
	svc *workflow.Service
}

func New(svc *workflow.Service) *Handler {
	return &Handler{svc: svc}
}

type ErrorResponse struct {
	Error     string `json:"error" example:"Please provide Patient Name and Voice Dictation."`
	Kind      string `json:"kind" example:"precondition"`
	RequestID string `json:"request_id,omitempty" example:"3f0c8a4e-1d2b-4c5d-9e6f-7a8b9c0d1e2f"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Saved to Secure Database"`
}

// SessionResponse wraps the session view returned by every state-changing call
type SessionResponse struct {
	Session models.SessionView `json:"session"`
}

// respondError renders a workflow failure with the status of its kind
func respondError(c *gin.Context, err error) {
	kind := workflow.KindOf(err)
	c.AbortWithStatusJSON(kind.HTTPStatus(), ErrorResponse{
		Error:     workflow.Message(err),
		Kind:      string(kind),
		RequestID: middleware.GetRequestID(c),
	})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error:     msg,
		Kind:      "invalid_request",
		RequestID: middleware.GetRequestID(c),
	})
}

func respondState(c *gin.Context, st session.State) {
	c.JSON(http.StatusOK, SessionResponse{Session: workflow.View(st)})
}
