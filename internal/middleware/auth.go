package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"AppealOS/internal/auth"
	"AppealOS/internal/logger"
	"AppealOS/internal/session"
	"AppealOS/internal/workflow"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie      = "appeal_session"
	SessionTokenHeader = "X-Session-Token"
	sessionContextKey  = "session"
	sessionConfigKey   = "session_config"
)

type SessionConfig struct {
	Store  *session.Store
	Signer *auth.TokenSigner
	Secure bool // mark the cookie Secure (HTTPS deployments)
}

// Session attaches the caller's dashboard session. The token is read from the
// cookie, a Bearer header or ?token=, in that order. A missing, invalid or
// expired token leaves the request without a session; sessions are only
// created by Adopt, once the passcode has unlocked them.
func Session(cfg SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionConfigKey, cfg)

		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := cfg.Signer.Validate(token)
		var sess *session.Session
		if err == nil {
			sess, err = cfg.Store.Get(claims.SessionID)
		}
		if err != nil {
			logger.Debug(c.Request.Context(), "session token rejected", "error", err)
			c.Next()
			return
		}

		if needsFreshToken(claims, cfg.Signer.TTL()) {
			if err := issueToken(c, cfg, sess); err != nil {
				logger.Error(c.Request.Context(), "session token not signed", "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session", "kind": "internal"})
				return
			}
		}
		attach(c, sess)
		c.Next()
	}
}

// Adopt registers sess in the session store, issues its token and attaches it
// to the request.
func Adopt(c *gin.Context, sess *session.Session) error {
	v, _ := c.Get(sessionConfigKey)
	cfg, ok := v.(SessionConfig)
	if !ok {
		return errors.New("session middleware is not installed")
	}

	cfg.Store.Add(sess)
	if err := issueToken(c, cfg, sess); err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	attach(c, sess)
	logger.Debug(c.Request.Context(), "session started")
	return nil
}

func issueToken(c *gin.Context, cfg SessionConfig, sess *session.Session) error {
	token, err := cfg.Signer.Generate(sess.ID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(cfg.Signer.TTL().Seconds()), "/", "", cfg.Secure, true)
	c.Header(SessionTokenHeader, token)
	return nil
}

func attach(c *gin.Context, sess *session.Session) {
	c.Set(sessionContextKey, sess)
	ctx := context.WithValue(c.Request.Context(), logger.SessionIDKey, sess.ID)
	c.Request = c.Request.WithContext(ctx)
}

// GetSession returns the session attached by Session, or nil.
func GetSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return nil
}

// RequireUnlocked rejects requests whose session has not passed the gate.
func RequireUnlocked() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || !sess.Snapshot().Authenticated {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": workflow.MsgLocked,
				"kind":  workflow.KindAuth,
			})
			return
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}

// a token is reissued once it has used up half of its lifetime
func needsFreshToken(claims *auth.Claims, ttl time.Duration) bool {
	if claims == nil || claims.ExpiresAt == nil {
		return true
	}
	return time.Until(claims.ExpiresAt.Time) < ttl/2
}
