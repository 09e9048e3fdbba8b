package handlers

import (
	"time"

	"member_site/internal/cookies"
	"member_site/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Gin context keys for per-request identity state. Constructed at request
// start, discarded at request end; never shared across requests.
const (
	ctxKeyRequestID = "requestId"
	ctxKeyCookies   = "cookies"
	ctxKeyUser      = "currentUser"
	ctxKeySession   = "currentSession"
)

// requestIDMiddleware tags every request with a correlation id for logs.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	c.Set(ctxKeyRequestID, uuid.NewString())
	c.Next()
}

// requestLogMiddleware logs one structured line per completed request.
func (h *Handler) requestLogMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log != nil {
		h.log.Infow("http_request",
			"id", c.GetString(ctxKeyRequestID),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// identityMiddleware parses the cookie header and resolves the session
// cookie to a user. It never blocks a request: a missing, expired, or
// unresolvable session just leaves the request anonymous.
func (h *Handler) identityMiddleware(c *gin.Context) {
	parsed := cookies.Parse(c.GetHeader("Cookie"))
	c.Set(ctxKeyCookies, parsed)

	user, sess, err := h.services.Resolve(parsed[cookies.SessionCookieName])
	if err != nil {
		if h.log != nil {
			h.log.Warnw("identity_resolve_failed", "id", c.GetString(ctxKeyRequestID), "err", err)
		}
		c.Next()
		return
	}
	if user != nil && sess != nil {
		c.Set(ctxKeyUser, user)
		c.Set(ctxKeySession, sess)
	}
	c.Next()
}

// currentUser returns the resolved user, or nil for anonymous requests.
func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(ctxKeyUser); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

// currentSession returns the resolved session, or nil.
func currentSession(c *gin.Context) *models.Session {
	if v, ok := c.Get(ctxKeySession); ok {
		if s, ok := v.(*models.Session); ok {
			return s
		}
	}
	return nil
}

// requestCookies returns the parsed cookie map for this request.
func requestCookies(c *gin.Context) map[string]string {
	if v, ok := c.Get(ctxKeyCookies); ok {
		if m, ok := v.(map[string]string); ok {
			return m
		}
	}
	return map[string]string{}
}
