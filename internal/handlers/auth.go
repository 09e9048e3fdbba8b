package handlers

import (
	"errors"
	"net/http"

	"member_site/internal/cookies"
	"member_site/internal/models"
	"member_site/internal/service"

	"github.com/gin-gonic/gin"
)

// Form error messages rendered inline on the auth pages.
const (
	errMsgUsernameTaken      = "Username is already taken"
	errMsgInvalidCredentials = "Invalid username or password"
	errMsgMissingFields      = "Username and password are required"
)

func (h *Handler) showRegister(c *gin.Context) {
	h.renderPage(c, http.StatusOK, "register.html", "Register", gin.H{"username": ""})
}

// submitRegister creates the account and signs the new user in. Validation
// failures re-render the form with HTTP 200 and no session side effects.
func (h *Handler) submitRegister(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, sess, err := h.services.Register(username, password)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		h.renderPage(c, http.StatusOK, "register.html", "Register", gin.H{
			"error":    errMsgUsernameTaken,
			"username": username,
		})
	case errors.Is(err, service.ErrMissingFields):
		h.renderPage(c, http.StatusOK, "register.html", "Register", gin.H{
			"error":    errMsgMissingFields,
			"username": username,
		})
	case err != nil:
		h.renderServerError(c, "register_failed", err)
	default:
		h.startSession(c, user, sess)
	}
}

func (h *Handler) showLogin(c *gin.Context) {
	h.renderPage(c, http.StatusOK, "login.html", "Log in", gin.H{"username": ""})
}

// submitLogin checks the credentials and opens a session. The error shown
// on failure is deliberately generic: it never says whether the username
// or the password was wrong.
func (h *Handler) submitLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, sess, err := h.services.Login(username, password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		h.renderPage(c, http.StatusOK, "login.html", "Log in", gin.H{
			"error":    errMsgInvalidCredentials,
			"username": username,
		})
	case err != nil:
		h.renderServerError(c, "login_failed", err)
	default:
		h.startSession(c, user, sess)
	}
}

// logout deletes the session row if a cookie was presented, then clears
// the cookie and redirects home. Logging out without a session is a no-op
// that still clears the cookie.
func (h *Handler) logout(c *gin.Context) {
	sessionID := requestCookies(c)[cookies.SessionCookieName]
	if err := h.services.Logout(sessionID); err != nil {
		h.renderServerError(c, "logout_failed", err)
		return
	}
	c.Header("Set-Cookie", cookies.FormatExpiredCookie())
	c.Redirect(http.StatusFound, "/")
}

// startSession emits the session cookie and redirects to the home page.
func (h *Handler) startSession(c *gin.Context, user *models.User, sess *models.Session) {
	if h.log != nil {
		h.log.Infow("session_started", "id", c.GetString(ctxKeyRequestID), "user_id", user.ID)
	}
	c.Header("Set-Cookie", cookies.FormatSessionCookie(sess.ID, sess.ExpiresAt))
	c.Redirect(http.StatusFound, "/")
}
