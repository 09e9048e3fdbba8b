package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) home(c *gin.Context) {
	h.renderPage(c, http.StatusOK, "home.html", "Home", nil)
}

func (h *Handler) about(c *gin.Context) {
	h.renderPage(c, http.StatusOK, "about.html", "About", nil)
}

func (h *Handler) notFound(c *gin.Context) {
	h.renderPage(c, http.StatusNotFound, "error404.html", "Not found", nil)
}

// renderPage renders a template with the shared identity fields plus any
// page-specific extras. Templates switch navigation on "user".
func (h *Handler) renderPage(c *gin.Context, status int, page, title string, extra gin.H) {
	data := gin.H{
		"title":   title,
		"user":    currentUser(c),
		"session": currentSession(c),
	}
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, page, data)
}

// renderServerError logs the failure and renders the 500 page. Storage
// failures surface here instead of propagating as unhandled faults.
func (h *Handler) renderServerError(c *gin.Context, logKey string, err error) {
	if h.log != nil {
		h.log.Errorw(logKey, "id", c.GetString(ctxKeyRequestID), "err", err)
	}
	h.renderPage(c, http.StatusInternalServerError, "error500.html", "Something went wrong", nil)
}
