package handlers

import (
	"member_site/internal/logger"
	"member_site/internal/service"

	"github.com/gin-gonic/gin"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
// Identity resolution runs on every request, including pages that do not
// require authentication, because templates render navigation off it.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.requestIDMiddleware)
	router.Use(h.requestLogMiddleware)
	router.Use(h.identityMiddleware)

	// Health endpoint
	router.GET("/health", h.health)

	// Content pages
	router.GET("/", h.home)
	router.GET("/about", h.about)

	// Auth endpoints
	h.registerAuthRoutes(router)

	router.NoRoute(h.notFound)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.GET("/register", h.showRegister)
	r.POST("/register", h.submitRegister)
	r.GET("/login", h.showLogin)
	r.POST("/login", h.submitLogin)
	r.GET("/logout", h.logout)
}
