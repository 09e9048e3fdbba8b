package handlers

import (
	"html/template"

	"member_site/internal/models"
	"member_site/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAccounts struct {
	registerUser *models.User
	registerSess *models.Session
	registerErr  error
	loginUser    *models.User
	loginSess    *models.Session
	loginErr     error
	logoutErr    error
	resolveUser  *models.User
	resolveSess  *models.Session
	resolveErr   error

	lastRegisterUsername string
	lastRegisterPassword string
	lastLoginUsername    string
	lastLoginPassword    string
	logoutCalls          []string
	resolveCalls         []string
}

func (m *mockAccounts) Register(username, password string) (*models.User, *models.Session, error) {
	m.lastRegisterUsername = username
	m.lastRegisterPassword = password
	return m.registerUser, m.registerSess, m.registerErr
}

func (m *mockAccounts) Login(username, password string) (*models.User, *models.Session, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginUser, m.loginSess, m.loginErr
}

func (m *mockAccounts) Logout(sessionID string) error {
	m.logoutCalls = append(m.logoutCalls, sessionID)
	return m.logoutErr
}

func (m *mockAccounts) Resolve(sessionID string) (*models.User, *models.Session, error) {
	m.resolveCalls = append(m.resolveCalls, sessionID)
	return m.resolveUser, m.resolveSess, m.resolveErr
}

// ---- Shared Test Helpers ----

// Minimal stand-ins for web/templates, matching the markup the tests grep for.
const testTemplates = `
{{define "home.html"}}{{if .user}}<p>signed in as {{.user.Username}}</p>{{else}}<p>anonymous visitor</p>{{end}}{{end}}
{{define "about.html"}}<p>{{.title}}</p>{{end}}
{{define "register.html"}}<form action="/register">{{with .error}}<p class="error">{{.}}</p>{{end}}</form>{{end}}
{{define "login.html"}}<form action="/login">{{with .error}}<p class="error">{{.}}</p>{{end}}</form>{{end}}
{{define "error404.html"}}<p>no such page</p>{{end}}
{{define "error500.html"}}<p>server error</p>{{end}}
`

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	r := h.InitRoutes()
	r.SetHTMLTemplate(template.Must(template.New("test").Parse(testTemplates)))
	return r
}
