package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"member_site/internal/models"
	"member_site/internal/service"
)

func getPath(r http.Handler, path, cookieHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookieHeader != "" {
		req.Header.Set("Cookie", cookieHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestIdentity_AuthenticatedHomePage(t *testing.T) {
	acc := &mockAccounts{
		resolveUser: &models.User{ID: 42, Username: "alice"},
		resolveSess: &models.Session{ID: "tok1", UserID: 42, ExpiresAt: time.Now().Add(time.Hour)},
	}
	r := newTestRouter(&service.Service{Accounts: acc})

	w := getPath(r, "/", "a=1; sessionId=tok1")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "signed in as alice") {
		t.Fatalf("expected authenticated markup, got %q", w.Body.String())
	}
	if len(acc.resolveCalls) != 1 || acc.resolveCalls[0] != "tok1" {
		t.Fatalf("expected Resolve(tok1) from the cookie header, got %v", acc.resolveCalls)
	}
}

func TestIdentity_AnonymousWithoutCookie(t *testing.T) {
	acc := &mockAccounts{}
	r := newTestRouter(&service.Service{Accounts: acc})

	w := getPath(r, "/", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "anonymous visitor") {
		t.Fatalf("expected anonymous markup, got %q", w.Body.String())
	}
	// Resolution still ran: templates need identity on every request.
	if len(acc.resolveCalls) != 1 || acc.resolveCalls[0] != "" {
		t.Fatalf("expected unconditional Resolve(\"\"), got %v", acc.resolveCalls)
	}
}

func TestIdentity_ResolveFailureFallsBackToAnonymous(t *testing.T) {
	acc := &mockAccounts{resolveErr: errors.New("db down")}
	r := newTestRouter(&service.Service{Accounts: acc})

	w := getPath(r, "/", "sessionId=tok1")

	if w.Code != http.StatusOK {
		t.Fatalf("page load must not fail on resolve error, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "anonymous visitor") {
		t.Fatalf("expected anonymous fallback, got %q", w.Body.String())
	}
}

func TestIdentity_RunsOnAuthPagesToo(t *testing.T) {
	acc := &mockAccounts{}
	r := newTestRouter(&service.Service{Accounts: acc})

	for _, path := range []string{"/login", "/register", "/about"} {
		if w := getPath(r, path, "sessionId=tok9"); w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, w.Code)
		}
	}
	if len(acc.resolveCalls) != 3 {
		t.Fatalf("expected Resolve on every request, got %v", acc.resolveCalls)
	}
	for _, id := range acc.resolveCalls {
		if id != "tok9" {
			t.Fatalf("expected tok9 forwarded, got %v", acc.resolveCalls)
		}
	}
}

func TestNoRouteRenders404(t *testing.T) {
	r := newTestRouter(&service.Service{Accounts: &mockAccounts{}})

	w := getPath(r, "/definitely-not-a-page", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "no such page") {
		t.Fatalf("expected 404 page, got %q", w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{Accounts: &mockAccounts{}})

	w := getPath(r, "/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %q", w.Body.String())
	}
}
