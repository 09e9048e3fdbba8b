package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"member_site/internal/models"
	"member_site/internal/repository"
)

const (
	// DefaultSessionTTL is how long a fresh session stays valid.
	DefaultSessionTTL = 7 * 24 * time.Hour

	sessionIDBytes       = 16
	maxSessionIDAttempts = 3
)

// Domain errors for auth flows. Login failures collapse into a single
// ErrInvalidCredentials so responses never reveal whether the username
// or the password was wrong.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingFields      = errors.New("username and password are required")
)

// AuthService handles registration, login, logout, and session resolution.
type AuthService struct {
	users    repository.Users
	sessions repository.Sessions
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(users repository.Users, sessions repository.Sessions) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		ttl:      DefaultSessionTTL,
		now:      time.Now,
	}
}

// Register hashes the password, creates the user, and opens a session for it.
// A duplicate username creates neither a user nor a session.
func (s *AuthService) Register(username, password string) (*models.User, *models.Session, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, nil, ErrMissingFields
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, nil, ErrUsernameTaken
		}
		return nil, nil, err
	}
	user := &models.User{ID: id, Username: username, PasswordHash: hash}

	sess, err := s.createSession(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, sess, nil
}

// Login verifies the credentials and opens a fresh session. Concurrent
// logins by the same user legitimately hold independent sessions.
func (s *AuthService) Login(username, password string) (*models.User, *models.Session, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}
	if err := verifyPassword(user.PasswordHash, password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := s.createSession(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, sess, nil
}

// Logout removes the session row. A missing or unknown id is a no-op.
func (s *AuthService) Logout(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(sessionID)
}

// Resolve maps a session id from the cookie to its user. Expired sessions
// are lazily evicted on first access; an absent session, an expired one,
// or a missing owner all resolve to an anonymous identity.
func (s *AuthService) Resolve(sessionID string) (*models.User, *models.Session, error) {
	if sessionID == "" {
		return nil, nil, nil
	}

	sess, err := s.sessions.GetByID(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, nil, nil
	}

	if sess.Expired(s.now()) {
		if err := s.sessions.Delete(sess.ID); err != nil {
			return nil, nil, err
		}
		return nil, nil, nil
	}

	user, err := s.users.GetByID(sess.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, nil
	}
	return user, sess, nil
}

// createSession persists a session with a fresh random id, regenerating on
// the (vanishingly rare) primary-key collision instead of overwriting.
func (s *AuthService) createSession(userID int) (*models.Session, error) {
	for attempt := 0; attempt < maxSessionIDAttempts; attempt++ {
		id, err := newSessionID()
		if err != nil {
			return nil, err
		}
		sess := models.Session{
			ID:        id,
			UserID:    userID,
			ExpiresAt: s.now().Add(s.ttl),
		}
		err = s.sessions.Create(sess)
		if err == nil {
			return &sess, nil
		}
		if !errors.Is(err, repository.ErrDuplicateSession) {
			return nil, err
		}
	}
	return nil, errors.New("could not allocate a unique session id")
}

// newSessionID draws an unguessable token from the system CSPRNG.
func newSessionID() (string, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
