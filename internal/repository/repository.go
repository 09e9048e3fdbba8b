package repository

import (
	"database/sql"
	"errors"
	"strings"

	"member_site/internal/models"
)

// Sentinel errors surfaced to the service layer.
var (
	// ErrDuplicateUsername means the users.username UNIQUE constraint fired.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrDuplicateSession means the sessions.id primary key collided.
	ErrDuplicateSession = errors.New("session id already exists")
)

type Users interface {
	Create(username, passwordHash string) (int, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}

type Sessions interface {
	Create(s models.Session) error
	GetByID(id string) (*models.Session, error)
	Delete(id string) error
}

type Repository struct {
	Users    Users
	Sessions Sessions
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Sessions: NewSessionRepository(db),
	}
}

// isUniqueViolation matches sqlite's constraint error text; the driver's
// error type is not constructible outside the driver.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
