package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"member_site/internal/models"
)

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Ensure implementation of Sessions interface at compile time.
var _ Sessions = (*SessionRepository)(nil)

const (
	insertSessionSQL     = `INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, ?)`
	selectSessionByIDSQL = `SELECT id, user_id, expires_at FROM sessions WHERE id = ?`
	deleteSessionSQL     = `DELETE FROM sessions WHERE id = ?`
)

// Create inserts a session row. A primary-key collision is reported as
// ErrDuplicateSession so the service can regenerate the id rather than
// overwrite an existing session.
func (r *SessionRepository) Create(s models.Session) error {
	if _, err := r.db.Exec(insertSessionSQL, s.ID, s.UserID, s.ExpiresAt); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSession
		}
		return fmt.Errorf("insert session for user %d: %w", s.UserID, err)
	}
	return nil
}

// GetByID fetches a session by its token. Returns (nil, nil) if not found.
// Expiry is not checked here; the resolver owns that.
func (r *SessionRepository) GetByID(id string) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRow(selectSessionByIDSQL, id).Scan(&s.ID, &s.UserID, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session: %w", err)
	}
	return &s, nil
}

// Delete removes a session row. Deleting a nonexistent id is not an error.
func (r *SessionRepository) Delete(id string) error {
	if _, err := r.db.Exec(deleteSessionSQL, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
