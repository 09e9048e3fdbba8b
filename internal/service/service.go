package service

import (
	"member_site/internal/models"
	"member_site/internal/repository"
)

// Accounts covers registration, credential checks, and the session
// lifecycle behind the cookie.
type Accounts interface {
	Register(username, password string) (*models.User, *models.Session, error)
	Login(username, password string) (*models.User, *models.Session, error)
	Logout(sessionID string) error
	Resolve(sessionID string) (*models.User, *models.Session, error)
}

// Service aggregates all sub-services.
type Service struct {
	Accounts
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Accounts: NewAuthService(repos.Users, repos.Sessions),
	}
}
