package repo

import (
	models "github.com/prasetyoadi/warung-assistant/internal/models"
)

// UserRepository defines the interface for dashboard accounts. A single
// admin is seeded at startup; the interface stays open to more users.
type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}
