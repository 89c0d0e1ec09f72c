package repositories

import "trackvault/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	// GetByEmailOrUsername checks both unique fields in a single query;
	// used for duplicate detection before registration.
	GetByEmailOrUsername(email, username string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetAll() ([]models.User, error)
}
