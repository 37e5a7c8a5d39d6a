package userRepo

import "docportal/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by email, or nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Upsert inserts or updates the user record keyed by email.
	Upsert(user *models.User) error
	// SetRole updates the role of the user with the given email.
	SetRole(email, role string) error
}
