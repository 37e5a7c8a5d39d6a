package user

import (
	"fmt"

	userRepo "docportal/database/repository/user"
	"docportal/models"
)

// UserService manages portal accounts and their roles.
type UserService interface {
	// UpsertUser inserts or refreshes the account keyed by the user's email.
	UpsertUser(u models.User) error
	// GetUserByEmail retrieves an account, or nil when absent.
	GetUserByEmail(email string) (*models.User, error)
	// GetAllUsers retrieves every account.
	GetAllUsers() ([]models.User, error)
	// IsAdmin reports whether the account with the given email holds the admin role.
	IsAdmin(email string) (bool, error)
	// PromoteToAdmin grants the admin role to the account with the given email.
	PromoteToAdmin(email string) error
}

// DefaultUserService implements UserService on the user store.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// UpsertUser inserts or refreshes the account keyed by the user's email.
func (s *DefaultUserService) UpsertUser(u models.User) error {
	if u.Email == "" {
		return fmt.Errorf("user email is required")
	}
	return s.Repo.Upsert(&u)
}

// GetUserByEmail retrieves an account, or nil when absent.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(email)
}

// GetAllUsers retrieves every account.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// IsAdmin reports whether the account holds the admin role. An absent account
// or any role other than exactly "admin" is not an admin.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// PromoteToAdmin grants the admin role.
func (s *DefaultUserService) PromoteToAdmin(email string) error {
	return s.Repo.SetRole(email, models.RoleAdmin)
}
