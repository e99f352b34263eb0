package userRepo

import "github.com/odacaict/domee.ro/models"

// UserRepository defines data access for marketplace accounts.
type UserRepository interface {
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
}
