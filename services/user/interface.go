package user

import (
	userRepo "github.com/odacaict/domee.ro/database/repository/user"
	"github.com/odacaict/domee.ro/models"
)

// AuthResponse is returned by sign-up and sign-in.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type SignUpRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	UserType string `json:"user_type"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProfileUpdate struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
}

// UserService manages marketplace accounts and their sessions.
type UserService interface {
	SignUp(req SignUpRequest) (*AuthResponse, error)
	SignIn(req SignInRequest) (*AuthResponse, error)
	SignOut(userID string) error
	GetByID(id string) (*models.User, error)
	UpdateProfile(id string, upd ProfileUpdate) (*models.User, error)
	UpdatePreferences(id string, prefs models.UserPreferences) (*models.User, error)
	RegisterFCMToken(id, token string) error
	Delete(id string) error
}

type DefaultUserService struct {
	Repo userRepo.UserRepository
}
