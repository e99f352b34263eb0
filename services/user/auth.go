package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "github.com/odacaict/domee.ro/database/repository/user"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/utils"
)

const tokenTTL = 72 * time.Hour

// SignUp registers a new account and returns it with a fresh session token.
func (s *DefaultUserService) SignUp(req SignUpRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.ValidateEmail(email) {
		return nil, fmt.Errorf("invalid email address")
	}
	if problems := utils.ValidatePassword(req.Password); len(problems) > 0 {
		return nil, errors.New(strings.Join(problems, "; "))
	}
	if req.Phone != "" && !utils.ValidatePhone(req.Phone) {
		return nil, fmt.Errorf("invalid phone number")
	}

	if existing, err := s.Repo.GetByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	} else if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		utils.GetLogger().Error("SignUp: duplicate check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userType := req.UserType
	if userType == "" {
		userType = models.UserTypeCustomer
	}
	if userType != models.UserTypeCustomer && userType != models.UserTypeProvider {
		return nil, fmt.Errorf("invalid user type %q", userType)
	}

	now := time.Now()
	rec := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		Phone:        req.Phone,
		UserType:     userType,
		PasswordHash: string(hash),
		Preferences:  models.UserPreferences{Notifications: true},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := s.issueToken(rec)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Create(rec); err != nil {
		utils.GetLogger().Error("SignUp: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	utils.GetLogger().Info("user registered", zap.String("userId", rec.ID), zap.String("userType", rec.UserType))
	return &AuthResponse{User: rec, Token: token}, nil
}

// SignIn authenticates by email and password.
func (s *DefaultUserService) SignIn(req SignInRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password")
		}
		utils.GetLogger().Error("SignIn: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := s.issueToken(rec)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Update(rec); err != nil {
		utils.GetLogger().Error("SignIn: failed to persist session", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{User: rec, Token: token}, nil
}

// SignOut invalidates the stored session token.
func (s *DefaultUserService) SignOut(userID string) error {
	rec, err := s.Repo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	rec.TokenHash = ""
	rec.UpdatedAt = time.Now()
	if err := s.Repo.Update(rec); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	utils.ClearSession(userID)
	return nil
}

// issueToken signs a JWT for the account, caches its hash for fast auth
// checks, and stores it on the record (callers persist the record).
func (s *DefaultUserService) issueToken(rec *models.User) (string, error) {
	token, err := utils.GenerateToken(rec.ID, rec.Email, rec.UserType, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	rec.TokenHash = utils.HashToken(token)
	rec.UpdatedAt = time.Now()
	utils.CacheSession(rec.ID, rec.TokenHash, tokenTTL)
	return token, nil
}
