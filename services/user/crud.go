package user

import (
	"fmt"
	"time"

	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/utils"
)

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	return rec, nil
}

// UpdateProfile applies the non-nil fields of the update.
func (s *DefaultUserService) UpdateProfile(id string, upd ProfileUpdate) (*models.User, error) {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}

	if upd.Name != nil {
		rec.Name = *upd.Name
	}
	if upd.Phone != nil {
		if *upd.Phone != "" && !utils.ValidatePhone(*upd.Phone) {
			return nil, fmt.Errorf("invalid phone number")
		}
		rec.Phone = *upd.Phone
	}
	if upd.AvatarURL != nil {
		rec.AvatarURL = *upd.AvatarURL
	}
	rec.UpdatedAt = time.Now()

	if err := s.Repo.Update(rec); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return rec, nil
}

func (s *DefaultUserService) UpdatePreferences(id string, prefs models.UserPreferences) (*models.User, error) {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	rec.Preferences = prefs
	rec.UpdatedAt = time.Now()
	if err := s.Repo.Update(rec); err != nil {
		return nil, fmt.Errorf("failed to update preferences for %s: %w", id, err)
	}
	return rec, nil
}

// RegisterFCMToken records the device push token used for booking updates.
func (s *DefaultUserService) RegisterFCMToken(id, token string) error {
	rec, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	rec.FCMToken = token
	rec.UpdatedAt = time.Now()
	if err := s.Repo.Update(rec); err != nil {
		return fmt.Errorf("failed to store push token for %s: %w", id, err)
	}
	return nil
}

func (s *DefaultUserService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	utils.ClearSession(id)
	return nil
}
