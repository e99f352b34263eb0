// Package review handles customer feedback on completed bookings.
package review

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "github.com/odacaict/domee.ro/database/repository/booking"
	providerRepo "github.com/odacaict/domee.ro/database/repository/provider"
	reviewRepo "github.com/odacaict/domee.ro/database/repository/review"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/utils"
)

type CreateRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// ReviewService manages reviews and keeps provider rating aggregates current.
type ReviewService interface {
	Create(req CreateRequest) (*models.Review, error)
	GetByProvider(providerID string) ([]models.Review, error)
	Respond(reviewID, providerID, response string) error
}

type DefaultReviewService struct {
	Repo         reviewRepo.ReviewRepository
	Bookings     bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
}

// Create stores a review for a completed booking and folds the rating into the
// provider aggregate. One review per booking.
func (s *DefaultReviewService) Create(req CreateRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	bk, err := s.Bookings.GetByID(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", req.BookingID, err)
	}
	if bk.UserID != req.UserID {
		return nil, fmt.Errorf("booking %s does not belong to this account", req.BookingID)
	}
	if bk.Status != models.BookingStatusCompleted {
		return nil, fmt.Errorf("only completed bookings can be reviewed")
	}

	if existing, err := s.Repo.GetByBooking(req.BookingID); err == nil && existing != nil {
		return nil, fmt.Errorf("booking %s has already been reviewed", req.BookingID)
	} else if err != nil && !errors.Is(err, reviewRepo.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}

	review := &models.Review{
		ID:         uuid.New().String(),
		BookingID:  bk.ID,
		UserID:     bk.UserID,
		ProviderID: bk.ProviderID,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.ProviderRepo.ApplyReviewAggregate(bk.ProviderID, req.Rating); err != nil {
		// The review exists; the aggregate catches up on the next review.
		utils.GetLogger().Error("failed to update provider rating aggregate",
			zap.String("providerId", bk.ProviderID), zap.Error(err))
	}

	return review, nil
}

func (s *DefaultReviewService) GetByProvider(providerID string) ([]models.Review, error) {
	reviews, err := s.Repo.GetByProvider(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews for provider %s: %w", providerID, err)
	}
	return reviews, nil
}

// Respond records the provider's single public reply to a review.
func (s *DefaultReviewService) Respond(reviewID, providerID, response string) error {
	if strings.TrimSpace(response) == "" {
		return fmt.Errorf("response must not be empty")
	}

	reviews, err := s.Repo.GetByProvider(providerID)
	if err != nil {
		return fmt.Errorf("failed to verify review ownership: %w", err)
	}
	owned := false
	for _, r := range reviews {
		if r.ID == reviewID {
			owned = true
			break
		}
	}
	if !owned {
		return fmt.Errorf("review %s does not belong to provider %s", reviewID, providerID)
	}

	if err := s.Repo.SetResponse(reviewID, strings.TrimSpace(response)); err != nil {
		return fmt.Errorf("failed to store response: %w", err)
	}
	return nil
}
