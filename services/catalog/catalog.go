// Package catalog manages the services each salon offers for booking.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	serviceRepo "github.com/odacaict/domee.ro/database/repository/service"
	"github.com/odacaict/domee.ro/models"
)

type CreateRequest struct {
	ProviderID  string  `json:"provider_id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Duration    int     `json:"duration" binding:"required"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

// CatalogService manages a provider's bookable services.
type CatalogService interface {
	Create(req CreateRequest) (*models.Service, error)
	GetByID(id string) (*models.Service, error)
	GetByProvider(providerID string, includeInactive bool) ([]models.Service, error)
	Search(query string, minPrice, maxPrice float64) ([]models.Service, error)
	Update(svc *models.Service) (*models.Service, error)
	SetActive(id string, active bool) (*models.Service, error)
	Delete(id string) error
}

type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}

func (s *DefaultCatalogService) Create(req CreateRequest) (*models.Service, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if req.Price <= 0 {
		return nil, fmt.Errorf("price must be positive")
	}
	if req.Duration <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	now := time.Now()
	svc := &models.Service{
		ID:          uuid.New().String(),
		ProviderID:  req.ProviderID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

func (s *DefaultCatalogService) GetByID(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	return svc, nil
}

func (s *DefaultCatalogService) GetByProvider(providerID string, includeInactive bool) ([]models.Service, error) {
	var (
		list []models.Service
		err  error
	)
	if includeInactive {
		list, err = s.Repo.GetByProvider(providerID)
	} else {
		list, err = s.Repo.GetActiveByProvider(providerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list services for provider %s: %w", providerID, err)
	}
	return list, nil
}

func (s *DefaultCatalogService) Search(query string, minPrice, maxPrice float64) ([]models.Service, error) {
	list, err := s.Repo.SearchActive(strings.TrimSpace(query), minPrice, maxPrice)
	if err != nil {
		return nil, fmt.Errorf("service search failed: %w", err)
	}
	return list, nil
}

func (s *DefaultCatalogService) Update(svc *models.Service) (*models.Service, error) {
	if svc.ID == "" {
		return nil, fmt.Errorf("service id is required")
	}
	if svc.Price <= 0 || svc.Duration <= 0 {
		return nil, fmt.Errorf("price and duration must be positive")
	}
	svc.UpdatedAt = time.Now()
	if err := s.Repo.Update(svc); err != nil {
		return nil, fmt.Errorf("failed to update service %s: %w", svc.ID, err)
	}
	return svc, nil
}

// SetActive toggles bookability without touching existing bookings.
func (s *DefaultCatalogService) SetActive(id string, active bool) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	svc.Active = active
	svc.UpdatedAt = time.Now()
	if err := s.Repo.Update(svc); err != nil {
		return nil, fmt.Errorf("failed to update service %s: %w", id, err)
	}
	return svc, nil
}

func (s *DefaultCatalogService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete service %s: %w", id, err)
	}
	return nil
}
