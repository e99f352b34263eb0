package serviceRepo

import "github.com/odacaict/domee.ro/models"

// ServiceRepository defines data access for provider service catalogues.
type ServiceRepository interface {
	GetByID(id string) (*models.Service, error)
	// GetActiveByProvider returns the bookable services of a provider.
	GetActiveByProvider(providerID string) ([]models.Service, error)
	GetByProvider(providerID string) ([]models.Service, error)
	// SearchActive matches active services by name/description, optionally
	// bounded by price.
	SearchActive(query string, minPrice, maxPrice float64) ([]models.Service, error)
	Create(service *models.Service) error
	Update(service *models.Service) error
	Delete(id string) error
}
