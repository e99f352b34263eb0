package providerRepo

import "github.com/odacaict/domee.ro/models"

// SearchCriteria narrows provider searches. Zero values mean "no filter".
type SearchCriteria struct {
	Query       string
	City        string
	SalonType   string
	MinRating   float64
	MinReviews  int
	Verified    bool
	AcceptFiat  bool
	AcceptCrypto bool
	Facilities  []string
}

// ProviderRepository defines data access for salon profiles.
type ProviderRepository interface {
	GetByID(id string) (*models.Provider, error)
	GetByUserID(userID string) (*models.Provider, error)
	GetByEmail(email string) (*models.Provider, error)
	GetAll() ([]models.Provider, error)
	Create(provider *models.Provider) error
	Update(provider *models.Provider) error
	Delete(id string) error
	// Search performs filtered text search over salon name, description and
	// city, prefix matches ranked first.
	Search(criteria SearchCriteria) ([]models.Provider, error)
	// GetNearby returns providers within radiusKm of the point, nearest first,
	// with Distance populated in kilometres.
	GetNearby(lat, lng, radiusKm float64) ([]models.Provider, error)
	// ApplyReviewAggregate folds a new rating into the provider's rating and
	// review count.
	ApplyReviewAggregate(providerID string, rating int) error
}
