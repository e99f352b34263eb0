package provider

import (
	providerRepo "github.com/odacaict/domee.ro/database/repository/provider"
	serviceRepo "github.com/odacaict/domee.ro/database/repository/service"
	"github.com/odacaict/domee.ro/models"
)

type RegisterRequest struct {
	UserID      string `json:"user_id"`
	SalonName   string `json:"salon_name" binding:"required"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	Country     string `json:"country"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"required"`
	SalonType   string `json:"salon_type"`
	PlusCode    string `json:"location_plus_code"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// SearchRequest is the public search surface. Query may be free text or a
// localized Plus Code; Plus Codes are resolved to a city filter. When the
// caller shares coordinates, results are annotated with their distance.
type SearchRequest struct {
	Query      string   `form:"q"`
	City       string   `form:"city"`
	SalonType  string   `form:"salon_type"`
	MinRating  float64  `form:"min_rating"`
	Verified   bool     `form:"verified"`
	Facilities []string `form:"facilities"`
	Lat        float64  `form:"lat"`
	Lng        float64  `form:"lng"`
}

type NearbyRequest struct {
	Lat      float64 `form:"lat" binding:"required"`
	Lng      float64 `form:"lng" binding:"required"`
	RadiusKm float64 `form:"radius_km"`
}

// ProviderService manages salon profiles and discovery.
type ProviderService interface {
	Register(req RegisterRequest) (*models.Provider, error)
	GetByID(id string) (*models.Provider, error)
	GetByUserID(userID string) (*models.Provider, error)
	Update(p *models.Provider) (*models.Provider, error)
	UpdateSchedule(id string, schedule models.WeeklySchedule) (*models.Provider, error)
	UpdatePaymentMethods(id string, pm models.ProviderPaymentMethods) (*models.Provider, error)
	Delete(id string) error
	Search(req SearchRequest) ([]models.Provider, error)
	Nearby(req NearbyRequest) ([]models.Provider, error)
}

type DefaultProviderService struct {
	Repo     providerRepo.ProviderRepository
	Services serviceRepo.ServiceRepository
}
