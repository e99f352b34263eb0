package provider

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	providerRepo "github.com/odacaict/domee.ro/database/repository/provider"
	"github.com/odacaict/domee.ro/models"
	"github.com/odacaict/domee.ro/utils"
)

const defaultNearbyRadiusKm = 10

// Search runs a filtered directory search. A Plus Code query is translated
// into a city filter, matching how salons register their location.
func (s *DefaultProviderService) Search(req SearchRequest) ([]models.Provider, error) {
	criteria := providerRepo.SearchCriteria{
		Query:      strings.TrimSpace(req.Query),
		City:       strings.TrimSpace(req.City),
		SalonType:  req.SalonType,
		MinRating:  req.MinRating,
		Verified:   req.Verified,
		Facilities: req.Facilities,
	}

	if utils.IsValidPlusCode(criteria.Query) {
		if city := utils.ExtractCityFromPlusCode(criteria.Query); city != "" {
			criteria.Query = ""
			criteria.City = city
		}
	}

	results, err := s.Repo.Search(criteria)
	if err != nil {
		utils.GetLogger().Error("provider search failed", zap.Error(err))
		return nil, fmt.Errorf("search failed, please try again")
	}

	// Annotate distances when the caller shared their location.
	if req.Lat != 0 || req.Lng != 0 {
		for i := range results {
			if geo := results[i].LocationGeo; geo != nil {
				results[i].Distance = utils.HaversineKm(req.Lat, req.Lng, geo.Lat(), geo.Lng())
			}
		}
	}
	return results, nil
}

// Nearby returns salons around a coordinate, nearest first.
func (s *DefaultProviderService) Nearby(req NearbyRequest) ([]models.Provider, error) {
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		return nil, fmt.Errorf("invalid coordinates (%f, %f)", req.Lat, req.Lng)
	}
	radius := req.RadiusKm
	if radius <= 0 {
		radius = defaultNearbyRadiusKm
	}

	results, err := s.Repo.GetNearby(req.Lat, req.Lng, radius)
	if err != nil {
		utils.GetLogger().Error("nearby search failed", zap.Error(err))
		return nil, fmt.Errorf("search failed, please try again")
	}
	return results, nil
}
