package providerRepo

import (
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/odacaict/domee.ro/models"
)

const searchLimit = 20

// Search runs a filtered regex search over salon name, description and city.
// Prefix matches on the salon name rank first, then rating descending.
func (r *MongoProviderRepo) Search(criteria SearchCriteria) ([]models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: searchFilter(criteria)}},
		{{Key: "$addFields", Value: bson.M{
			"prefixRank": bson.M{"$cond": bson.A{
				bson.M{"$regexMatch": bson.M{
					"input":   "$salonName",
					"regex":   "^" + regexp.QuoteMeta(criteria.Query),
					"options": "i",
				}},
				0, 1,
			}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "prefixRank", Value: 1},
			{Key: "rating", Value: -1},
			{Key: "reviewCount", Value: -1},
		}}},
		{{Key: "$limit", Value: searchLimit}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("provider search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode search results: %w", err)
	}
	return providers, nil
}

// GetNearby uses the 2dsphere index to return providers within radiusKm,
// nearest first, with the computed distance attached in kilometres.
func (r *MongoProviderRepo) GetNearby(lat, lng, radiusKm float64) ([]models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{lng, lat},
			},
			"distanceField":      "distance",
			"maxDistance":        radiusKm * 1000,
			"distanceMultiplier": 0.001,
			"spherical":          true,
			"key":                "locationGeo",
		}}},
		{{Key: "$limit", Value: searchLimit}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("nearby provider query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode nearby results: %w", err)
	}
	return providers, nil
}

// searchFilter builds the $match stage. User input is quoted so regex
// metacharacters in a query cannot break the aggregation.
func searchFilter(criteria SearchCriteria) bson.M {
	filter := bson.M{}
	if criteria.Query != "" {
		rx := bson.M{"$regex": regexp.QuoteMeta(criteria.Query), "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"salonName": rx},
			bson.M{"description": rx},
			bson.M{"city": rx},
		}
	}
	applyCriteria(filter, criteria)
	return filter
}

func applyCriteria(filter bson.M, criteria SearchCriteria) {
	if criteria.City != "" {
		filter["city"] = bson.M{"$regex": "^" + regexp.QuoteMeta(criteria.City) + "$", "$options": "i"}
	}
	if criteria.SalonType != "" {
		filter["salonType"] = criteria.SalonType
	}
	if criteria.MinRating > 0 {
		filter["rating"] = bson.M{"$gte": criteria.MinRating}
	}
	if criteria.MinReviews > 0 {
		filter["reviewCount"] = bson.M{"$gte": criteria.MinReviews}
	}
	if criteria.Verified {
		filter["verified"] = true
	}
	if criteria.AcceptFiat {
		filter["paymentMethods.fiat"] = true
	}
	if criteria.AcceptCrypto {
		filter["paymentMethods.crypto"] = true
	}
	if len(criteria.Facilities) > 0 {
		filter["facilities"] = bson.M{"$all": criteria.Facilities}
	}
}
