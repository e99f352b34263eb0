package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/odacaict/domee.ro/database"
	"github.com/odacaict/domee.ro/models"
)

// ErrNotFound signals a missing provider document.
var ErrNotFound = errors.New("provider not found")

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	coll := database.MongoClient.Database(database.Name).Collection("providers")
	repo := &MongoProviderRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		panic(fmt.Sprintf("provider repo: %v", err))
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoProviderRepo) GetByID(id string) (*models.Provider, error) {
	return r.getOne(bson.M{"id": id})
}

func (r *MongoProviderRepo) GetByUserID(userID string) (*models.Provider, error) {
	return r.getOne(bson.M{"userId": userID})
}

func (r *MongoProviderRepo) GetByEmail(email string) (*models.Provider, error) {
	return r.getOne(bson.M{"email": email})
}

func (r *MongoProviderRepo) getOne(filter bson.M) (*models.Provider, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var provider models.Provider
	if err := r.coll.FindOne(ctx, filter).Decode(&provider); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	return &provider, nil
}

func (r *MongoProviderRepo) GetAll() ([]models.Provider, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	return r.findMany(ctx, bson.M{})
}

func (r *MongoProviderRepo) findMany(ctx context.Context, filter bson.M) ([]models.Provider, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, nil
}

func (r *MongoProviderRepo) Create(provider *models.Provider) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, provider); err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

func (r *MongoProviderRepo) Update(provider *models.Provider) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": provider.ID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": provider})
	if err != nil {
		return fmt.Errorf("failed to update provider with id %s: %w", provider.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProviderRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete provider with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoProviderRepo) ApplyReviewAggregate(providerID string, rating int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// rating = (rating*reviewCount + new) / (reviewCount+1), computed in one
	// pipeline update so concurrent reviews do not clobber each other.
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.M{
			"rating": bson.M{"$round": bson.A{
				bson.M{"$divide": bson.A{
					bson.M{"$add": bson.A{
						bson.M{"$multiply": bson.A{"$rating", "$reviewCount"}},
						rating,
					}},
					bson.M{"$add": bson.A{"$reviewCount", 1}},
				}},
				2,
			}},
			"reviewCount": bson.M{"$add": bson.A{"$reviewCount", 1}},
			"updatedAt":   time.Now(),
		}}},
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": providerID}, pipeline)
	if err != nil {
		return fmt.Errorf("failed to apply review aggregate for provider %s: %w", providerID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
