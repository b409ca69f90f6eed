package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brandconnect/database"
	"brandconnect/models"
	"brandconnect/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &MongoAvailabilityRepo{coll: database.Collection("availability")}
}

func (r *MongoAvailabilityRepo) Get(creativeID string) (*models.AvailabilityProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var profile models.AvailabilityProfile
	if err := r.coll.FindOne(ctx, bson.M{"creativeId": creativeID}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch availability for creative %s: %w", creativeID, err)
	}
	return &profile, nil
}

func (r *MongoAvailabilityRepo) Replace(profile *models.AvailabilityProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"creativeId": profile.CreativeID}, profile, opts); err != nil {
		return fmt.Errorf("failed to replace availability for creative %s: %w", profile.CreativeID, err)
	}
	return nil
}
