package creativeRepo

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
)

// MongoCreativeRepo implements CreativeRepository using MongoDB.
type MongoCreativeRepo struct {
	coll *mongo.Collection
}

// NewMongoCreativeRepo creates a new instance of CreativeRepository using MongoDB.
func NewMongoCreativeRepo() CreativeRepository {
	return &MongoCreativeRepo{coll: database.Collection("creatives")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoCreativeRepo) findOne(filter bson.M) (*models.Creative, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var creative models.Creative
	if err := r.coll.FindOne(ctx, filter).Decode(&creative); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch creative: %w", err)
	}
	return &creative, nil
}

func (r *MongoCreativeRepo) GetByID(id string) (*models.Creative, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *MongoCreativeRepo) GetByEmail(email string) (*models.Creative, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *MongoCreativeRepo) GetByTokenHash(tokenHash string) (*models.Creative, error) {
	return r.findOne(bson.M{"tokenHash": tokenHash})
}

func (r *MongoCreativeRepo) Create(creative *models.Creative) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, creative); err != nil {
		return fmt.Errorf("failed to create creative: %w", err)
	}
	return nil
}

func (r *MongoCreativeRepo) Update(creative *models.Creative) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": creative.ID}, bson.M{"$set": creative})
	if err != nil {
		return fmt.Errorf("failed to update creative with id %s: %w", creative.ID, err)
	}
	if result.MatchedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *MongoCreativeRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete creative with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return utils.ErrNotFound
	}
	return nil
}
