package creativeRepo

import (
	"fmt"
	"time"

	"brandconnect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultSearchLimit = 20

// Search returns approved creatives matching the browse filters,
// best-rated first. At most query.Limit results (default 20).
func (r *MongoCreativeRepo) Search(query models.CreativeSearchQuery) ([]models.Creative, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"status": models.CreativeStatusApproved}
	if query.Category != "" {
		filter["category"] = bson.M{"$regex": query.Category, "$options": "i"}
	}
	if query.Region != "" {
		filter["region"] = bson.M{"$regex": query.Region, "$options": "i"}
	}
	if query.Text != "" {
		filter["$or"] = bson.A{
			bson.M{"displayName": bson.M{"$regex": query.Text, "$options": "i"}},
			bson.M{"bio": bson.M{"$regex": query.Text, "$options": "i"}},
		}
	}

	limit := query.Limit
	if limit <= 0 || limit > defaultSearchLimit {
		limit = defaultSearchLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "ratingAverage", Value: -1}, {Key: "ratingCount", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search creatives: %w", err)
	}
	defer cursor.Close(ctx)

	var creatives []models.Creative
	if err := cursor.All(ctx, &creatives); err != nil {
		return nil, fmt.Errorf("failed to decode creatives: %w", err)
	}
	return creatives, nil
}

// ListByStatus returns creatives in a given approval state, oldest first.
func (r *MongoCreativeRepo) ListByStatus(status string) ([]models.Creative, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list creatives by status %s: %w", status, err)
	}
	defer cursor.Close(ctx)

	var creatives []models.Creative
	if err := cursor.All(ctx, &creatives); err != nil {
		return nil, fmt.Errorf("failed to decode creatives: %w", err)
	}
	return creatives, nil
}

// AddRating folds a new review score into the stored running average.
func (r *MongoCreativeRepo) AddRating(id string, score float64) error {
	creative, err := r.GetByID(id)
	if err != nil {
		return err
	}
	total := creative.RatingAverage*float64(creative.RatingCount) + score
	creative.RatingCount++
	creative.RatingAverage = total / float64(creative.RatingCount)
	creative.UpdatedAt = time.Now()
	return r.Update(creative)
}
