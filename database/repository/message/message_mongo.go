package messageRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brandconnect/database"
	"brandconnect/models"
	"brandconnect/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMessageRepo implements MessageRepository using MongoDB.
type MongoMessageRepo struct {
	conversations *mongo.Collection
	messages      *mongo.Collection
}

// NewMongoMessageRepo creates a new MessageRepository using MongoDB.
func NewMongoMessageRepo() MessageRepository {
	return &MongoMessageRepo{
		conversations: database.Collection("conversations"),
		messages:      database.Collection("messages"),
	}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func (r *MongoMessageRepo) GetOrCreateConversation(clientID, creativeID string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"clientId": clientID, "creativeId": creativeID}
	var conv models.Conversation
	err := r.conversations.FindOne(ctx, filter).Decode(&conv)
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}

	conv = models.Conversation{
		ID:         uuid.NewString(),
		ClientID:   clientID,
		CreativeID: creativeID,
		CreatedAt:  time.Now(),
	}
	if _, err := r.conversations.InsertOne(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return &conv, nil
}

func (r *MongoMessageRepo) GetConversation(id string) (*models.Conversation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	var conv models.Conversation
	if err := r.conversations.FindOne(ctx, bson.M{"id": id}).Decode(&conv); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch conversation %s: %w", id, err)
	}
	return &conv, nil
}

func (r *MongoMessageRepo) ListConversations(accountID string) ([]models.Conversation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	filter := bson.M{"$or": bson.A{
		bson.M{"clientId": accountID},
		bson.M{"creativeId": accountID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "lastMessageAt", Value: -1}})
	cursor, err := r.conversations.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer cursor.Close(ctx)
	var convs []models.Conversation
	if err := cursor.All(ctx, &convs); err != nil {
		return nil, fmt.Errorf("failed to decode conversations: %w", err)
	}
	return convs, nil
}

func (r *MongoMessageRepo) AppendMessage(message *models.Message) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.messages.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	_, err := r.conversations.UpdateOne(ctx,
		bson.M{"id": message.ConversationID},
		bson.M{"$set": bson.M{"lastMessageAt": message.SentAt}},
	)
	if err != nil {
		return fmt.Errorf("failed to bump conversation %s: %w", message.ConversationID, err)
	}
	return nil
}

func (r *MongoMessageRepo) ListMessages(conversationID string, limit int) ([]models.Message, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	opts := options.Find().SetSort(bson.D{{Key: "sentAt", Value: -1}}).SetLimit(int64(limit))
	cursor, err := r.messages.Find(ctx, bson.M{"conversationId": conversationID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer cursor.Close(ctx)
	var msgs []models.Message
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return msgs, nil
}

func (r *MongoMessageRepo) MarkRead(conversationID, readerID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	_, err := r.messages.UpdateMany(ctx,
		bson.M{"conversationId": conversationID, "senderId": bson.M{"$ne": readerID}, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark conversation %s read: %w", conversationID, err)
	}
	return nil
}
