package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const chatCollection = "chat_messages"

type chatDocument struct {
	ID        string     `bson:"id"`
	Message   string     `bson:"message"`
	Author    string     `bson:"author"`
	Timestamp storedTime `bson:"timestamp"`
}

type ChatRepository struct {
	coll *mongo.Collection
}

func NewChatRepository(db *mongo.Database) service.ChatRepository {
	return &ChatRepository{coll: db.Collection(chatCollection)}
}

func (r *ChatRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	doc := chatDocument{
		ID:        msg.ID,
		Message:   msg.Message,
		Author:    msg.Author,
		Timestamp: storedTime(msg.Timestamp),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create chat message: %w", err)
	}
	return nil
}

// List возвращает сообщения в хронологическом порядке
func (r *ChatRepository) List(ctx context.Context) ([]*models.ChatMessage, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer cur.Close(ctx)

	messages := make([]*models.ChatMessage, 0)
	for cur.Next(ctx) {
		var doc chatDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode chat message: %w", err)
		}
		msg := &models.ChatMessage{
			ID:        doc.ID,
			Message:   doc.Message,
			Author:    doc.Author,
			Timestamp: doc.Timestamp.Time(),
		}
		msg.Canonicalize()
		messages = append(messages, msg)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return messages, nil
}

func (r *ChatRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, olderThan("timestamp", cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired chat messages: %w", err)
	}
	return res.DeletedCount, nil
}
