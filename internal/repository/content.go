package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const contentCollection = "content"

// contentDocument - документ-синглтон, ключ хранится в _id
type contentDocument struct {
	ID        string     `bson:"_id"`
	Content   string     `bson:"content"`
	Enabled   *bool      `bson:"enabled,omitempty"`
	UpdatedAt storedTime `bson:"updated_at"`
}

type ContentRepository struct {
	coll *mongo.Collection
}

func NewContentRepository(db *mongo.Database) service.ContentRepository {
	return &ContentRepository{coll: db.Collection(contentCollection)}
}

func (r *ContentRepository) Get(ctx context.Context, id string) (*models.ContentRecord, error) {
	var doc contentDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("content %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get content %s: %w", id, err)
	}
	return &models.ContentRecord{
		ID:        doc.ID,
		Content:   doc.Content,
		Enabled:   doc.Enabled,
		UpdatedAt: doc.UpdatedAt.Time(),
	}, nil
}

// Upsert заменяет документ целиком или создает его
func (r *ContentRepository) Upsert(ctx context.Context, record *models.ContentRecord) error {
	doc := contentDocument{
		ID:        record.ID,
		Content:   record.Content,
		Enabled:   record.Enabled,
		UpdatedAt: storedTime(record.UpdatedAt),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": record.ID}, doc, opts); err != nil {
		return fmt.Errorf("failed to upsert content %s: %w", record.ID, err)
	}
	return nil
}
