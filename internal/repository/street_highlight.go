package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const highlightsCollection = "street_highlights"

type highlightDocument struct {
	ID          string     `bson:"id"`
	StartLat    float64    `bson:"start_lat"`
	StartLng    float64    `bson:"start_lng"`
	EndLat      float64    `bson:"end_lat"`
	EndLng      float64    `bson:"end_lng"`
	Color       string     `bson:"color"`
	Reason      string     `bson:"reason"`
	Description string     `bson:"description,omitempty"`
	CreatedAt   storedTime `bson:"created_at"`
	CreatedBy   string     `bson:"created_by"`
}

type HighlightRepository struct {
	coll *mongo.Collection
}

func NewHighlightRepository(db *mongo.Database) service.HighlightRepository {
	return &HighlightRepository{coll: db.Collection(highlightsCollection)}
}

func (r *HighlightRepository) Create(ctx context.Context, h *models.StreetHighlight) error {
	doc := highlightDocument{
		ID:          h.ID,
		StartLat:    h.StartLat,
		StartLng:    h.StartLng,
		EndLat:      h.EndLat,
		EndLng:      h.EndLng,
		Color:       h.Color,
		Reason:      h.Reason,
		Description: h.Description,
		CreatedAt:   storedTime(h.CreatedAt),
		CreatedBy:   h.CreatedBy,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create street highlight: %w", err)
	}
	return nil
}

func (r *HighlightRepository) List(ctx context.Context) ([]*models.StreetHighlight, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list street highlights: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]*models.StreetHighlight, 0)
	for cur.Next(ctx) {
		var doc highlightDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode street highlight: %w", err)
		}
		h := &models.StreetHighlight{
			ID:          doc.ID,
			StartLat:    doc.StartLat,
			StartLng:    doc.StartLng,
			EndLat:      doc.EndLat,
			EndLng:      doc.EndLng,
			Color:       doc.Color,
			Reason:      doc.Reason,
			Description: doc.Description,
			CreatedAt:   doc.CreatedAt.Time(),
			CreatedBy:   doc.CreatedBy,
		}
		h.Canonicalize()
		out = append(out, h)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return out, nil
}

func (r *HighlightRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("failed to update street highlight: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("street highlight with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

func (r *HighlightRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete street highlight: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("street highlight with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}
