package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const incidentsCollection = "incidents"

// incidentDocument - представление инцидента в MongoDB
type incidentDocument struct {
	ID           string     `bson:"id"`
	Category     string     `bson:"category"`
	Urgency      string     `bson:"urgency"`
	Description  string     `bson:"description"`
	Latitude     float64    `bson:"latitude"`
	Longitude    float64    `bson:"longitude"`
	ContactEmail string     `bson:"contact_email,omitempty"`
	ContactPhone string     `bson:"contact_phone,omitempty"`
	IsVerified   bool       `bson:"is_verified"`
	ClusterCount int        `bson:"cluster_count"`
	LikeCount    int        `bson:"like_count"`
	DislikeCount int        `bson:"dislike_count"`
	Timestamp    storedTime `bson:"timestamp"`
}

func newIncidentDocument(i *models.Incident) incidentDocument {
	return incidentDocument{
		ID:           i.ID,
		Category:     i.Category,
		Urgency:      i.Urgency,
		Description:  i.Description,
		Latitude:     i.Latitude,
		Longitude:    i.Longitude,
		ContactEmail: i.ContactEmail,
		ContactPhone: i.ContactPhone,
		IsVerified:   i.IsVerified,
		ClusterCount: i.ClusterCount,
		LikeCount:    i.LikeCount,
		DislikeCount: i.DislikeCount,
		Timestamp:    storedTime(i.Timestamp),
	}
}

func (d incidentDocument) model() *models.Incident {
	inc := &models.Incident{
		ID:           d.ID,
		Category:     d.Category,
		Urgency:      d.Urgency,
		Description:  d.Description,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		ContactEmail: d.ContactEmail,
		ContactPhone: d.ContactPhone,
		IsVerified:   d.IsVerified,
		ClusterCount: d.ClusterCount,
		LikeCount:    d.LikeCount,
		DislikeCount: d.DislikeCount,
		Timestamp:    d.Timestamp.Time(),
	}
	inc.Canonicalize()
	return inc
}

type IncidentRepository struct {
	coll *mongo.Collection
}

func NewIncidentRepository(db *mongo.Database) service.IncidentRepository {
	return &IncidentRepository{
		coll: db.Collection(incidentsCollection),
	}
}

// Create создает новую запись об инциденте
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	if _, err := r.coll.InsertOne(ctx, newIncidentDocument(incident)); err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// ListByCategory возвращает все инциденты категории без фильтрации по времени и месту
func (r *IncidentRepository) ListByCategory(ctx context.Context, category string) ([]*models.Incident, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 0})
	return r.find(ctx, bson.M{"category": category}, opts)
}

// List возвращает все инциденты; includeContact=false исключает контактные поля на стороне хранилища
func (r *IncidentRepository) List(ctx context.Context, includeContact bool) ([]*models.Incident, error) {
	projection := bson.M{"_id": 0}
	if !includeContact {
		projection["contact_email"] = 0
		projection["contact_phone"] = 0
	}
	opts := options.Find().
		SetProjection(projection).
		SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

// DeleteOlderThan удаляет инциденты, созданные раньше cutoff
func (r *IncidentRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, olderThan("timestamp", cutoff))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired incidents: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *IncidentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// Update выполняет $set по уже проверенному набору полей
func (r *IncidentRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
	}
	return nil
}

// IncrementCounter атомарно увеличивает счетчик через $inc и возвращает значения после изменения
func (r *IncidentRepository) IncrementCounter(ctx context.Context, id, field string) (*models.ReactionCounts, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"_id": 0, "like_count": 1, "dislike_count": 1})

	var doc struct {
		LikeCount    int `bson:"like_count"`
		DislikeCount int `bson:"dislike_count"`
	}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$inc": bson.M{field: 1}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to increment %s: %w", field, err)
	}
	return &models.ReactionCounts{LikeCount: doc.LikeCount, DislikeCount: doc.DislikeCount}, nil
}

func (r *IncidentRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Incident, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer cur.Close(ctx)

	incidents := make([]*models.Incident, 0)
	for cur.Next(ctx) {
		var doc incidentDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode incident: %w", err)
		}
		incidents = append(incidents, doc.model())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}
