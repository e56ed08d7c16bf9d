package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service"
)

// IncidentRepository - потокобезопасное хранилище инцидентов в памяти.
// Каждая операция выполняется под одной блокировкой, что повторяет
// атомарность операций над одним документом в MongoDB.
type IncidentRepository struct {
	mu    sync.RWMutex
	items map[string]*models.Incident
}

func NewIncidentRepository() *IncidentRepository {
	return &IncidentRepository{items: make(map[string]*models.Incident)}
}

var _ service.IncidentRepository = (*IncidentRepository)(nil)

func (r *IncidentRepository) Create(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.items[incident.ID]; exists {
		return fmt.Errorf("incident with id %s already exists", incident.ID)
	}
	c := *incident
	r.items[incident.ID] = &c
	return nil
}

func (r *IncidentRepository) ListByCategory(_ context.Context, category string) ([]*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Incident, 0)
	for _, inc := range r.items {
		if inc.Category == category {
			out = append(out, snapshot(inc))
		}
	}
	return out, nil
}

func (r *IncidentRepository) List(_ context.Context, includeContact bool) ([]*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.Incident, 0, len(r.items))
	for _, inc := range r.items {
		c := snapshot(inc)
		if !includeContact {
			c = c.WithoutContact()
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *IncidentRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, inc := range r.items {
		if inc.Timestamp.Before(cutoff) {
			delete(r.items, id)
			n++
		}
	}
	return n, nil
}

func (r *IncidentRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
	}
	delete(r.items, id)
	return nil
}

func (r *IncidentRepository) Update(_ context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inc, ok := r.items[id]
	if !ok {
		return fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
	}
	for name, v := range fields {
		switch name {
		case "category":
			inc.Category = v.(string)
		case "urgency":
			inc.Urgency = v.(string)
		case "description":
			inc.Description = v.(string)
		case "latitude":
			inc.Latitude = v.(float64)
		case "longitude":
			inc.Longitude = v.(float64)
		case "contact_email":
			inc.ContactEmail = v.(string)
		case "contact_phone":
			inc.ContactPhone = v.(string)
		case "is_verified":
			inc.IsVerified = v.(bool)
		case "cluster_count":
			inc.ClusterCount = v.(int)
		case "like_count":
			inc.LikeCount = v.(int)
		case "dislike_count":
			inc.DislikeCount = v.(int)
		}
	}
	return nil
}

func (r *IncidentRepository) IncrementCounter(_ context.Context, id, field string) (*models.ReactionCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inc, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrNotFound)
	}
	switch field {
	case "like_count":
		inc.LikeCount++
	case "dislike_count":
		inc.DislikeCount++
	default:
		return nil, fmt.Errorf("unknown counter %q", field)
	}
	return &models.ReactionCounts{LikeCount: inc.LikeCount, DislikeCount: inc.DislikeCount}, nil
}

// Put сохраняет инцидент как есть; используется для загрузки старых записей
func (r *IncidentRepository) Put(incident *models.Incident) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *incident
	r.items[incident.ID] = &c
}

func snapshot(inc *models.Incident) *models.Incident {
	c := *inc
	c.Canonicalize()
	return &c
}
