package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service"
)

type HighlightRepository struct {
	mu    sync.RWMutex
	items map[string]*models.StreetHighlight
}

func NewHighlightRepository() *HighlightRepository {
	return &HighlightRepository{items: make(map[string]*models.StreetHighlight)}
}

var _ service.HighlightRepository = (*HighlightRepository)(nil)

func (r *HighlightRepository) Create(_ context.Context, h *models.StreetHighlight) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *h
	r.items[h.ID] = &c
	return nil
}

func (r *HighlightRepository) List(_ context.Context) ([]*models.StreetHighlight, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.StreetHighlight, 0, len(r.items))
	for _, h := range r.items {
		c := *h
		c.Canonicalize()
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *HighlightRepository) Update(_ context.Context, id string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.items[id]
	if !ok {
		return fmt.Errorf("street highlight with id %s: %w", id, service.ErrNotFound)
	}
	for name, v := range fields {
		switch name {
		case "start_lat":
			h.StartLat = v.(float64)
		case "start_lng":
			h.StartLng = v.(float64)
		case "end_lat":
			h.EndLat = v.(float64)
		case "end_lng":
			h.EndLng = v.(float64)
		case "color":
			h.Color = v.(string)
		case "reason":
			h.Reason = v.(string)
		case "description":
			h.Description = v.(string)
		case "created_by":
			h.CreatedBy = v.(string)
		}
	}
	return nil
}

func (r *HighlightRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("street highlight with id %s: %w", id, service.ErrNotFound)
	}
	delete(r.items, id)
	return nil
}
