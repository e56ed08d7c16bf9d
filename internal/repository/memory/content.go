package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service"
)

type ContentRepository struct {
	mu    sync.RWMutex
	items map[string]models.ContentRecord
}

func NewContentRepository() *ContentRepository {
	return &ContentRepository{items: make(map[string]models.ContentRecord)}
}

var _ service.ContentRepository = (*ContentRepository)(nil)

func (r *ContentRepository) Get(_ context.Context, id string) (*models.ContentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("content %s: %w", id, service.ErrNotFound)
	}
	return &rec, nil
}

func (r *ContentRepository) Upsert(_ context.Context, record *models.ContentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[record.ID] = *record
	return nil
}
