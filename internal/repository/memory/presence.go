package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/community_map/internal/service"
)

type PresenceRepository struct {
	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewPresenceRepository() *PresenceRepository {
	return &PresenceRepository{sessions: make(map[string]time.Time)}
}

var _ service.PresenceRepository = (*PresenceRepository)(nil)

func (r *PresenceRepository) Touch(_ context.Context, sessionID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = at
	return nil
}

func (r *PresenceRepository) RemoveOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, seen := range r.sessions {
		if seen.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *PresenceRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.sessions)), nil
}
