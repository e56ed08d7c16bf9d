package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/community_map/internal/models"
	"github.com/shenikar/community_map/internal/service"
)

type ChatRepository struct {
	mu       sync.RWMutex
	messages []*models.ChatMessage
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

var _ service.ChatRepository = (*ChatRepository)(nil)

func (r *ChatRepository) Create(_ context.Context, msg *models.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *msg
	r.messages = append(r.messages, &c)
	return nil
}

func (r *ChatRepository) List(_ context.Context) ([]*models.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*models.ChatMessage, 0, len(r.messages))
	for _, m := range r.messages {
		c := *m
		c.Canonicalize()
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *ChatRepository) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.messages[:0]
	var n int64
	for _, m := range r.messages {
		if m.Timestamp.Before(cutoff) {
			n++
			continue
		}
		kept = append(kept, m)
	}
	r.messages = kept
	return n, nil
}
