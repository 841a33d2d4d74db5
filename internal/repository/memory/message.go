package memory

import (
	"context"
	"sync"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"
)

type messageRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.Message
	inboxes map[string][]string // recipient -> message ids, insertion order
}

func newMessageRepository() repository.MessageRepository {
	return &messageRepository{
		byID:    make(map[string]domain.Message),
		inboxes: make(map[string][]string),
	}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[msg.ID] = *msg
	r.inboxes[msg.ToUserID] = append(r.inboxes[msg.ToUserID], msg.ID)
	return nil
}

func (r *messageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

// ListByRecipient returns the inbox in insertion order, not sorted by
// timestamp.
func (r *messageRepository) ListByRecipient(ctx context.Context, userID string) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.inboxes[userID]
	msgs := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		msgs = append(msgs, r.byID[id])
	}
	return msgs, nil
}

func (r *messageRepository) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.inboxes[userID] {
		delete(r.byID, id)
	}
	delete(r.inboxes, userID)
	return nil
}
