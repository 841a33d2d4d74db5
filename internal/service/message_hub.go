package service

import (
	"sync"

	"gearshare-backend/internal/domain"
)

// MessageHub fans newly delivered messages out to live subscribers
// (the websocket feed). Delivery to the inbox never depends on the hub;
// a slow or absent subscriber only misses the push, not the message.
type MessageHub struct {
	mu   sync.Mutex
	subs map[string]map[int]chan domain.Message
	next int
}

func NewMessageHub() *MessageHub {
	return &MessageHub{subs: make(map[string]map[int]chan domain.Message)}
}

func (h *MessageHub) Subscribe(userID string) (<-chan domain.Message, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[int]chan domain.Message)
	}
	id := h.next
	h.next++
	ch := make(chan domain.Message, 16)
	h.subs[userID][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, ok := h.subs[userID][id]; ok {
			delete(h.subs[userID], id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish pushes a delivered message to every live subscriber of its
// recipient. Sends never block; a full buffer drops the push.
func (h *MessageHub) Publish(msg domain.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[msg.ToUserID] {
		select {
		case ch <- msg:
		default:
		}
	}
}
