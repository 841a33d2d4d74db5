package http

import (
	"net/http"

	"github.com/gorilla/websocket"

	"gearshare-backend/internal/api/http/middleware"
	"gearshare-backend/internal/logger"
	"gearshare-backend/internal/service"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// MessageFeedHandler streams new inbox messages over a WebSocket.
type MessageFeedHandler struct {
	messageService service.MessageService
}

func NewMessageFeedHandler(messageService service.MessageService) *MessageFeedHandler {
	return &MessageFeedHandler{messageService: messageService}
}

// Feed upgrades the connection and forwards every message delivered to
// the authenticated user until the client goes away.
func (h *MessageFeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Authorization required", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	feed, cancel := h.messageService.Subscribe(claims.UserID)
	defer cancel()

	// Reader goroutine: we ignore client frames but need the read loop
	// to notice a closed connection.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, open := <-feed:
			if !open {
				return
			}
			if err := conn.WriteJSON(msg); err != nil {
				logger.Debug("WebSocket write failed, dropping feed", "user_id", claims.UserID, "error", err)
				return
			}
		case <-done:
			return
		}
	}
}
