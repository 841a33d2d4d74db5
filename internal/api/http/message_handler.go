package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"gearshare-backend/internal/api/http/middleware"
	"gearshare-backend/internal/service"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type replyRequest struct {
	Content string `json:"content" validate:"required"`
}

func (h *MessageHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	messages, err := h.messageService.Inbox(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) Reply(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())

	var req replyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := validateStruct(req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.messageService.Reply(r.Context(), claims.UserID, mux.Vars(r)["id"], req.Content); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
