package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/metrics"
	"gearshare-backend/internal/repository"
)

var (
	ErrNotRepliable    = errors.New("message cannot be replied to")
	ErrNotYourMessage  = errors.New("message is not addressed to this user")
	ErrEmptyReply      = errors.New("reply content must not be empty")
	ErrMessageNotFound = errors.New("message not found")
)

// messenger is the single delivery path for inbox messages. Every
// lifecycle transition and reply goes through send, which appends to
// the recipient's inbox and notifies live feed subscribers.
type messenger struct {
	msgRepo repository.MessageRepository
	hub     *MessageHub
}

func (m *messenger) send(ctx context.Context, toUserID, fromUserID, content string, msgType domain.MessageType, planID string) error {
	msg := &domain.Message{
		ID:         uuid.NewString(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Content:    content,
		Type:       msgType,
		PlanID:     planID,
		CreatedOn:  time.Now().Format(time.RFC3339),
	}
	if err := m.msgRepo.Create(ctx, msg); err != nil {
		return err
	}
	metrics.MessagesDelivered.Inc()
	if m.hub != nil {
		m.hub.Publish(*msg)
	}
	return nil
}

type messageService struct {
	messenger
	userRepo repository.UserRepository
}

func NewMessageService(msgRepo repository.MessageRepository, userRepo repository.UserRepository, hub *MessageHub) MessageService {
	return &messageService{
		messenger: messenger{msgRepo: msgRepo, hub: hub},
		userRepo:  userRepo,
	}
}

func (s *messageService) Inbox(ctx context.Context, userID string) ([]domain.Message, error) {
	return s.msgRepo.ListByRecipient(ctx, userID)
}

// Reply answers a REQUEST or RESPONSE message: the original sender gets
// a RESPONSE, the replying user keeps a REPLY self-copy.
func (s *messageService) Reply(ctx context.Context, userID, messageID, content string) error {
	if content == "" {
		return ErrEmptyReply
	}

	original, err := s.msgRepo.GetByID(ctx, messageID)
	if err != nil {
		return ErrMessageNotFound
	}
	if original.ToUserID != userID {
		return ErrNotYourMessage
	}
	if !original.Repliable() || original.FromUserID == userID {
		return ErrNotRepliable
	}

	if err := s.send(ctx, original.FromUserID, userID, content, domain.MessageTypeResponse, ""); err != nil {
		return err
	}

	peerEmail := "Unknown"
	if peer, err := s.userRepo.GetByID(ctx, original.FromUserID); err == nil {
		peerEmail = peer.Email
	}
	return s.send(ctx, userID, userID,
		fmt.Sprintf("You replied to %s: %s", peerEmail, content),
		domain.MessageTypeReply, "")
}

func (s *messageService) Subscribe(userID string) (<-chan domain.Message, func()) {
	return s.hub.Subscribe(userID)
}
