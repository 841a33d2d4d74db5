package service

import (
	"context"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/repository"
)

// Notifier delivers system-originated notifications that happen outside
// a user action, such as scheduled reminders.
type Notifier struct {
	messenger
}

func NewNotifier(msgRepo repository.MessageRepository, hub *MessageHub) *Notifier {
	return &Notifier{messenger: messenger{msgRepo: msgRepo, hub: hub}}
}

// Notify places a NOTIFICATION in the recipient's inbox. The sender is
// the recipient themselves, matching how self-notices are recorded.
func (n *Notifier) Notify(ctx context.Context, toUserID, content, planID string) error {
	return n.send(ctx, toUserID, toUserID, content, domain.MessageTypeNotification, planID)
}
