package domain

type MessageType string

const (
	MessageTypeRequest      MessageType = "REQUEST"
	MessageTypeNotification MessageType = "NOTIFICATION"
	MessageTypeResponse     MessageType = "RESPONSE"
	MessageTypeReply        MessageType = "REPLY"
)

// Message is one entry in a user's inbox. Delivery is an append to the
// recipient's list only; the sender keeps no copy unless the emitting
// code sends an explicit self-notification, which lifecycle transitions
// always do.
type Message struct {
	ID         string      `json:"id"`
	FromUserID string      `json:"from_user_id"`
	ToUserID   string      `json:"to_user_id"`
	Content    string      `json:"content"`
	Type       MessageType `json:"type"`
	PlanID     string      `json:"plan_id,omitempty"`
	CreatedOn  string      `json:"created_on"`
}

// Repliable reports whether a message may be answered from the inbox.
// NOTIFICATION and REPLY entries are terminal.
func (m *Message) Repliable() bool {
	return m.Type == MessageTypeRequest || m.Type == MessageTypeResponse
}
