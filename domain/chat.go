package domain

// SessionID identifies a chat session shared by several participants.
type SessionID string

type MessageType string

const (
	TypeText   MessageType = "text"
	TypePing   MessageType = "ping"
	TypePong   MessageType = "pong"
	TypeSystem MessageType = "system"
)

// ChatMessage is a single message on the duplex chat stream, inbound or
// outbound.
type ChatMessage struct {
	ID        string
	SessionID SessionID
	UserID    string
	Username  string
	Body      string
	Type      MessageType
	Timestamp string
}

const (
	systemUserID   = "system"
	systemUsername = "System"
)

// NewSystemMessage builds a server-originated message for a session
// (welcome and "user left" notices).
func NewSystemMessage(sessionID SessionID, body string) ChatMessage {
	return ChatMessage{
		ID:        NewID("sys"),
		SessionID: sessionID,
		UserID:    systemUserID,
		Username:  systemUsername,
		Body:      body,
		Type:      TypeSystem,
		Timestamp: NowStamp(),
	}
}

// NewPong answers a ping. Sent to the pinging participant only, never
// broadcast.
func NewPong(sessionID SessionID) ChatMessage {
	return ChatMessage{
		ID:        NewID("pong"),
		SessionID: sessionID,
		UserID:    systemUserID,
		Username:  systemUsername,
		Body:      "pong",
		Type:      TypePong,
		Timestamp: NowStamp(),
	}
}
