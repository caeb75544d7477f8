//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"stream-lab/contract"
	"stream-lab/domain"
)

type IChatService interface {
	Join(ctx context.Context, participantID string, sessionID domain.SessionID, username string, sink contract.EventSink)
	Route(ctx context.Context, msg domain.ChatMessage, sender contract.EventSink)
	Leave(ctx context.Context, participantID string, sessionID domain.SessionID, username string)
}

// ChatService is the router behind the LiveChat duplex stream. It mutates
// the shared session registry and fans broadcasts out to every member of a
// session. Delivery to a participant is a write to that participant's own
// sink and always happens on a snapshot, outside the registry lock.
type ChatService struct {
	log      *slog.Logger
	registry contract.ISessionRegistry
}

func NewChatService(log *slog.Logger, registry contract.ISessionRegistry) *ChatService {
	return &ChatService{log: log, registry: registry}
}

// Join registers the participant and delivers the welcome notice to this
// connection only.
func (s *ChatService) Join(ctx context.Context, participantID string, sessionID domain.SessionID,
	username string, sink contract.EventSink) {
	s.registry.Join(participantID, sessionID, sink)
	s.log.Info("User joined session", "username", username, "session_id", sessionID)

	welcome := domain.NewSystemMessage(sessionID,
		fmt.Sprintf("Welcome %s! You've joined the chat.", username))
	if err := sink.Consume(ctx, welcome); err != nil {
		s.log.Warn("Failed to deliver welcome message", "participant_id", participantID, "error", err)
	}
}

// Route processes one inbound message from a bound participant. A ping is
// answered with a pong to the sender only. Anything with a body becomes a
// broadcast to all members of the session, the sender included.
func (s *ChatService) Route(ctx context.Context, msg domain.ChatMessage, sender contract.EventSink) {
	if msg.Type == domain.TypePing {
		if err := sender.Consume(ctx, domain.NewPong(msg.SessionID)); err != nil {
			s.log.Warn("Failed to deliver pong", "session_id", msg.SessionID, "error", err)
		}
		return
	}

	if msg.Body == "" {
		return
	}

	outbound := domain.ChatMessage{
		ID:        domain.NewID("msg"),
		SessionID: msg.SessionID,
		UserID:    msg.UserID,
		Username:  msg.Username,
		Body:      msg.Body,
		Type:      msg.Type,
		Timestamp: domain.NowStamp(),
	}
	if outbound.Type == "" {
		outbound.Type = domain.TypeText
	}

	s.log.Debug("Broadcasting message", "username", msg.Username, "session_id", msg.SessionID)
	s.broadcast(ctx, outbound)
}

// Leave removes the participant and, when the session still has members,
// notifies them that the user is gone. Leaving a session that no longer
// exists is a no-op: cleanup races with the transport are expected.
func (s *ChatService) Leave(ctx context.Context, participantID string, sessionID domain.SessionID, username string) {
	s.registry.Leave(participantID, sessionID)
	s.log.Info("User left session", "username", username, "session_id", sessionID)

	if len(s.registry.Members(sessionID)) == 0 {
		return
	}
	s.broadcast(ctx, domain.NewSystemMessage(sessionID,
		fmt.Sprintf("%s has left the chat", username)))
}

// broadcast fans one message out to a point-in-time snapshot of the
// session's sinks. A failed write to one participant is logged and skipped,
// never aborts delivery to the rest.
func (s *ChatService) broadcast(ctx context.Context, msg domain.ChatMessage) {
	for _, sink := range s.registry.SinksFor(msg.SessionID) {
		if err := sink.Consume(ctx, msg); err != nil {
			s.log.Warn("Broadcast delivery failed, skipping participant",
				"session_id", msg.SessionID, "error", err)
		}
	}
}
