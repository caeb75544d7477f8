package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"stream-lab/domain"
	"stream-lab/runtime"
)

// recordingSink captures everything routed to one participant.
type recordingSink struct {
	messages []domain.ChatMessage
}

func (s *recordingSink) Consume(ctx context.Context, msg domain.ChatMessage) error {
	s.messages = append(s.messages, msg)
	return nil
}

func TestChatService_Join_Delivers_Welcome_To_Joiner_Only(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewSessionRegistry()
	service := NewChatService(log, registry)
	sessionID := domain.SessionID("lobby")

	// Given alice is already in the session
	alice := &recordingSink{}
	service.Join(ctx, uuid.NewString(), sessionID, "alice", alice)

	// When bob joins
	bob := &recordingSink{}
	service.Join(ctx, uuid.NewString(), sessionID, "bob", bob)

	// Then bob gets his welcome and alice hears nothing about it
	req.Len(bob.messages, 1)
	req.Equal(domain.TypeSystem, bob.messages[0].Type)
	req.Equal("Welcome bob! You've joined the chat.", bob.messages[0].Body)
	req.Len(alice.messages, 1) // only her own welcome
}

func TestChatService_Route_Broadcasts_To_All_Members(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewSessionRegistry()
	service := NewChatService(log, registry)
	sessionID := domain.SessionID("lobby")

	alice := &recordingSink{}
	bob := &recordingSink{}
	aliceID := uuid.NewString()
	service.Join(ctx, aliceID, sessionID, "alice", alice)
	service.Join(ctx, uuid.NewString(), sessionID, "bob", bob)

	// When alice sends a message
	service.Route(ctx, domain.ChatMessage{
		SessionID: sessionID,
		UserID:    aliceID,
		Username:  "alice",
		Body:      "hello everyone",
	}, alice)

	// Then alice and bob both receive it, welcomes aside
	req.Len(alice.messages, 2)
	req.Len(bob.messages, 2)
	delivered := bob.messages[1]
	req.Equal("hello everyone", delivered.Body)
	req.Equal("alice", delivered.Username)
	req.Equal(domain.TypeText, delivered.Type)
	req.NotEmpty(delivered.ID)
	req.NotEmpty(delivered.Timestamp)
}

func TestChatService_Route_Ping_Answers_Sender_Only(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewSessionRegistry()
	service := NewChatService(log, registry)
	sessionID := domain.SessionID("lobby")

	alice := &recordingSink{}
	bob := &recordingSink{}
	service.Join(ctx, uuid.NewString(), sessionID, "alice", alice)
	service.Join(ctx, uuid.NewString(), sessionID, "bob", bob)

	// When alice pings
	service.Route(ctx, domain.ChatMessage{
		SessionID: sessionID,
		Username:  "alice",
		Type:      domain.TypePing,
	}, alice)

	// Then only alice gets the pong
	req.Len(alice.messages, 2)
	req.Equal(domain.TypePong, alice.messages[1].Type)
	req.Equal("pong", alice.messages[1].Body)
	req.Len(bob.messages, 1)
}

func TestChatService_Route_Empty_Body_Is_Dropped(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewSessionRegistry()
	service := NewChatService(log, registry)
	sessionID := domain.SessionID("lobby")

	alice := &recordingSink{}
	service.Join(ctx, uuid.NewString(), sessionID, "alice", alice)

	// When a bodiless non-ping message arrives
	service.Route(ctx, domain.ChatMessage{SessionID: sessionID, Username: "alice"}, alice)

	// Then nothing is broadcast
	req.Len(alice.messages, 1)
}

func TestChatService_Leave_Notifies_Remaining_Members(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewSessionRegistry()
	service := NewChatService(log, registry)
	sessionID := domain.SessionID("lobby")

	alice := &recordingSink{}
	bob := &recordingSink{}
	aliceID := uuid.NewString()
	service.Join(ctx, aliceID, sessionID, "alice", alice)
	service.Join(ctx, uuid.NewString(), sessionID, "bob", bob)

	// When alice leaves
	service.Leave(ctx, aliceID, sessionID, "alice")

	// Then bob is told and alice gets nothing further
	req.Len(bob.messages, 2)
	req.Equal("alice has left the chat", bob.messages[1].Body)
	req.Equal(domain.TypeSystem, bob.messages[1].Type)
	req.Len(alice.messages, 1)
}

func TestChatService_Last_Leave_Is_Silent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewSessionRegistry()
	service := NewChatService(log, registry)
	sessionID := domain.SessionID("lobby")

	alice := &recordingSink{}
	aliceID := uuid.NewString()
	service.Join(ctx, aliceID, sessionID, "alice", alice)

	// When the last member leaves
	service.Leave(ctx, aliceID, sessionID, "alice")

	// Then the session is gone and no departure notice is produced
	req.Nil(registry.Members(sessionID))
	req.Len(alice.messages, 1)
}
