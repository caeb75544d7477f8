package runtime

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"stream-lab/domain"
)

type Sink struct {
}

func (s Sink) Consume(ctx context.Context, msg domain.ChatMessage) error {
	return nil
}

func TestRegistry_Join_One_Session_One_Participant(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	participantID := uuid.NewString()
	sessionID := domain.SessionID("lobby")
	sink := Sink{}

	// Given no participant is connected
	req.Nil(registry.SinksFor(sessionID))
	req.Nil(registry.Members(sessionID))

	// When a participant joins a session
	registry.Join(participantID, sessionID, sink)

	// Then
	req.Len(registry.SinksFor(sessionID), 1)
	req.Contains(registry.SinksFor(sessionID), sink)
	req.Equal([]string{participantID}, registry.Members(sessionID))
}

func TestRegistry_Join_One_Session_Multiple_Participants(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	participantID1 := uuid.NewString()
	participantID2 := uuid.NewString()
	sessionID := domain.SessionID("lobby")
	sink1 := Sink{}
	sink2 := Sink{}

	// When participants join a session
	registry.Join(participantID1, sessionID, sink1)
	registry.Join(participantID2, sessionID, sink2)

	// Then
	req.Len(registry.SinksFor(sessionID), 2)
	req.Len(registry.Members(sessionID), 2)
	req.Contains(registry.Members(sessionID), participantID1)
	req.Contains(registry.Members(sessionID), participantID2)
}

func TestRegistry_Sessions_Are_Isolated(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	participantID1 := uuid.NewString()
	participantID2 := uuid.NewString()
	sink := Sink{}

	// Given participants in two distinct sessions
	registry.Join(participantID1, domain.SessionID("red"), sink)
	registry.Join(participantID2, domain.SessionID("blue"), sink)

	// Then each session only sees its own member
	req.Equal([]string{participantID1}, registry.Members(domain.SessionID("red")))
	req.Equal([]string{participantID2}, registry.Members(domain.SessionID("blue")))
}

func TestRegistry_Leave_One_Session_One_Participant(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	participantID := uuid.NewString()
	sessionID := domain.SessionID("lobby")
	sink := Sink{}

	// Given a participant joined a session
	registry.Join(participantID, sessionID, sink)

	// When the participant leaves
	registry.Leave(participantID, sessionID)

	// Then the session doesn't exist anymore
	req.Nil(registry.SinksFor(sessionID))
	req.Nil(registry.Members(sessionID))
}

func TestRegistry_Leave_One_Session_Multiple_Participants(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	participantID1 := uuid.NewString()
	participantID2 := uuid.NewString()
	sessionID := domain.SessionID("lobby")
	sink1 := Sink{}
	sink2 := Sink{}

	// Given two participants in the session
	registry.Join(participantID1, sessionID, sink1)
	registry.Join(participantID2, sessionID, sink2)

	// When one of them leaves
	registry.Leave(participantID1, sessionID)

	// Then only the other one remains
	req.Len(registry.SinksFor(sessionID), 1)
	req.Contains(registry.SinksFor(sessionID), sink2)
	req.Equal([]string{participantID2}, registry.Members(sessionID))
}

func TestRegistry_Leave_Unknown_Session_Is_A_NoOp(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()

	// When leaving a session nobody ever joined
	registry.Leave(uuid.NewString(), domain.SessionID("ghost"))

	// Then nothing blows up and the session still doesn't exist
	req.Nil(registry.Members(domain.SessionID("ghost")))
}

func TestRegistry_Concurrent_Join_And_Leave(t *testing.T) {
	req := require.New(t)
	registry := NewSessionRegistry()
	sessionID := domain.SessionID("lobby")

	// When 100 participants join and leave concurrently
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := uuid.NewString()
			registry.Join(id, sessionID, Sink{})
			registry.SinksFor(sessionID)
			registry.Leave(id, sessionID)
		}()
	}
	wg.Wait()

	// Then everybody is gone and the session entry too
	req.Nil(registry.Members(sessionID))
	req.Nil(registry.SinksFor(sessionID))
}
