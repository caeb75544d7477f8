//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"stream-lab/domain"
)

// EventSink is a participant handle: a non-owning reference to an open
// duplex connection, used by the fan-out to route outbound messages.
// The transport layer owns the connection lifetime; a write to a handle
// whose connection is gone is a normal failure, never a fatal fault.
type EventSink interface {
	Consume(ctx context.Context, msg domain.ChatMessage) error
}

// ISessionRegistry is the process-wide mapping from session to the set of
// connected participants. All operations on a given session are linearizable
// with respect to each other.
type ISessionRegistry interface {
	// Join adds a participant to a session, creating the session entry if
	// absent. Idempotent for the same participant and session.
	Join(participantID string, sessionID domain.SessionID, sink EventSink)
	// Leave removes a participant. The last participant leaving deletes the
	// session entry atomically; leaving an unknown session is a no-op.
	Leave(participantID string, sessionID domain.SessionID)
	// SinksFor returns a point-in-time snapshot of the session's sinks,
	// safe to iterate without holding any registry lock.
	SinksFor(sessionID domain.SessionID) []EventSink
	// Members returns a snapshot of the participant ids of a session.
	Members(sessionID domain.SessionID) []string
}

// IHistoryLog keeps the most recent accepted unary messages.
type IHistoryLog interface {
	Record(msg domain.Message)
	Recent() []domain.Message
}
