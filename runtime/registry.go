package runtime

import (
	"sync"

	"github.com/samber/lo"

	"stream-lab/contract"
	"stream-lab/domain"
)

// SessionRegistry is the process-wide map from session to its connected
// participants. It is shared by every concurrent LiveChat call and is the
// locus of concurrent mutation in the system.
//
// A session exists iff it has at least one participant: Join creates the
// entry on demand and Leave deletes it together with the removal of the
// last member, under the same lock acquisition. Callers never observe an
// empty-but-present session.
//
// The registry only hands out snapshots. Writes to participant sinks happen
// outside the lock, so a slow or blocked connection can never stall Join or
// Leave for everyone else.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]map[string]contract.EventSink
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[domain.SessionID]map[string]contract.EventSink),
	}
}

// Join registers a participant's sink under a session, initializing the
// session entry if needed. Joining twice with the same participant id just
// refreshes the sink.
func (r *SessionRegistry) Join(participantID string, sessionID domain.SessionID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.sessions[sessionID]
	if !ok {
		members = make(map[string]contract.EventSink)
		r.sessions[sessionID] = members
	}
	members[participantID] = sink
}

// Leave removes a participant from a session. If nobody is left the session
// entry is removed in the same critical section. Unknown sessions and
// unknown participants are no-ops: cleanup races with the transport are
// expected, not faults.
func (r *SessionRegistry) Leave(participantID string, sessionID domain.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.sessions[sessionID]
	if !ok {
		return
	}
	delete(members, participantID)
	if len(members) == 0 {
		delete(r.sessions, sessionID)
	}
}

// SinksFor returns a point-in-time copy of the session's sinks. Joins that
// race with a broadcast iterating this snapshot may miss it; leaves never
// fail it. Returns nil for an unknown session.
func (r *SessionRegistry) SinksFor(sessionID domain.SessionID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.sessions[sessionID]
	if !ok {
		return nil
	}
	return lo.Values(members)
}

// Members returns a snapshot of the participant ids of a session.
func (r *SessionRegistry) Members(sessionID domain.SessionID) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.sessions[sessionID]
	if !ok {
		return nil
	}
	return lo.Keys(members)
}
