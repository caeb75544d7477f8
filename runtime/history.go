package runtime

import (
	"sync"

	"stream-lab/domain"
)

// HistoryLog is a fixed-capacity ring of the most recently accepted unary
// messages. It is shared by every concurrent SendMessage call; Record is
// O(1) and never blocks on anything but its own mutex. Read for
// diagnostics only.
type HistoryLog struct {
	mu       sync.Mutex
	capacity int
	entries  []domain.Message
	next     int
	full     bool
}

func NewHistoryLog(capacity int) *HistoryLog {
	return &HistoryLog{
		capacity: capacity,
		entries:  make([]domain.Message, capacity),
	}
}

// Record appends a message, evicting the oldest entry once the log is full.
func (h *HistoryLog) Record(msg domain.Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries[h.next] = msg
	h.next = (h.next + 1) % h.capacity
	if h.next == 0 {
		h.full = true
	}
}

// Recent returns a snapshot of the retained messages in insertion order,
// oldest first.
func (h *HistoryLog) Recent() []domain.Message {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.full {
		out := make([]domain.Message, h.next)
		copy(out, h.entries[:h.next])
		return out
	}
	out := make([]domain.Message, 0, h.capacity)
	out = append(out, h.entries[h.next:]...)
	out = append(out, h.entries[:h.next]...)
	return out
}

// Len reports how many messages are currently retained.
func (h *HistoryLog) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.full {
		return h.capacity
	}
	return h.next
}
