// Package domain contains the core concepts of the streaming lab.
// No transport, storage or UI logic should be added here.
package domain

import (
	"fmt"
	"math/rand"
	"time"
)

const StatusDelivered = "delivered"

// Message is an accepted unary message. Immutable once recorded.
type Message struct {
	ID        string
	UserID    string
	Username  string
	Body      string
	Timestamp string
	Status    string
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID builds a best-effort unique identifier from a millisecond timestamp
// and a random base36 suffix. Collisions are possible under high concurrency,
// which is acceptable for wire-visible ids. Registry keys use uuid instead.
func NewID(prefix string) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}

// NowStamp returns the current UTC time in the wire format used by every
// timestamp field of the service.
func NowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
