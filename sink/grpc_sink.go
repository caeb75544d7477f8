package sink

import (
	"context"
	"fmt"
	"log/slog"

	"stream-lab/domain"
)

// ErrBufferFull reports a dropped delivery to a participant whose outbound
// buffer is saturated. The broadcaster logs it and moves on to the next
// member.
var ErrBufferFull = fmt.Errorf("outbound buffer full, message dropped")

// GrpcSink is the participant handle registered in the session registry for
// one LiveChat stream. The fan-out pushes into Outbound; the stream's sender
// loop drains it. Consume never blocks: a slow connection loses messages
// instead of stalling the broadcast for the rest of the session.
type GrpcSink struct {
	log      *slog.Logger
	Outbound chan domain.ChatMessage
}

func NewGrpcSink(log *slog.Logger, bufferSize int) *GrpcSink {
	return &GrpcSink{
		log:      log,
		Outbound: make(chan domain.ChatMessage, bufferSize),
	}
}

// Consume hands a message to the owning stream. Returns ErrBufferFull when
// the participant cannot keep up, or the context error if the call is gone.
func (s *GrpcSink) Consume(ctx context.Context, msg domain.ChatMessage) error {
	select {
	case s.Outbound <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrBufferFull
	}
}
