package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"stream-lab/domain"
)

// NotificationSender delivers one notification to the peer. A returned
// error is treated as unrecoverable and stops the flood.
type NotificationSender func(n domain.Notification) error

type INotificationService interface {
	Flood(ctx context.Context, send NotificationSender) (int, error)
}

// NotificationService produces an unbounded stream of synthetic push
// events, as fast as the transport accepts them. This is a load-generation
// facility: there is deliberately no throttling and no backpressure beyond
// the blocking send itself. Each call gets its own generator state.
type NotificationService struct {
	log *slog.Logger
}

func NewNotificationService(log *slog.Logger) *NotificationService {
	return &NotificationService{log: log}
}

var notificationTypes = []domain.NotificationType{
	domain.NotifMessage,
	domain.NotifSystem,
	domain.NotifAlert,
}

// Flood emits notifications with strictly increasing sequence numbers until
// the context is cancelled or a send fails. Cancellation is a normal end:
// the error result is nil and only a genuine write fault is returned.
// The cancellation check happens before every emission, so nothing is
// produced after termination is observed. Returns how many notifications
// were emitted.
func (s *NotificationService) Flood(ctx context.Context, send NotificationSender) (int, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	count := 0

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Notification flood stopped", "emitted", count)
			return count, nil
		default:
		}

		n := domain.Notification{
			ID:        fmt.Sprintf("notif_%d_%d", time.Now().UnixMilli(), count),
			Type:      notificationTypes[rng.Intn(len(notificationTypes))],
			Title:     fmt.Sprintf("Notification %d", count),
			Content:   fmt.Sprintf("Flood message number %d", count),
			Timestamp: domain.NowStamp(),
			Priority:  pickPriority(rng),
		}

		if err := send(n); err != nil {
			if ctx.Err() != nil {
				s.log.Info("Notification flood cancelled mid-send", "emitted", count)
				return count, nil
			}
			s.log.Error("Notification write failed, stopping flood", "emitted", count, "error", err)
			return count, err
		}
		count++
	}
}

// pickPriority is high with probability 0.3, normal otherwise.
func pickPriority(rng *rand.Rand) domain.Priority {
	if rng.Float64() < 0.3 {
		return domain.PriorityHigh
	}
	return domain.PriorityNormal
}
