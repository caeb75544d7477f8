//go:generate go run go.uber.org/mock/mockgen -source=message_repository.go -destination=../../mocks/mock_message_repository.go -package=mocks
package storage

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"

	"stream-lab/domain"
	pb "stream-lab/proto/storage"
)

type IMessageRepository interface {
	StoreMessage(msg domain.Message) error
	RecentMessages(limit int) ([]domain.Message, error)
}

// MessageRepository persists delivered unary messages in BadgerDB. Values
// are proto-marshalled; keys embed a nanosecond timestamp so a reverse
// iteration yields newest first.
type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log}
}

const messagePrefix = "message:"

func (r *MessageRepository) StoreMessage(msg domain.Message) error {
	key := fmt.Sprintf("%s%020d:%s", messagePrefix, time.Now().UnixNano(), msg.ID)

	data, err := proto.Marshal(toPbStoredMessage(msg))
	if err != nil {
		return fmt.Errorf("failed to marshal message %s: %w", msg.ID, err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// RecentMessages returns up to limit messages, newest first.
func (r *MessageRepository) RecentMessages(limit int) ([]domain.Message, error) {
	var messages []domain.Message
	prefix := []byte(messagePrefix)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.PrefetchSize = limit

		it := txn.NewIterator(opts)
		defer it.Close()

		// Reverse iteration needs a seek key past the whole prefix range.
		seek := append([]byte{}, prefix...)
		seek = append(seek, 0xFF)

		for it.Seek(seek); it.ValidForPrefix(prefix) && len(messages) < limit; it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var stored pb.StoredMessage
				if err := proto.Unmarshal(v, &stored); err != nil {
					return fmt.Errorf("failed to unmarshal message: %w", err)
				}
				messages = append(messages, fromPbStoredMessage(&stored))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during message fetch: %w", err)
	}
	return messages, nil
}

func toPbStoredMessage(msg domain.Message) *pb.StoredMessage {
	return &pb.StoredMessage{
		Id:        msg.ID,
		UserId:    msg.UserID,
		Username:  msg.Username,
		Body:      msg.Body,
		Timestamp: msg.Timestamp,
		Status:    msg.Status,
	}
}

func fromPbStoredMessage(p *pb.StoredMessage) domain.Message {
	return domain.Message{
		ID:        p.Id,
		UserID:    p.UserId,
		Username:  p.Username,
		Body:      p.Body,
		Timestamp: p.Timestamp,
		Status:    p.Status,
	}
}
