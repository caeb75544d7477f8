package services

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"stream-lab/contract"
	"stream-lab/domain"
	"stream-lab/errors"
	"stream-lab/infrastructure/storage"
)

var validate = validator.New()

// MessageCommand carries an incoming unary message before acceptance.
type MessageCommand struct {
	UserID    string `validate:"required"`
	Username  string `validate:"required"`
	Body      string `validate:"required"`
	Timestamp string
}

type IMessageService interface {
	Accept(cmd MessageCommand) (domain.Message, error)
}

// MessageService handles the unary call shape: validate, assign identity,
// record in the bounded history and persist the delivered message.
type MessageService struct {
	log        *slog.Logger
	history    contract.IHistoryLog
	repository storage.IMessageRepository
}

func NewMessageService(log *slog.Logger, history contract.IHistoryLog,
	repository storage.IMessageRepository) *MessageService {
	return &MessageService{log: log, history: history, repository: repository}
}

// Accept validates the command and turns it into a delivered Message.
// A request missing user_id, username or body is rejected before any side
// effect; a failed request never shows up in the history.
func (s *MessageService) Accept(cmd MessageCommand) (domain.Message, error) {
	if err := validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}

	msg := domain.Message{
		ID:        domain.NewID("msg"),
		UserID:    cmd.UserID,
		Username:  cmd.Username,
		Body:      cmd.Body,
		Timestamp: cmd.Timestamp,
		Status:    domain.StatusDelivered,
	}
	if msg.Timestamp == "" {
		msg.Timestamp = domain.NowStamp()
	}

	if err := s.repository.StoreMessage(msg); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	s.history.Record(msg)

	s.log.Info("Message accepted", "message_id", msg.ID, "username", msg.Username)
	return msg, nil
}
