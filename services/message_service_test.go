package services

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"stream-lab/domain"
	"stream-lab/errors"
	"stream-lab/mocks"
	"stream-lab/runtime"
)

func TestMessageService_Accept_Validation(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	baseCommand := MessageCommand{
		UserID:   "user-1",
		Username: "alice",
		Body:     "hello there",
	}

	tests := []struct {
		description string
		modify      func(c *MessageCommand)
		wantErr     bool
	}{
		{
			"Should succeed with valid data",
			func(c *MessageCommand) {},
			false,
		},
		{
			"Should fail if UserID is empty",
			func(c *MessageCommand) { c.UserID = "" },
			true,
		},
		{
			"Should fail if Username is empty",
			func(c *MessageCommand) { c.Username = "" },
			true,
		},
		{
			"Should fail if Body is empty",
			func(c *MessageCommand) { c.Body = "" },
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			repository := mocks.NewMockIMessageRepository(ctrl)
			history := runtime.NewHistoryLog(100)
			service := NewMessageService(log, history, repository)

			cmd := baseCommand
			tt.modify(&cmd)

			if !tt.wantErr {
				repository.EXPECT().StoreMessage(gomock.Any()).Return(nil).Times(1)
			}

			msg, err := service.Accept(cmd)

			if tt.wantErr {
				req.ErrorIs(err, errors.ErrInvalidRequest)
				// A rejected request never reaches the history
				req.Empty(history.Recent())
				return
			}
			req.NoError(err)
			req.Equal(domain.StatusDelivered, msg.Status)
			req.NotEmpty(msg.ID)
			req.NotEmpty(msg.Timestamp)
			req.Len(history.Recent(), 1)
		})
	}
}

func TestMessageService_Accept_Keeps_Client_Timestamp(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIMessageRepository(ctrl)
	repository.EXPECT().StoreMessage(gomock.Any()).Return(nil).Times(1)
	service := NewMessageService(log, runtime.NewHistoryLog(100), repository)

	// When the client supplies its own timestamp
	msg, err := service.Accept(MessageCommand{
		UserID:    "user-1",
		Username:  "alice",
		Body:      "hello",
		Timestamp: "2026-08-31T10:00:00Z",
	})

	// Then it is preserved as-is
	req.NoError(err)
	req.Equal("2026-08-31T10:00:00Z", msg.Timestamp)
}

func TestMessageService_Accept_Storage_Failure(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIMessageRepository(ctrl)
	repository.EXPECT().StoreMessage(gomock.Any()).Return(fmt.Errorf("disk full")).Times(1)
	history := runtime.NewHistoryLog(100)
	service := NewMessageService(log, history, repository)

	// When the repository rejects the write
	_, err := service.Accept(MessageCommand{UserID: "user-1", Username: "alice", Body: "hello"})

	// Then the error surfaces and the history stays clean
	req.ErrorIs(err, errors.ErrStorage)
	req.Empty(history.Recent())
}
