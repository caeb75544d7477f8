package storage

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"stream-lab/domain"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	// Reduced to 16 Mo for testing (avoid 2 Go of preallocated storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMessageRepository_Store_And_Fetch_Newest_First(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repository := NewMessageRepository(db, log)

	// Given three messages stored in order
	for i := 1; i <= 3; i++ {
		err := repository.StoreMessage(domain.Message{
			ID:        fmt.Sprintf("msg_%d", i),
			UserID:    "user-1",
			Username:  "alice",
			Body:      fmt.Sprintf("message %d", i),
			Timestamp: domain.NowStamp(),
			Status:    domain.StatusDelivered,
		})
		req.NoError(err)
		// Keys embed a nanosecond clock, keep them strictly ordered
		time.Sleep(time.Millisecond)
	}

	// When fetching recent messages
	messages, err := repository.RecentMessages(10)
	req.NoError(err)

	// Then they come back newest first with every field intact
	req.Len(messages, 3)
	req.Equal("msg_3", messages[0].ID)
	req.Equal("msg_1", messages[2].ID)
	req.Equal("alice", messages[0].Username)
	req.Equal(domain.StatusDelivered, messages[0].Status)
}

func TestMessageRepository_Fetch_Respects_Limit(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repository := NewMessageRepository(db, log)

	for i := 0; i < 10; i++ {
		req.NoError(repository.StoreMessage(domain.Message{
			ID:   fmt.Sprintf("msg_%d", i),
			Body: "payload",
		}))
		time.Sleep(time.Millisecond)
	}

	messages, err := repository.RecentMessages(4)
	req.NoError(err)
	req.Len(messages, 4)
	req.Equal("msg_9", messages[0].ID)
}

func TestMessageRepository_Empty_DB(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	repository := NewMessageRepository(db, log)

	messages, err := repository.RecentMessages(10)
	req.NoError(err)
	req.Empty(messages)
}
