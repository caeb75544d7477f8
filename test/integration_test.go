package test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"stream-lab/domain"
	"stream-lab/infrastructure/grpc/server"
	"stream-lab/infrastructure/storage"
	pb "stream-lab/proto/chat"
	"stream-lab/runtime"
	"stream-lab/services"
)

type fixture struct {
	client     pb.StreamServiceClient
	history    *runtime.HistoryLog
	uploadRepo storage.IUploadRepository
	uploadDir  string
}

// startServer wires the whole stack onto an in-process listener.
func startServer(t *testing.T) fixture {
	t.Helper()
	req := require.New(t)

	// Reduced to 16 Mo for testing (avoid 2 Go of preallocated storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	uploadDir := filepath.Join(t.TempDir(), "uploads")

	history := runtime.NewHistoryLog(100)
	registry := runtime.NewSessionRegistry()
	messageRepository := storage.NewMessageRepository(db, log)
	uploadRepository := storage.NewUploadRepository(db, log, uploadDir)

	streamServer := server.NewStreamServer(
		log,
		services.NewMessageService(log, history, messageRepository),
		services.NewNotificationService(log),
		services.NewChatService(log, registry),
		func() *services.UploadAssembler {
			return services.NewUploadAssembler(log, uploadRepository)
		},
		64,
	)

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	pb.RegisterStreamServiceServer(s, streamServer)
	go func() {
		_ = s.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	req.NoError(err)

	t.Cleanup(func() {
		conn.Close()
		s.Stop()
		db.Close()
	})

	return fixture{
		client:     pb.NewStreamServiceClient(conn),
		history:    history,
		uploadRepo: uploadRepository,
		uploadDir:  uploadDir,
	}
}

func Test_SendMessage_Accepted_And_Recorded(t *testing.T) {
	req := require.New(t)
	f := startServer(t)
	ctx := context.Background()

	// When sending a valid message
	resp, err := f.client.SendMessage(ctx, &pb.MessageRequest{
		UserId:   uuid.NewString(),
		Username: "alice",
		Message:  "hello over the wire",
	})

	// Then it is acknowledged and lands in the history
	req.NoError(err)
	req.Equal("delivered", resp.GetStatus())
	req.NotEmpty(resp.GetMessageId())
	req.NotEmpty(resp.GetTimestamp())

	recent := f.history.Recent()
	req.Len(recent, 1)
	req.Equal("hello over the wire", recent[0].Body)
}

func Test_SendMessage_Missing_Fields_Rejected(t *testing.T) {
	req := require.New(t)
	f := startServer(t)

	// When sending without a username
	_, err := f.client.SendMessage(context.Background(), &pb.MessageRequest{
		UserId:  uuid.NewString(),
		Message: "anonymous",
	})

	// Then the call fails with InvalidArgument and nothing is recorded
	req.Equal(codes.InvalidArgument, status.Code(err))
	req.Empty(f.history.Recent())
}

func Test_GetNotifications_Floods_Until_Cancelled(t *testing.T) {
	req := require.New(t)
	f := startServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := f.client.GetNotifications(ctx, &pb.NotificationRequest{UserId: uuid.NewString()})
	req.NoError(err)

	// When draining 25 notifications then hanging up
	for i := 0; i < 25; i++ {
		n, err := stream.Recv()
		req.NoError(err)
		req.NotEmpty(n.GetNotificationId())
		req.Contains([]string{"message", "system", "alert"}, n.GetType())
		req.Contains([]string{"normal", "high"}, n.GetPriority())
	}
	cancel()

	// Then the stream terminates with Canceled
	for {
		if _, err = stream.Recv(); err != nil {
			break
		}
	}
	req.Equal(codes.Canceled, status.Code(err))
}

func Test_UploadFile_Assembles_And_Persists(t *testing.T) {
	req := require.New(t)
	f := startServer(t)

	stream, err := f.client.UploadFile(context.Background())
	req.NoError(err)

	// When streaming three chunks
	req.NoError(stream.Send(&pb.FileChunk{ChunkData: []byte("ab"), Filename: "notes.txt"}))
	req.NoError(stream.Send(&pb.FileChunk{ChunkData: []byte("cd")}))
	req.NoError(stream.Send(&pb.FileChunk{ChunkData: []byte("ef")}))

	resp, err := stream.CloseAndRecv()
	req.NoError(err)

	// Then the summary matches the payload
	req.Equal("success", resp.GetStatus())
	req.Equal(int64(6), resp.GetSize())
	req.Equal("notes.txt", resp.GetFilename())
	req.NotEmpty(resp.GetFileId())

	// And the record is durable
	record, err := f.uploadRepo.GetRecord(resp.GetFileId())
	req.NoError(err)
	req.Equal(int64(6), record.Size)
	req.Equal(domain.UploadStatusSuccess, record.Status)
}

func Test_LiveChat_Welcome_Broadcast_And_Departure(t *testing.T) {
	req := require.New(t)
	f := startServer(t)
	ctx := context.Background()

	recv := func(stream grpc.BidiStreamingClient[pb.ChatMessage, pb.ChatMessage]) *pb.ChatMessage {
		t.Helper()
		msg, err := stream.Recv()
		req.NoError(err)
		return msg
	}

	// Given alice in the lobby
	alice, err := f.client.LiveChat(ctx)
	req.NoError(err)
	req.NoError(alice.Send(&pb.ChatMessage{SessionId: "lobby", UserId: "u1", Username: "alice"}))
	req.Equal("Welcome alice! You've joined the chat.", recv(alice).GetMessage())

	// And bob joining after her
	bob, err := f.client.LiveChat(ctx)
	req.NoError(err)
	req.NoError(bob.Send(&pb.ChatMessage{SessionId: "lobby", UserId: "u2", Username: "bob"}))
	req.Equal("Welcome bob! You've joined the chat.", recv(bob).GetMessage())

	// When alice speaks
	req.NoError(alice.Send(&pb.ChatMessage{SessionId: "lobby", Message: "hi bob"}))

	// Then both of them receive the broadcast
	fromAlice := recv(bob)
	req.Equal("hi bob", fromAlice.GetMessage())
	req.Equal("alice", fromAlice.GetUsername())
	req.Equal("text", fromAlice.GetMessageType())
	req.Equal("hi bob", recv(alice).GetMessage())

	// When bob pings
	req.NoError(bob.Send(&pb.ChatMessage{SessionId: "lobby", MessageType: "ping"}))
	pong := recv(bob)
	req.Equal("pong", pong.GetMessage())
	req.Equal("pong", pong.GetMessageType())

	// When bob hangs up
	req.NoError(bob.CloseSend())
	for {
		if _, err = bob.Recv(); err != nil {
			break
		}
	}
	req.True(errors.Is(err, io.EOF))

	// Then alice is told he left
	departure := recv(alice)
	req.Equal("bob has left the chat", departure.GetMessage())
	req.Equal("system", departure.GetMessageType())

	req.NoError(alice.CloseSend())
	deadline := time.After(2 * time.Second)
	done := make(chan struct{})
	go func() {
		for {
			if _, err := alice.Recv(); err != nil {
				close(done)
				return
			}
		}
	}()
	select {
	case <-done:
	case <-deadline:
		req.Fail("alice's stream never terminated after close")
	}
}
