package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "stream-lab/proto/chat"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"CHAT_SERVER_ADDR,default=localhost:50051"`
	SessionID     string `env:"CHAT_SESSION_ID,default=lobby"`
	Username      string `env:"CHAT_USERNAME,default=guest"`
	LogLevel      string `env:"LOG_LEVEL,default=INFO"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run joins a chat session, prints everything the session broadcasts and
// sends each line typed on stdin.
func run() (int, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	client := pb.NewStreamServiceClient(conn)
	stream, err := client.LiveChat(ctx)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open stream: %w", err)
	}

	userID := uuid.NewString()

	// The first message binds this connection to the session; an empty body
	// joins without broadcasting anything.
	if err := stream.Send(&pb.ChatMessage{
		SessionId: config.SessionID,
		UserId:    userID,
		Username:  config.Username,
	}); err != nil {
		return exitRuntime, fmt.Errorf("failed to join session: %w", err)
	}

	log.Info(fmt.Sprintf(">>> Connected to %s! Session %q as %q (Ctrl+C to quit)...",
		config.ServerAddress, config.SessionID, config.Username))

	// Reception loop, decoupled from stdin.
	recvDone := make(chan error, 1)
	go func() {
		for {
			msg, err := stream.Recv()
			if err != nil {
				recvDone <- err
				return
			}
			fmt.Printf("[%s] %s: %s\n", msg.GetTimestamp(), msg.GetUsername(), msg.GetMessage())
		}
	}()

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			_ = stream.CloseSend()
			return exitOK, nil
		case err := <-recvDone:
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("stream error: %w", err)
		case line, ok := <-lines:
			if !ok {
				_ = stream.CloseSend()
				return exitOK, nil
			}
			if line == "" {
				continue
			}
			if err := stream.Send(&pb.ChatMessage{
				SessionId: config.SessionID,
				UserId:    userID,
				Username:  config.Username,
				Message:   line,
			}); err != nil {
				return exitRuntime, fmt.Errorf("failed to send message: %w", err)
			}
		}
	}
}
