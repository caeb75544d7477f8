package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	sdkgrpc "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"

	"stream-lab/infrastructure/grpc/server"
	"stream-lab/infrastructure/storage"
	"stream-lab/internal"
	pb "stream-lab/proto/chat"
	"stream-lab/runtime"
	"stream-lab/services"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the server lifecycle, and centralizes
// error reporting. Keeping the logic out of main ensures deferred cleanup
// (database close, listener shutdown) always executes and keeps the wiring
// testable.
func run() (int, error) {
	// 1. Configuration & Logger
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLogger(nil))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Shared state & services
	history := runtime.NewHistoryLog(config.HistoryCapacity)
	registry := runtime.NewSessionRegistry()
	messageRepository := storage.NewMessageRepository(db, logger)
	uploadRepository := storage.NewUploadRepository(db, logger, config.UploadDir)

	messageService := services.NewMessageService(logger, history, messageRepository)
	notificationService := services.NewNotificationService(logger)
	chatService := services.NewChatService(logger, registry)
	newAssembler := func() *services.UploadAssembler {
		return services.NewUploadAssembler(logger, uploadRepository)
	}

	streamServer := server.NewStreamServer(logger, messageService, notificationService,
		chatService, newAssembler, config.ConnectionBufferSize)

	// 4. Context & Signals
	// NotifyContext captures OS signals and cancels the context to trigger a shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. gRPC Server Setup
	// Message-size and keepalive options mirror the transport limits the
	// clients are tuned for: a single chunk or chat message can never
	// exceed MaxMessageSize, and idle streams stay alive indefinitely.
	address := fmt.Sprintf("0.0.0.0:%d", config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := grpc.NewServer(
		grpc.MaxRecvMsgSize(config.MaxMessageSize),
		grpc.MaxSendMsgSize(config.MaxMessageSize),
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    config.KeepaliveTime,
			Timeout: config.KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             config.KeepaliveMinInterval,
			PermitWithoutStream: true,
		}),
		grpc.ChainUnaryInterceptor(
			sdkgrpc.UnaryLoggingInterceptor(logger),
		),
	)
	pb.RegisterStreamServiceServer(s, streamServer)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Info("📡 gRPC exposed service", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Graceful drain: new calls are rejected and in-flight calls may
	// finish. The duplex chat and the notification flood run until
	// cancelled, so a drain deadline forces the remaining streams down.
	logger.Info("Shutting down gracefully...")
	drained := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(10 * time.Second):
		logger.Warn("Drain deadline exceeded, cancelling remaining streams")
		s.Stop()
	}
	logger.Info("Server stopped cleanly")

	return exitOK, nil
}
