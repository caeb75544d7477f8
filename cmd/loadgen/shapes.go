package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "stream-lab/proto/chat"
)

// runShape dials once, fans out the configured number of concurrent
// requests over the shared connection and blocks until the report is
// printed.
func runShape(opts *options, shape string, one func(ctx context.Context, client pb.StreamServiceClient) reqStat) error {
	conn, err := grpc.NewClient(opts.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("could not connect to %s: %w", opts.addr, err)
	}
	defer conn.Close()

	client := pb.NewStreamServiceClient(conn)
	stats := make(chan reqStat, opts.requests)
	start := time.Now()

	for i := 0; i < opts.requests; i++ {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
			defer cancel()
			stats <- one(ctx, client)
		}()
	}

	collect(shape, opts.requests, stats, func() time.Duration { return time.Since(start) })
	return nil
}

func newUnaryCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "unary",
		Short: "Flood SendMessage (unary)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShape(opts, "SendMessage", func(ctx context.Context, client pb.StreamServiceClient) reqStat {
				before := time.Now()
				_, err := client.SendMessage(ctx, &pb.MessageRequest{
					UserId:   uuid.NewString(),
					Username: fmt.Sprintf("loadgen-%d", rand.Intn(1000)),
					Message:  "hello from loadgen",
				})
				return reqStat{latency: time.Since(before), successful: err == nil}
			})
		},
	}
}

func newNotifyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "notify",
		Short: "Drain GetNotifications (server streaming) until the deadline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShape(opts, "GetNotifications", func(ctx context.Context, client pb.StreamServiceClient) reqStat {
				before := time.Now()
				stream, err := client.GetNotifications(ctx, &pb.NotificationRequest{UserId: uuid.NewString()})
				if err != nil {
					return reqStat{latency: time.Since(before)}
				}
				events := 0
				for {
					if _, err := stream.Recv(); err != nil {
						// The deadline ending the flood is the expected outcome.
						ok := errors.Is(err, io.EOF) || status.Code(err) == codes.DeadlineExceeded
						return reqStat{latency: time.Since(before), successful: ok, events: events}
					}
					events++
				}
			})
		},
	}
}

func newUploadCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Flood UploadFile (client streaming) with generated payloads",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := make([]byte, opts.fileSize)
			rand.Read(payload)

			return runShape(opts, "UploadFile", func(ctx context.Context, client pb.StreamServiceClient) reqStat {
				before := time.Now()
				stream, err := client.UploadFile(ctx)
				if err != nil {
					return reqStat{latency: time.Since(before)}
				}
				const chunkSize = 1024
				for off := 0; off < len(payload); off += chunkSize {
					end := off + chunkSize
					if end > len(payload) {
						end = len(payload)
					}
					chunk := &pb.FileChunk{ChunkData: payload[off:end]}
					if off == 0 {
						chunk.Filename = "demo.bin"
					}
					if err := stream.Send(chunk); err != nil {
						return reqStat{latency: time.Since(before)}
					}
				}
				resp, err := stream.CloseAndRecv()
				ok := err == nil && resp.GetSize() == int64(len(payload))
				return reqStat{latency: time.Since(before), successful: ok}
			})
		},
	}
	cmd.Flags().IntVar(&opts.fileSize, "file-size", 64*1024, "payload size in bytes")
	return cmd
}

func newChatCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Flood LiveChat (bidirectional streaming) sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShape(opts, "LiveChat", func(ctx context.Context, client pb.StreamServiceClient) reqStat {
				before := time.Now()
				stream, err := client.LiveChat(ctx)
				if err != nil {
					return reqStat{latency: time.Since(before)}
				}
				userID := uuid.NewString()
				for i := 0; i < 3; i++ {
					err := stream.Send(&pb.ChatMessage{
						SessionId: opts.session,
						UserId:    userID,
						Username:  "loadgen-" + userID[:8],
						Message:   fmt.Sprintf("load message %d", i),
					})
					if err != nil {
						return reqStat{latency: time.Since(before)}
					}
				}
				if err := stream.CloseSend(); err != nil {
					return reqStat{latency: time.Since(before)}
				}
				events := 0
				for {
					if _, err := stream.Recv(); err != nil {
						ok := errors.Is(err, io.EOF)
						return reqStat{latency: time.Since(before), successful: ok, events: events}
					}
					events++
				}
			})
		},
	}
	cmd.Flags().StringVar(&opts.session, "session", "loadgen", "chat session to join")
	return cmd
}
