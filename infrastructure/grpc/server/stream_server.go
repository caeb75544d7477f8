package server

import (
	"context"
	goerrors "errors"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"stream-lab/domain"
	"stream-lab/errors"
	pb "stream-lab/proto/chat"
	"stream-lab/services"
	"stream-lab/sink"
)

// StreamServer binds the four call shapes of chat.StreamService to the
// core services. It is thin glue: validation, routing and state live in
// the services; this layer only maps pb messages and drives the streams.
type StreamServer struct {
	pb.UnimplementedStreamServiceServer
	log                  *slog.Logger
	messageService       services.IMessageService
	notificationService  services.INotificationService
	chatService          services.IChatService
	newUploadAssembler   func() *services.UploadAssembler
	connectionBufferSize int
}

func NewStreamServer(
	log *slog.Logger,
	messageService services.IMessageService,
	notificationService services.INotificationService,
	chatService services.IChatService,
	newUploadAssembler func() *services.UploadAssembler,
	connectionBufferSize int,
) *StreamServer {
	return &StreamServer{
		log:                  log,
		messageService:       messageService,
		notificationService:  notificationService,
		chatService:          chatService,
		newUploadAssembler:   newUploadAssembler,
		connectionBufferSize: connectionBufferSize,
	}
}

// SendMessage is the unary shape: one request in, one acknowledgement out.
func (s *StreamServer) SendMessage(_ context.Context, req *pb.MessageRequest) (*pb.MessageResponse, error) {
	msg, err := s.messageService.Accept(services.MessageCommand{
		UserID:    req.GetUserId(),
		Username:  req.GetUsername(),
		Body:      req.GetMessage(),
		Timestamp: req.GetTimestamp(),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.MessageResponse{
		MessageId: msg.ID,
		Status:    msg.Status,
		Timestamp: msg.Timestamp,
	}, nil
}

// GetNotifications streams the unbounded notification flood until the
// client cancels or a write fails.
func (s *StreamServer) GetNotifications(req *pb.NotificationRequest, stream grpc.ServerStreamingServer[pb.Notification]) error {
	s.log.Info("Notification flood started", "user_id", req.GetUserId())

	_, err := s.notificationService.Flood(stream.Context(), func(n domain.Notification) error {
		return stream.Send(toPbNotification(n))
	})
	return err
}

// UploadFile consumes the client stream chunk by chunk and answers with
// one upload summary once the client closes its side.
func (s *StreamServer) UploadFile(stream grpc.ClientStreamingServer[pb.FileChunk, pb.UploadStatus]) error {
	s.log.Info("File upload started")
	assembler := s.newUploadAssembler()

	for {
		chunk, err := stream.Recv()
		if goerrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		assembler.Append(chunk.GetChunkData(), chunk.GetFilename())
	}

	artifact, err := assembler.Finalize()
	if err != nil {
		return errors.MapToGRPCError(err)
	}
	return stream.SendAndClose(toPbUploadStatus(artifact))
}

// LiveChat drives one duplex chat connection. Receiving and sending are
// decoupled into two loops so a slow reader never blocks inbound routing:
// the receive loop feeds the chat service, the send loop drains this
// participant's sink.
func (s *StreamServer) LiveChat(stream grpc.BidiStreamingServer[pb.ChatMessage, pb.ChatMessage]) error {
	ctx := stream.Context()
	participantID := uuid.NewString()
	out := sink.NewGrpcSink(s.log, s.connectionBufferSize)
	s.log.Info("New chat connection established", "participant_id", participantID)

	recvDone := make(chan error, 1)
	go func() {
		recvDone <- s.receiveLoop(ctx, stream, participantID, out)
	}()

	for {
		select {
		case <-ctx.Done():
			s.log.Warn("Chat client disconnected", "participant_id", participantID)
			return nil
		case err := <-recvDone:
			// Flush what the fan-out already queued for this participant
			// before closing the call.
			for {
				select {
				case msg := <-out.Outbound:
					if sendErr := stream.Send(toPbChatMessage(msg)); sendErr != nil {
						return sendErr
					}
				default:
					if err != nil && ctx.Err() == nil {
						return err
					}
					return nil
				}
			}
		case msg := <-out.Outbound:
			if err := stream.Send(toPbChatMessage(msg)); err != nil {
				s.log.Error("Failed to push chat message to stream",
					"participant_id", participantID, "error", err)
				return err
			}
		}
	}
}

// receiveLoop processes inbound chat messages in arrival order. The first
// message binds the call to a session and user; later messages keep the
// bound identity even if they resend those fields. The deferred leave runs
// on every exit path, cancellation included, and uses a detached context
// so remaining members still get the departure notice.
func (s *StreamServer) receiveLoop(ctx context.Context, stream grpc.BidiStreamingServer[pb.ChatMessage, pb.ChatMessage],
	participantID string, out *sink.GrpcSink) error {
	var (
		bound     bool
		sessionID domain.SessionID
		userID    string
		username  string
	)
	defer func() {
		if bound {
			s.chatService.Leave(context.WithoutCancel(ctx), participantID, sessionID, username)
		}
	}()

	for {
		req, err := stream.Recv()
		if goerrors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if !bound {
			sessionID = domain.SessionID(req.GetSessionId())
			userID = req.GetUserId()
			username = req.GetUsername()
			s.chatService.Join(ctx, participantID, sessionID, username, out)
			bound = true
		}

		s.chatService.Route(ctx, domain.ChatMessage{
			SessionID: sessionID,
			UserID:    userID,
			Username:  username,
			Body:      req.GetMessage(),
			Type:      domain.MessageType(req.GetMessageType()),
		}, out)
	}
}

func toPbNotification(n domain.Notification) *pb.Notification {
	return &pb.Notification{
		NotificationId: n.ID,
		Type:           string(n.Type),
		Title:          n.Title,
		Content:        n.Content,
		Timestamp:      n.Timestamp,
		Priority:       string(n.Priority),
	}
}

func toPbUploadStatus(artifact domain.UploadArtifact) *pb.UploadStatus {
	return &pb.UploadStatus{
		FileId:     artifact.FileID,
		Filename:   artifact.Filename,
		Size:       artifact.Size,
		Status:     artifact.Status,
		Message:    artifact.Message,
		UploadTime: artifact.UploadedAt,
	}
}

func toPbChatMessage(msg domain.ChatMessage) *pb.ChatMessage {
	return &pb.ChatMessage{
		MessageId:   msg.ID,
		SessionId:   string(msg.SessionID),
		UserId:      msg.UserID,
		Username:    msg.Username,
		Message:     msg.Body,
		MessageType: string(msg.Type),
		Timestamp:   msg.Timestamp,
	}
}
