package errors

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrMissingUserID   = fmt.Errorf("user_id is required")
	ErrMissingUsername = fmt.Errorf("username is required")
	ErrMissingBody     = fmt.Errorf("message body is required")
	ErrInvalidRequest  = fmt.Errorf("invalid request")
	ErrStorage         = fmt.Errorf("storage failure")
)

// MapToGRPCError translates domain errors into gRPC status errors at the
// server boundary. Validation failures are the client's to fix
// (InvalidArgument); cancellation is cleanup, not a fault; everything else
// is Internal.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrMissingUserID),
		errors.Is(err, ErrMissingUsername),
		errors.Is(err, ErrMissingBody),
		errors.Is(err, ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
