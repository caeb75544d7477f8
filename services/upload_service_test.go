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
)

func TestUploadAssembler_Assembles_Chunks_In_Order(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIUploadRepository(ctrl)
	assembler := NewUploadAssembler(log, repository)

	// Given chunks arriving in order
	assembler.Append([]byte("ab"), "notes.txt")
	assembler.Append([]byte("cd"), "")
	assembler.Append([]byte("ef"), "")

	// Then the artifact bytes are the exact concatenation
	repository.EXPECT().
		SaveArtifact(gomock.Any(), []byte("abcdef")).
		Return("/tmp/uploads/file.bin", nil).
		Times(1)
	repository.EXPECT().StoreRecord(gomock.Any()).Return(nil).Times(1)

	artifact, err := assembler.Finalize()
	req.NoError(err)
	req.Equal(int64(6), artifact.Size)
	req.Equal("notes.txt", artifact.Filename)
	req.Equal(domain.UploadStatusSuccess, artifact.Status)
	req.NotEmpty(artifact.FileID)
	req.Equal("/tmp/uploads/file.bin", artifact.Path)
}

func TestUploadAssembler_Ignores_Empty_Chunks(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIUploadRepository(ctrl)
	assembler := NewUploadAssembler(log, repository)

	// When empty payloads are interleaved with real ones
	assembler.Append(nil, "")
	assembler.Append([]byte("data"), "")
	assembler.Append([]byte{}, "")

	// Then only the real bytes count
	req.Equal(int64(4), assembler.Size())
}

func TestUploadAssembler_Empty_Stream_Yields_Empty_Artifact(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIUploadRepository(ctrl)
	assembler := NewUploadAssembler(log, repository)

	repository.EXPECT().SaveArtifact(gomock.Any(), []byte{}).Return("/tmp/uploads/empty.bin", nil).Times(1)
	repository.EXPECT().StoreRecord(gomock.Any()).Return(nil).Times(1)

	// When finalizing without a single chunk
	artifact, err := assembler.Finalize()

	// Then the upload still succeeds with zero size and a fallback name
	req.NoError(err)
	req.Zero(artifact.Size)
	req.Equal("unknown", artifact.Filename)
	req.Equal(domain.UploadStatusSuccess, artifact.Status)
}

func TestUploadAssembler_Keeps_First_Filename(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIUploadRepository(ctrl)
	assembler := NewUploadAssembler(log, repository)

	assembler.Append([]byte("x"), "first.txt")
	assembler.Append([]byte("y"), "second.txt")

	repository.EXPECT().SaveArtifact(gomock.Any(), gomock.Any()).Return("/tmp/uploads/file.bin", nil).Times(1)
	repository.EXPECT().StoreRecord(gomock.Any()).Return(nil).Times(1)

	artifact, err := assembler.Finalize()
	req.NoError(err)
	req.Equal("first.txt", artifact.Filename)
}

func TestUploadAssembler_Storage_Failure(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIUploadRepository(ctrl)
	assembler := NewUploadAssembler(log, repository)
	assembler.Append([]byte("data"), "doomed.txt")

	repository.EXPECT().
		SaveArtifact(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("no space left on device")).
		Times(1)

	// When persistence fails
	_, err := assembler.Finalize()

	// Then the fault is wrapped and the assembler is spent
	req.ErrorIs(err, errors.ErrStorage)

	_, err = assembler.Finalize()
	req.ErrorIs(err, errors.ErrInvalidRequest)
}

func TestUploadAssembler_Finalize_Twice_Is_Rejected(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIUploadRepository(ctrl)
	assembler := NewUploadAssembler(log, repository)
	assembler.Append([]byte("once"), "")

	repository.EXPECT().SaveArtifact(gomock.Any(), gomock.Any()).Return("/tmp/uploads/file.bin", nil).Times(1)
	repository.EXPECT().StoreRecord(gomock.Any()).Return(nil).Times(1)

	_, err := assembler.Finalize()
	req.NoError(err)

	// When finalizing a second time
	_, err = assembler.Finalize()
	req.ErrorIs(err, errors.ErrInvalidRequest)

	// And late chunks are dropped
	assembler.Append([]byte("late"), "")
	req.Equal(int64(4), assembler.Size())
}
