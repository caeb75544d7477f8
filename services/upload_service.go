package services

import (
	"fmt"
	"log/slog"

	"stream-lab/domain"
	"stream-lab/errors"
	"stream-lab/infrastructure/storage"
)

// UploadAssembler reassembles one client-streamed upload. It is private to
// a single call and goes through Receiving -> Finalizing -> Completed or
// Failed exactly once; no locking is needed because a call's inbound chunks
// arrive one at a time.
type UploadAssembler struct {
	log        *slog.Logger
	repository storage.IUploadRepository
	state      domain.UploadState
	chunks     [][]byte
	size       int64
	filename   string
}

func NewUploadAssembler(log *slog.Logger, repository storage.IUploadRepository) *UploadAssembler {
	return &UploadAssembler{
		log:        log,
		repository: repository,
		state:      domain.UploadReceiving,
	}
}

// Append accumulates one inbound chunk. Empty payloads are ignored, not
// errors. The first non-empty filename seen is kept for the final report.
func (a *UploadAssembler) Append(chunk []byte, filename string) {
	if a.state != domain.UploadReceiving {
		return
	}
	if a.filename == "" && filename != "" {
		a.filename = filename
	}
	if len(chunk) == 0 {
		return
	}
	a.chunks = append(a.chunks, chunk)
	a.size += int64(len(chunk))
	a.log.Debug("Chunk received", "total_bytes", a.size)
}

// Size reports the number of payload bytes accumulated so far.
func (a *UploadAssembler) Size() int64 {
	return a.size
}

// Finalize concatenates the accumulated chunks into one artifact, persists
// it and returns the upload summary. A persistence fault moves the
// assembler to Failed; bytes already flushed are not rolled back, only the
// response is guaranteed to reflect the outcome.
func (a *UploadAssembler) Finalize() (domain.UploadArtifact, error) {
	if a.state != domain.UploadReceiving {
		return domain.UploadArtifact{}, fmt.Errorf("%w: upload already finalized", errors.ErrInvalidRequest)
	}
	a.state = domain.UploadFinalizing

	data := make([]byte, 0, a.size)
	for _, chunk := range a.chunks {
		data = append(data, chunk...)
	}

	artifact := domain.UploadArtifact{
		FileID:     domain.NewID("file"),
		Filename:   a.filename,
		Size:       a.size,
		UploadedAt: domain.NowStamp(),
	}
	if artifact.Filename == "" {
		artifact.Filename = "unknown"
	}

	path, err := a.repository.SaveArtifact(artifact.FileID, data)
	if err != nil {
		a.state = domain.UploadFailed
		artifact.Status = domain.UploadStatusFailed
		return domain.UploadArtifact{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	artifact.Path = path
	artifact.Status = domain.UploadStatusSuccess
	artifact.Message = "File uploaded successfully"

	if err := a.repository.StoreRecord(artifact); err != nil {
		a.state = domain.UploadFailed
		return domain.UploadArtifact{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	a.state = domain.UploadCompleted
	a.log.Info("Upload complete", "file_id", artifact.FileID, "size", artifact.Size, "path", path)
	return artifact, nil
}
