package domain

// UploadState tracks the per-call assembler state machine.
type UploadState int

const (
	UploadReceiving UploadState = iota
	UploadFinalizing
	UploadCompleted
	UploadFailed
)

const (
	UploadStatusSuccess = "success"
	UploadStatusFailed  = "failed"
)

// UploadArtifact is the result of a finalized client-streaming upload.
type UploadArtifact struct {
	FileID     string
	Filename   string
	Size       int64
	Path       string
	Status     string
	Message    string
	UploadedAt string
}
