//go:generate go run go.uber.org/mock/mockgen -source=upload_repository.go -destination=../../mocks/mock_upload_repository.go -package=mocks
package storage

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"
	"google.golang.org/protobuf/proto"

	"stream-lab/domain"
	pb "stream-lab/proto/storage"
)

type IUploadRepository interface {
	SaveArtifact(fileID string, data []byte) (string, error)
	StoreRecord(artifact domain.UploadArtifact) error
	GetRecord(fileID string) (domain.UploadArtifact, error)
}

// UploadRepository stores artifact bytes on disk and the upload record in
// BadgerDB. No rollback across the two: the assembler's response, not the
// storage, carries the success/failure contract.
type UploadRepository struct {
	db        *badger.DB
	log       *slog.Logger
	uploadDir string
}

func NewUploadRepository(db *badger.DB, log *slog.Logger, uploadDir string) *UploadRepository {
	return &UploadRepository{db: db, log: log, uploadDir: uploadDir}
}

const uploadPrefix = "upload:"

// SaveArtifact writes the assembled bytes under the upload directory and
// returns the resulting path.
func (r *UploadRepository) SaveArtifact(fileID string, data []byte) (string, error) {
	if err := os.MkdirAll(r.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	path := filepath.Join(r.uploadDir, fileID+".bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", fileID, err)
	}
	r.log.Debug("Artifact saved", "file_id", fileID, "path", path, "bytes", len(data))
	return path, nil
}

func (r *UploadRepository) StoreRecord(artifact domain.UploadArtifact) error {
	data, err := proto.Marshal(toPbUploadRecord(artifact))
	if err != nil {
		return fmt.Errorf("failed to marshal upload record %s: %w", artifact.FileID, err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(uploadPrefix+artifact.FileID), data)
	})
}

func (r *UploadRepository) GetRecord(fileID string) (domain.UploadArtifact, error) {
	var record pb.UploadRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(uploadPrefix + fileID))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return proto.Unmarshal(v, &record)
		})
	})
	if err != nil {
		return domain.UploadArtifact{}, fmt.Errorf("upload record %s: %w", fileID, err)
	}
	return fromPbUploadRecord(&record), nil
}

func toPbUploadRecord(artifact domain.UploadArtifact) *pb.UploadRecord {
	return &pb.UploadRecord{
		FileId:     artifact.FileID,
		Filename:   artifact.Filename,
		Size:       artifact.Size,
		Path:       artifact.Path,
		Status:     artifact.Status,
		UploadedAt: artifact.UploadedAt,
	}
}

func fromPbUploadRecord(p *pb.UploadRecord) domain.UploadArtifact {
	return domain.UploadArtifact{
		FileID:     p.FileId,
		Filename:   p.Filename,
		Size:       p.Size,
		Path:       p.Path,
		Status:     p.Status,
		UploadedAt: p.UploadedAt,
	}
}
