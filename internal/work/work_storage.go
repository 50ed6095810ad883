package work

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	workerrors "neb-hris/internal/work/errors"
)

var pdfMagic = []byte("%PDF-")

const maxAttachmentSize = 10 << 20

// ValidateAttachment accepts PDF uploads only. Both the file name and
// the leading bytes are checked so a renamed file does not slip
// through.
func ValidateAttachment(fileName string, data []byte) error {
	if len(data) > maxAttachmentSize {
		return workerrors.ErrAttachmentTooLarge
	}
	if !strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		return workerrors.ErrUnsupportedFileType
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return workerrors.ErrUnsupportedFileType
	}
	return nil
}

// AttachmentStore persists uploaded work attachments.
//
//go:generate mockgen -source=work_storage.go -destination=mock/work_storage_mock.go -package=mock
type AttachmentStore interface {
	Save(kind, workID, fileName string, data []byte) (string, error)
}

type diskAttachmentStore struct {
	uploadDir string
}

func NewDiskAttachmentStore(uploadDir string) AttachmentStore {
	return &diskAttachmentStore{uploadDir: uploadDir}
}

func (s *diskAttachmentStore) Save(kind, workID, fileName string, data []byte) (string, error) {
	dir := filepath.Join(s.uploadDir, "work", kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, workID+"_"+filepath.Base(fileName))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
