package application

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	applicationerrors "neb-hris/internal/application/errors"
)

var pdfMagic = []byte("%PDF-")

const maxResumeSize = 5 << 20

// ValidateResume accepts PDF uploads only.
func ValidateResume(fileName string, data []byte) error {
	if len(data) > maxResumeSize {
		return applicationerrors.ErrUnsupportedResume
	}
	if !strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		return applicationerrors.ErrUnsupportedResume
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return applicationerrors.ErrUnsupportedResume
	}
	return nil
}

// ResumeStore persists applicant resumes under the upload root.
//
//go:generate mockgen -source=resume_storage.go -destination=mock/resume_storage_mock.go -package=mock
type ResumeStore interface {
	Save(email, fileName string, data []byte) (string, error)
}

type diskResumeStore struct {
	uploadDir string
}

func NewDiskResumeStore(uploadDir string) ResumeStore {
	return &diskResumeStore{uploadDir: uploadDir}
}

func (s *diskResumeStore) Save(email, fileName string, data []byte) (string, error) {
	dir := filepath.Join(s.uploadDir, "resumes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	safeEmail := strings.NewReplacer("@", "_at_", "/", "_", "\\", "_").Replace(email)
	path := filepath.Join(dir, safeEmail+"_"+filepath.Base(fileName))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
