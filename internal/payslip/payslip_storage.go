package payslip

import (
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists rendered payslip documents and serves them back.
//
//go:generate mockgen -source=payslip_storage.go -destination=mock/payslip_storage_mock.go -package=mock
type FileStore interface {
	// Write stores the document and returns the absolute path it was
	// written to. Writing the same path again overwrites the file.
	Write(period, cardNumber string, data []byte) (fileName, filePath string, err error)
	Read(filePath string) ([]byte, error)
}

type diskFileStore struct {
	baseFolder string
}

func NewDiskFileStore(baseFolder string) FileStore {
	return &diskFileStore{baseFolder: baseFolder}
}

// normalizePeriod makes a period label filesystem-safe.
func normalizePeriod(period string) string {
	return strings.ReplaceAll(strings.TrimSpace(period), " ", "_")
}

func (s *diskFileStore) Write(period, cardNumber string, data []byte) (string, string, error) {
	normalized := normalizePeriod(period)
	dir := filepath.Join(s.baseFolder, normalized)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}

	fileName := cardNumber + "_payslip" + normalized + ".pdf"
	filePath := filepath.Join(dir, fileName)
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return "", "", err
	}
	return fileName, filePath, nil
}

func (s *diskFileStore) Read(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}
