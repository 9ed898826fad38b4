package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var ErrFileTooLarge = errors.New("file too large")

type UploadService interface {
	ReadFile(file *multipart.FileHeader) ([]byte, DocumentKind, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

// ReadFile loads an uploaded résumé into memory. Nothing is written to disk.
func (s *uploadService) ReadFile(file *multipart.FileHeader) ([]byte, DocumentKind, error) {
	kind, err := DetectDocumentKind(file.Filename)
	if err != nil {
		return nil, "", err
	}

	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return nil, "", fmt.Errorf("%w. Max size: %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return data, kind, nil
}

func DetectDocumentKind(filename string) (DocumentKind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return DocumentPDF, nil
	case ".docx":
		return DocumentDOCX, nil
	default:
		return "", fmt.Errorf("%w: invalid file extension %q", ErrUnsupportedFile, ext)
	}
}
