package service

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"docbiz/internal/config"
	"docbiz/internal/domain"
)

// IntakeService validates and reads user-submitted files.
type IntakeService interface {
	Validate(name, contentType string, size int64) error
	Read(name, contentType string, r io.Reader) (string, error)
	DedupeBatch(files []*multipart.FileHeader) []*multipart.FileHeader
}

type intakeService struct {
	maxBytes int64
}

// NewIntakeService creates an IntakeService with the configured size ceiling.
func NewIntakeService(cfg *config.IntakeConfig) IntakeService {
	maxBytes := cfg.MaxFileSizeMB * 1024 * 1024
	if maxBytes <= 0 {
		maxBytes = domain.MaxFileSizeBytes
	}
	return &intakeService{maxBytes: maxBytes}
}

// Validate checks the declared media type against the accepted set and the
// file size against the configured ceiling. Errors name the offending file.
func (s *intakeService) Validate(name, contentType string, size int64) error {
	if !domain.AcceptedContentTypes[contentType] {
		return fmt.Errorf("%w: %s (%s)", domain.ErrUnsupportedFileType, name, contentType)
	}
	if size > s.maxBytes {
		return fmt.Errorf("%w: %s (max %dMB)", domain.ErrFileTooLarge, name, s.maxBytes/(1024*1024))
	}
	return nil
}

// Read produces the extraction payload for one file: decoded text for
// textual media types, a data-URI base64 encoding otherwise. The size
// ceiling is enforced again at read time.
func (s *intakeService) Read(name, contentType string, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", name, err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w: %s (max %dMB)", domain.ErrFileTooLarge, name, s.maxBytes/(1024*1024))
	}
	if strings.HasPrefix(contentType, "text/") {
		return string(data), nil
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DedupeBatch drops files whose (name, size) pair repeats within the batch;
// duplicates are silently ignored rather than re-added.
func (s *intakeService) DedupeBatch(files []*multipart.FileHeader) []*multipart.FileHeader {
	type key struct {
		name string
		size int64
	}
	seen := make(map[key]bool, len(files))
	out := make([]*multipart.FileHeader, 0, len(files))
	for _, f := range files {
		k := key{name: f.Filename, size: f.Size}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, f)
	}
	return out
}
