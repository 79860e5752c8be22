package service

import (
	"encoding/json"
	"fmt"
	"time"

	"docbiz/internal/domain"
	"docbiz/internal/txtexport"
	"docbiz/internal/xlsxexport"
)

// ExportService renders the whole document collection for download or for
// copying to the clipboard. Exporting never mutates the store.
type ExportService interface {
	Text(now time.Time) (filename string, content []byte, err error)
	JSON() ([]byte, error)
	XLSX(now time.Time) (filename string, content []byte, err error)
}

type exportService struct {
	store StoreService
}

// NewExportService creates an ExportService reading from store.
func NewExportService(store StoreService) ExportService {
	return &exportService{store: store}
}

func (s *exportService) Text(now time.Time) (string, []byte, error) {
	docs := s.store.List("")
	if len(docs) == 0 {
		return "", nil, domain.ErrStoreEmpty
	}
	return txtexport.Filename(now), []byte(txtexport.Render(docs)), nil
}

// JSON returns the pretty-printed collection for the copy-all action.
func (s *exportService) JSON() ([]byte, error) {
	docs := s.store.List("")
	if len(docs) == 0 {
		return nil, domain.ErrStoreEmpty
	}
	out, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding collection: %w", err)
	}
	return out, nil
}

func (s *exportService) XLSX(now time.Time) (string, []byte, error) {
	docs := s.store.List("")
	if len(docs) == 0 {
		return "", nil, domain.ErrStoreEmpty
	}
	f, err := xlsxexport.Build(docs)
	if err != nil {
		return "", nil, fmt.Errorf("building workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return xlsxexport.Filename(now), buf.Bytes(), nil
}
