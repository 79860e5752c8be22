package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"docbiz/internal/domain"
	"docbiz/internal/metrics"
	"docbiz/internal/port"
)

// Outcome status values for one file in a batch.
const (
	OutcomeProcessed = "processed"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// FileOutcome reports what happened to one file of a submitted batch.
type FileOutcome struct {
	FileName   string `json:"fileName"`
	Status     string `json:"status"`
	DocumentID string `json:"documentId,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ProcessService runs the extraction pipeline for submitted file batches:
// validate, read, extract, append to the store. Files are processed one at a
// time in submission order; one file's failure never blocks the next file.
type ProcessService interface {
	ProcessBatch(ctx context.Context, files []*multipart.FileHeader) ([]FileOutcome, error)
}

type processService struct {
	intake    IntakeService
	extractor port.DocumentExtractor
	store     StoreService
	settings  SettingsService
	metrics   *metrics.Metrics
}

// NewProcessService creates a ProcessService.
func NewProcessService(
	intake IntakeService,
	extractor port.DocumentExtractor,
	store StoreService,
	settings SettingsService,
	m *metrics.Metrics,
) ProcessService {
	return &processService{
		intake:    intake,
		extractor: extractor,
		store:     store,
		settings:  settings,
		metrics:   m,
	}
}

// ProcessBatch validates, reads and extracts every file in the batch.
// Invalid files are rejected and skipped; the remaining files still run.
// A missing credential aborts the whole batch before any remote call.
func (s *processService) ProcessBatch(ctx context.Context, files []*multipart.FileHeader) ([]FileOutcome, error) {
	apiKey, err := s.settings.GetAPIKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading API key: %w", err)
	}
	if apiKey == "" {
		return nil, domain.ErrMissingAPIKey
	}

	files = s.intake.DedupeBatch(files)
	outcomes := make([]FileOutcome, 0, len(files))

	for _, fh := range files {
		outcome := s.processOne(ctx, apiKey, fh)
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func (s *processService) processOne(ctx context.Context, apiKey string, fh *multipart.FileHeader) FileOutcome {
	name := fh.Filename
	contentType := fh.Header.Get("Content-Type")

	if err := s.intake.Validate(name, contentType, fh.Size); err != nil {
		log.Printf("processService.ProcessBatch: rejected %s: %v", name, err)
		s.metrics.ExtractionFailures.WithLabelValues("rejected").Inc()
		return FileOutcome{FileName: name, Status: OutcomeRejected, Error: publicMessage(err)}
	}

	f, err := fh.Open()
	if err != nil {
		log.Printf("processService.ProcessBatch: opening %s: %v", name, err)
		s.metrics.ExtractionFailures.WithLabelValues("read").Inc()
		return FileOutcome{FileName: name, Status: OutcomeFailed, Error: "could not read the file"}
	}
	content, err := s.intake.Read(name, contentType, f)
	_ = f.Close()
	if err != nil {
		log.Printf("processService.ProcessBatch: reading %s: %v", name, err)
		s.metrics.ExtractionFailures.WithLabelValues("read").Inc()
		return FileOutcome{FileName: name, Status: OutcomeFailed, Error: publicMessage(err)}
	}

	extracted, err := s.extractor.Extract(ctx, port.ExtractInput{
		APIKey:      apiKey,
		FileName:    name,
		ContentType: contentType,
		Content:     content,
	})
	if err != nil {
		log.Printf("processService.ProcessBatch: extraction failed for %s: %v", name, err)
		s.metrics.ExtractionFailures.WithLabelValues(failureReason(err)).Inc()
		return FileOutcome{FileName: name, Status: OutcomeFailed, Error: publicMessage(err)}
	}

	doc := domain.ProcessedDocument{
		ID:        domain.NewID(),
		FileName:  name,
		FileType:  contentType,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Clientes:  extracted.Clientes,
		Empresas:  extracted.Empresas,
		Imoveis:   extracted.Imoveis,
	}
	if err := s.store.Append(ctx, doc); err != nil {
		log.Printf("processService.ProcessBatch: storing document for %s: %v", name, err)
		s.metrics.ExtractionFailures.WithLabelValues("store").Inc()
		return FileOutcome{FileName: name, Status: OutcomeFailed, Error: "could not store the extracted data"}
	}

	s.metrics.DocumentsProcessed.Inc()
	return FileOutcome{FileName: name, Status: OutcomeProcessed, DocumentID: doc.ID}
}

// publicMessage maps pipeline errors to user-presentable text; technical
// detail stays in the logs.
func publicMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return "unsupported file type; allowed: JPEG, PNG, PDF, DOC, DOCX, XML, TXT, CSV"
	case errors.Is(err, domain.ErrFileTooLarge):
		return fmt.Sprintf("file exceeds the %dMB size limit", domain.MaxFileSizeMB)
	case errors.Is(err, domain.ErrInvalidAPIKey):
		return "the Gemini API key was rejected; check the configured key and try again"
	case errors.Is(err, domain.ErrInvalidPayload):
		return "the file content could not be prepared for extraction"
	case errors.Is(err, domain.ErrUnparseableResponse):
		return "could not parse the data extracted by the AI; the response format may be invalid"
	case errors.Is(err, domain.ErrExtractionFailed):
		return "the extraction service call failed; try again later"
	default:
		return "an unexpected error occurred while processing the file"
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAPIKey):
		return "invalid_api_key"
	case errors.Is(err, domain.ErrInvalidPayload):
		return "invalid_payload"
	case errors.Is(err, domain.ErrUnparseableResponse):
		return "unparseable_response"
	default:
		return "remote_error"
	}
}
