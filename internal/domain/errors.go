package domain

import "errors"

var (
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrMissingAPIKey        = errors.New("extraction API key is missing")
	ErrInvalidAPIKey        = errors.New("extraction API key was rejected by the service")
	ErrInvalidPayload       = errors.New("malformed document payload")
	ErrUnparseableResponse  = errors.New("could not parse extracted data")
	ErrExtractionFailed     = errors.New("extraction service call failed")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrInvalidTheme         = errors.New("invalid theme preference")
	ErrStoreEmpty           = errors.New("no processed documents")
	ErrConfirmationRequired = errors.New("explicit confirmation required")
	ErrInvalidEntityKind    = errors.New("invalid entity kind")
)
