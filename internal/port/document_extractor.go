package port

import (
	"context"

	"docbiz/internal/domain"
)

// ExtractInput carries one file's content to the extraction service.
// Content is either decoded text (textual media types) or a
// data:<mime>;base64,<payload> data-URI string (binary media types).
type ExtractInput struct {
	APIKey      string
	FileName    string
	ContentType string
	Content     string
}

// DocumentExtractor abstracts the external LLM extraction service.
// Implementations make exactly one remote call per Extract invocation and
// never assign entity identifiers from the remote side.
type DocumentExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.ExtractedData, error)
}
