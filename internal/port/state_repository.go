package port

import (
	"context"

	"docbiz/internal/domain"
)

// Persisted settings keys. The document collection lives under its own key
// owned by the repository implementation.
const (
	SettingKeyTheme  = "theme"
	SettingKeyAPIKey = "geminiApiKey"
)

// StateRepository is the durable local storage behind the document store and
// user settings. The whole document collection is persisted as one value;
// settings are independent keys.
type StateRepository interface {
	// LoadDocuments returns the persisted collection. A corrupt stored
	// payload is discarded (and logged) rather than returned as an error;
	// the store then starts empty.
	LoadDocuments(ctx context.Context) ([]domain.ProcessedDocument, error)
	SaveDocuments(ctx context.Context, docs []domain.ProcessedDocument) error
	ClearDocuments(ctx context.Context) error

	// GetSetting returns "" when the key has never been written.
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}
