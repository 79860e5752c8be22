package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"docbiz/internal/domain"
	"docbiz/internal/port"
)

// documentsKey is the app_state key holding the whole document collection.
const documentsKey = "processedDocuments"

// StateRepo persists application state in the app_state key-value table.
type StateRepo struct {
	db *sqlx.DB
}

var _ port.StateRepository = (*StateRepo)(nil)

// NewStateRepo creates a StateRepo backed by db.
func NewStateRepo(db *sqlx.DB) *StateRepo {
	return &StateRepo{db: db}
}

// LoadDocuments reads and decodes the persisted collection. A payload that
// fails to decode is discarded and logged; the caller starts empty.
func (r *StateRepo) LoadDocuments(ctx context.Context) ([]domain.ProcessedDocument, error) {
	var raw string
	err := r.db.GetContext(ctx, &raw, `SELECT value FROM app_state WHERE key = ?`, documentsKey)
	if errors.Is(err, sql.ErrNoRows) {
		return []domain.ProcessedDocument{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading documents: %w", err)
	}

	var docs []domain.ProcessedDocument
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		log.Printf("sqlite.StateRepo: discarding corrupt stored collection: %v", err)
		if _, delErr := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, documentsKey); delErr != nil {
			return nil, fmt.Errorf("discarding corrupt collection: %w", delErr)
		}
		return []domain.ProcessedDocument{}, nil
	}
	if docs == nil {
		docs = []domain.ProcessedDocument{}
	}
	return docs, nil
}

// SaveDocuments serializes and stores the whole collection.
func (r *StateRepo) SaveDocuments(ctx context.Context, docs []domain.ProcessedDocument) error {
	if docs == nil {
		docs = []domain.ProcessedDocument{}
	}
	raw, err := json.Marshal(docs)
	if err != nil {
		return fmt.Errorf("encoding documents: %w", err)
	}
	return r.set(ctx, documentsKey, string(raw))
}

// ClearDocuments removes the persisted collection entirely.
func (r *StateRepo) ClearDocuments(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, documentsKey); err != nil {
		return fmt.Errorf("clearing documents: %w", err)
	}
	return nil
}

// GetSetting returns the stored value for key, or "" if never written.
func (r *StateRepo) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM app_state WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("loading setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting stores value under key, overwriting any previous value.
func (r *StateRepo) SetSetting(ctx context.Context, key, value string) error {
	return r.set(ctx, key, value)
}

func (r *StateRepo) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("storing %s: %w", key, err)
	}
	return nil
}
