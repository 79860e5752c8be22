package service

import (
	"context"
	"fmt"
	"strings"

	"docbiz/internal/domain"
	"docbiz/internal/port"
)

// SettingsService manages the persisted user preferences: theme and the
// extraction service credential. The credential is stored locally and only
// ever leaves the machine inside an extraction call.
type SettingsService interface {
	GetTheme(ctx context.Context) (domain.Theme, error)
	SetTheme(ctx context.Context, theme string) error
	GetAPIKey(ctx context.Context) (string, error)
	SetAPIKey(ctx context.Context, key string) error
}

type settingsService struct {
	repo          port.StateRepository
	defaultAPIKey string
}

// NewSettingsService creates a SettingsService. defaultAPIKey (from config)
// is used only while no user-supplied key has been stored.
func NewSettingsService(repo port.StateRepository, defaultAPIKey string) SettingsService {
	return &settingsService{repo: repo, defaultAPIKey: defaultAPIKey}
}

func (s *settingsService) GetTheme(ctx context.Context) (domain.Theme, error) {
	v, err := s.repo.GetSetting(ctx, port.SettingKeyTheme)
	if err != nil {
		return "", err
	}
	if !domain.ValidTheme(v) {
		return domain.ThemeSystem, nil
	}
	return domain.Theme(v), nil
}

func (s *settingsService) SetTheme(ctx context.Context, theme string) error {
	if !domain.ValidTheme(theme) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTheme, theme)
	}
	return s.repo.SetSetting(ctx, port.SettingKeyTheme, theme)
}

func (s *settingsService) GetAPIKey(ctx context.Context) (string, error) {
	v, err := s.repo.GetSetting(ctx, port.SettingKeyAPIKey)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(v) == "" {
		return s.defaultAPIKey, nil
	}
	return v, nil
}

func (s *settingsService) SetAPIKey(ctx context.Context, key string) error {
	return s.repo.SetSetting(ctx, port.SettingKeyAPIKey, strings.TrimSpace(key))
}
