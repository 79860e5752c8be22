package service_test

import (
	"context"
	"errors"
	"sync"

	"docbiz/internal/domain"
	"docbiz/internal/port"
)

// fakeStateRepo is an in-memory port.StateRepository for service tests.
type fakeStateRepo struct {
	mu       sync.Mutex
	docs     []domain.ProcessedDocument
	settings map[string]string

	saveCalls int
	failSave  bool
}

var _ port.StateRepository = (*fakeStateRepo)(nil)

func newFakeStateRepo() *fakeStateRepo {
	return &fakeStateRepo{settings: map[string]string{}}
}

func (f *fakeStateRepo) LoadDocuments(ctx context.Context) ([]domain.ProcessedDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.ProcessedDocument{}, f.docs...), nil
}

func (f *fakeStateRepo) SaveDocuments(ctx context.Context, docs []domain.ProcessedDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCalls++
	if f.failSave {
		return errors.New("disk full")
	}
	f.docs = append([]domain.ProcessedDocument{}, docs...)
	return nil
}

func (f *fakeStateRepo) ClearDocuments(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs = nil
	return nil
}

func (f *fakeStateRepo) GetSetting(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.settings[key], nil
}

func (f *fakeStateRepo) SetSetting(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings[key] = value
	return nil
}

// fakeExtractor is a scriptable port.DocumentExtractor for pipeline tests.
type fakeExtractor struct {
	results map[string]*domain.ExtractedData
	errs    map[string]error
	calls   []string
}

var _ port.DocumentExtractor = (*fakeExtractor)(nil)

func (f *fakeExtractor) Extract(ctx context.Context, input port.ExtractInput) (*domain.ExtractedData, error) {
	f.calls = append(f.calls, input.FileName)
	if err := f.errs[input.FileName]; err != nil {
		return nil, err
	}
	if r := f.results[input.FileName]; r != nil {
		return r, nil
	}
	return &domain.ExtractedData{
		Clientes: []domain.ClientData{},
		Empresas: []domain.CompanyData{},
		Imoveis:  []domain.PropertyData{},
	}, nil
}
