package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docbiz/internal/config"
	"docbiz/internal/domain"
	"docbiz/internal/metrics"
	"docbiz/internal/port"
	"docbiz/internal/service"
)

type batchFile struct {
	name        string
	contentType string
	content     string
}

// buildBatch assembles real multipart file headers the way an HTTP upload
// would deliver them.
func buildBatch(t *testing.T, files []batchFile) []*multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["files"]
}

type pipelineFixture struct {
	process   service.ProcessService
	store     service.StoreService
	extractor *fakeExtractor
	repo      *fakeStateRepo
}

func newPipeline(t *testing.T, defaultAPIKey string) *pipelineFixture {
	t.Helper()
	repo := newFakeStateRepo()
	store := service.NewStoreService(repo)
	require.NoError(t, store.Load(context.Background()))

	intake := service.NewIntakeService(&config.IntakeConfig{MaxFileSizeMB: 10})
	settings := service.NewSettingsService(repo, defaultAPIKey)
	ex := &fakeExtractor{
		results: map[string]*domain.ExtractedData{},
		errs:    map[string]error{},
	}
	return &pipelineFixture{
		process:   service.NewProcessService(intake, ex, store, settings, metrics.New()),
		store:     store,
		extractor: ex,
		repo:      repo,
	}
}

func TestProcessService_ProcessBatch_Success(t *testing.T) {
	fx := newPipeline(t, "config-key")
	fx.extractor.results["contrato.txt"] = &domain.ExtractedData{
		Clientes: []domain.ClientData{{ID: domain.NewID(), NomeCompleto: "João"}},
		Empresas: []domain.CompanyData{},
		Imoveis:  []domain.PropertyData{},
	}

	files := buildBatch(t, []batchFile{
		{"contrato.txt", "text/plain", "conteúdo do contrato"},
	})
	outcomes, err := fx.process.ProcessBatch(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	assert.Equal(t, service.OutcomeProcessed, outcomes[0].Status)
	assert.Equal(t, "contrato.txt", outcomes[0].FileName)
	assert.NotEmpty(t, outcomes[0].DocumentID)

	docs := fx.store.List("")
	require.Len(t, docs, 1)
	assert.Equal(t, "contrato.txt", docs[0].FileName)
	assert.Equal(t, "text/plain", docs[0].FileType)
	assert.Len(t, docs[0].Clientes, 1)

	_, err = time.Parse(time.RFC3339, docs[0].Timestamp)
	assert.NoError(t, err, "timestamps are RFC 3339")
}

func TestProcessService_ProcessBatch_RejectsInvalidAndContinues(t *testing.T) {
	fx := newPipeline(t, "config-key")

	files := buildBatch(t, []batchFile{
		{"video.mp4", "video/mp4", "not a document"},
		{"notas.txt", "text/plain", "texto válido"},
	})
	outcomes, err := fx.process.ProcessBatch(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.Equal(t, service.OutcomeRejected, outcomes[0].Status)
	assert.NotEmpty(t, outcomes[0].Error)
	assert.Equal(t, service.OutcomeProcessed, outcomes[1].Status)

	assert.Equal(t, []string{"notas.txt"}, fx.extractor.calls,
		"rejected files never reach the extraction service")
	assert.Equal(t, 1, fx.store.Count())
}

func TestProcessService_ProcessBatch_ExtractionFailureDoesNotBlockRest(t *testing.T) {
	fx := newPipeline(t, "config-key")
	fx.extractor.errs["ruim.txt"] = fmt.Errorf("%w: boom", domain.ErrExtractionFailed)

	files := buildBatch(t, []batchFile{
		{"ruim.txt", "text/plain", "a"},
		{"bom.txt", "text/plain", "b"},
	})
	outcomes, err := fx.process.ProcessBatch(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.Equal(t, service.OutcomeFailed, outcomes[0].Status)
	assert.NotEmpty(t, outcomes[0].Error)
	assert.Equal(t, service.OutcomeProcessed, outcomes[1].Status)
	assert.Equal(t, 1, fx.store.Count(), "only the successful file is stored")
}

func TestProcessService_ProcessBatch_MissingAPIKeyAbortsBatch(t *testing.T) {
	fx := newPipeline(t, "")

	files := buildBatch(t, []batchFile{
		{"notas.txt", "text/plain", "texto"},
	})
	_, err := fx.process.ProcessBatch(context.Background(), files)
	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
	assert.Empty(t, fx.extractor.calls)
}

func TestProcessService_ProcessBatch_StoredKeyOverridesDefault(t *testing.T) {
	repo := newFakeStateRepo()
	require.NoError(t, repo.SetSetting(context.Background(), port.SettingKeyAPIKey, "user-key"))

	store := service.NewStoreService(repo)
	require.NoError(t, store.Load(context.Background()))

	keyed := &keyRecordingExtractor{}
	intake := service.NewIntakeService(&config.IntakeConfig{MaxFileSizeMB: 10})
	settings := service.NewSettingsService(repo, "config-key")
	process := service.NewProcessService(intake, keyed, store, settings, metrics.New())

	_, err := process.ProcessBatch(context.Background(), buildBatch(t, []batchFile{{"x.txt", "text/plain", "t"}}))
	require.NoError(t, err)
	assert.Equal(t, "user-key", keyed.lastKey)
}

func TestProcessService_ProcessBatch_DeduplicatesWithinBatch(t *testing.T) {
	fx := newPipeline(t, "config-key")

	files := buildBatch(t, []batchFile{
		{"mesmo.txt", "text/plain", "abc"},
		{"mesmo.txt", "text/plain", "abc"},
	})
	outcomes, err := fx.process.ProcessBatch(context.Background(), files)
	require.NoError(t, err)
	assert.Len(t, outcomes, 1)
	assert.Equal(t, 1, fx.store.Count())
}

func TestProcessService_ProcessBatch_InvalidKeyReportedPerFile(t *testing.T) {
	fx := newPipeline(t, "config-key")
	fx.extractor.errs["notas.txt"] = fmt.Errorf("%w (status 400)", domain.ErrInvalidAPIKey)

	files := buildBatch(t, []batchFile{{"notas.txt", "text/plain", "texto"}})
	outcomes, err := fx.process.ProcessBatch(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, service.OutcomeFailed, outcomes[0].Status)
	assert.Contains(t, outcomes[0].Error, "key")
}

type keyRecordingExtractor struct {
	lastKey string
}

func (k *keyRecordingExtractor) Extract(ctx context.Context, input port.ExtractInput) (*domain.ExtractedData, error) {
	k.lastKey = input.APIKey
	if input.APIKey == "" {
		return nil, errors.New("missing key")
	}
	return &domain.ExtractedData{
		Clientes: []domain.ClientData{}, Empresas: []domain.CompanyData{}, Imoveis: []domain.PropertyData{},
	}, nil
}
