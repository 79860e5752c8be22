package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docbiz/internal/domain"
	"docbiz/internal/handler"
	"docbiz/internal/port"
	"docbiz/internal/service"
)

// memoryRepo is a minimal in-memory port.StateRepository for handler tests.
type memoryRepo struct {
	docs     []domain.ProcessedDocument
	settings map[string]string
}

var _ port.StateRepository = (*memoryRepo)(nil)

func (m *memoryRepo) LoadDocuments(ctx context.Context) ([]domain.ProcessedDocument, error) {
	return append([]domain.ProcessedDocument{}, m.docs...), nil
}

func (m *memoryRepo) SaveDocuments(ctx context.Context, docs []domain.ProcessedDocument) error {
	m.docs = append([]domain.ProcessedDocument{}, docs...)
	return nil
}

func (m *memoryRepo) ClearDocuments(ctx context.Context) error {
	m.docs = nil
	return nil
}

func (m *memoryRepo) GetSetting(ctx context.Context, key string) (string, error) {
	return m.settings[key], nil
}

func (m *memoryRepo) SetSetting(ctx context.Context, key, value string) error {
	if m.settings == nil {
		m.settings = map[string]string{}
	}
	m.settings[key] = value
	return nil
}

func newDocumentRouter(t *testing.T) (*gin.Engine, service.StoreService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := service.NewStoreService(&memoryRepo{})
	require.NoError(t, store.Load(context.Background()))

	h := handler.NewDocumentHandler(store)
	r := gin.New()
	docs := r.Group("/api/v1/documents")
	docs.GET("", h.List)
	docs.DELETE("", h.ClearAll)
	docs.DELETE("/:id", h.Delete)
	docs.POST("/:id/clients", h.AddClient)
	docs.PUT("/:id/clients/:entityId", h.UpdateClient)
	docs.DELETE("/:id/clients/:entityId", h.DeleteClient)
	return r, store
}

func seedDocument(t *testing.T, store service.StoreService) domain.ProcessedDocument {
	t.Helper()
	doc := domain.ProcessedDocument{
		ID:        domain.NewID(),
		FileName:  "contrato.pdf",
		FileType:  "application/pdf",
		Timestamp: "2026-08-28T12:00:00Z",
		Clientes:  []domain.ClientData{{ID: domain.NewID(), NomeCompleto: "João da Silva"}},
	}
	require.NoError(t, store.Append(context.Background(), doc))
	return store.List("")[0]
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDocumentHandler_List(t *testing.T) {
	r, store := newDocumentRouter(t)
	seedDocument(t, store)

	w := doRequest(r, http.MethodGet, "/api/v1/documents", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                       `json:"success"`
		Data    []domain.ProcessedDocument `json:"data"`
		Meta    struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "contrato.pdf", resp.Data[0].FileName)
	assert.Equal(t, 1, resp.Meta.Total)
}

func TestDocumentHandler_List_Filtered(t *testing.T) {
	r, store := newDocumentRouter(t)
	seedDocument(t, store)

	w := doRequest(r, http.MethodGet, "/api/v1/documents?q=silva", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "contrato.pdf")

	w = doRequest(r, http.MethodGet, "/api/v1/documents?q=inexistente", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []domain.ProcessedDocument `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}

func TestDocumentHandler_ClearAll_RequiresConfirmation(t *testing.T) {
	r, store := newDocumentRouter(t)
	seedDocument(t, store)

	w := doRequest(r, http.MethodDelete, "/api/v1/documents", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CONFIRMATION_REQUIRED")
	assert.Equal(t, 1, store.Count())

	w = doRequest(r, http.MethodDelete, "/api/v1/documents?confirm=true", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, store.Count())
}

func TestDocumentHandler_ClearAll_EmptyStoreIsNoOp(t *testing.T) {
	r, store := newDocumentRouter(t)

	w := doRequest(r, http.MethodDelete, "/api/v1/documents?confirm=true", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cleared":true`)
	assert.Zero(t, store.Count())
}

func TestDocumentHandler_AddClient(t *testing.T) {
	r, store := newDocumentRouter(t)
	doc := seedDocument(t, store)

	w := doRequest(r, http.MethodPost, "/api/v1/documents/"+doc.ID+"/clients", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data domain.ClientData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.ID)
	assert.Equal(t, "Outro", resp.Data.TipoCliente)
	assert.Len(t, store.List("")[0].Clientes, 2)
}

func TestDocumentHandler_AddClient_UnknownDocument(t *testing.T) {
	r, _ := newDocumentRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/documents/missing/clients", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "DOCUMENT_NOT_FOUND")
}

func TestDocumentHandler_UpdateClient_PathIDWins(t *testing.T) {
	r, store := newDocumentRouter(t)
	doc := seedDocument(t, store)
	clientID := doc.Clientes[0].ID

	body := `{"id":"spoofed","nomeCompleto":"João Atualizado"}`
	w := doRequest(r, http.MethodPut, "/api/v1/documents/"+doc.ID+"/clients/"+clientID, body)
	require.Equal(t, http.StatusOK, w.Code)

	got := store.List("")[0].Clientes[0]
	assert.Equal(t, clientID, got.ID)
	assert.Equal(t, "João Atualizado", got.NomeCompleto)
}

func TestDocumentHandler_DeleteClient(t *testing.T) {
	r, store := newDocumentRouter(t)
	doc := seedDocument(t, store)

	w := doRequest(r, http.MethodDelete, "/api/v1/documents/"+doc.ID+"/clients/"+doc.Clientes[0].ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.List("")[0].Clientes)
}
