package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"docbiz/internal/config"
	"docbiz/internal/domain"
	"docbiz/internal/extractor"
	"docbiz/internal/port"
)

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Client implements port.DocumentExtractor against Google's Gemini API.
type Client struct {
	model    string
	endpoint string
	http     *http.Client
	schema   map[string]any
}

// NewClient creates a Gemini-backed document extractor.
func NewClient(cfg *config.GeminiConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates an extractor pointing at a custom API endpoint (for testing).
func NewClientWithEndpoint(cfg *config.GeminiConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.GeminiConfig, endpoint string) *Client {
	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash-preview-04-17"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	if endpoint == "" {
		endpoint = cfg.Endpoint
	}
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", apiBaseURL, model)
	}
	return &Client{
		model:    model,
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		schema:   extractor.BuildExtractionJSONSchema(),
	}
}

// Extract sends one generation request for the given file content and parses
// the model's JSON answer into an entity bundle with locally generated IDs.
func (c *Client) Extract(ctx context.Context, input port.ExtractInput) (*domain.ExtractedData, error) {
	if strings.TrimSpace(input.APIKey) == "" {
		return nil, domain.ErrMissingAPIKey
	}

	docPart, err := buildDocumentPart(input)
	if err != nil {
		return nil, err
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					docPart,
					{"text": extractor.BuildExtractionPrompt()},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"temperature":      0.1,
			"topK":             32,
			"topP":             0.9,
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", input.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: calling gemini API: %v", domain.ErrExtractionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrExtractionFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		if isAPIKeyRejection(respBody) {
			return nil, fmt.Errorf("%w (status %d)", domain.ErrInvalidAPIKey, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: gemini API error (status %d): %s",
			domain.ErrExtractionFailed, resp.StatusCode, truncate(string(respBody), 300))
	}

	return c.parseResponse(respBody, input.FileName)
}

// buildDocumentPart renders the file content as a Gemini content part:
// inline text for textual media types, inline base64 data otherwise.
func buildDocumentPart(input port.ExtractInput) (map[string]interface{}, error) {
	if strings.HasPrefix(input.ContentType, "text/") {
		return map[string]interface{}{"text": input.Content}, nil
	}
	// Binary payloads arrive as data:<mime>;base64,<data> strings.
	_, data, found := strings.Cut(input.Content, "base64,")
	if !found || data == "" {
		return nil, fmt.Errorf("%w: non-textual content for %s is missing its base64 data marker",
			domain.ErrInvalidPayload, input.FileName)
	}
	return map[string]interface{}{
		"inline_data": map[string]interface{}{
			"mime_type": input.ContentType,
			"data":      data,
		},
	}, nil
}

// isAPIKeyRejection detects a credential rejection via substring match on the
// service's error body, since the API has no stable error code for it.
func isAPIKeyRejection(body []byte) bool {
	s := string(body)
	return strings.Contains(s, "API key not valid") ||
		strings.Contains(s, "API_KEY_INVALID") ||
		strings.Contains(s, "API key expired")
}

// geminiResponse models the Gemini API response envelope.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

func (c *Client) parseResponse(body []byte, fileName string) (*domain.ExtractedData, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: unmarshaling response envelope: %v", domain.ErrUnparseableResponse, err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty response from API", domain.ErrUnparseableResponse)
	}

	text := extractor.StripFence(resp.Candidates[0].Content.Parts[0].Text)

	// Presence check first, so a missing top-level array can be surfaced as a
	// diagnostic instead of failing.
	var present map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &present); err != nil {
		log.Printf("gemini.Client: unparseable model output for %s: %v (raw: %s)",
			fileName, err, truncate(text, 500))
		return nil, fmt.Errorf("%w: %v", domain.ErrUnparseableResponse, err)
	}

	if err := extractor.ValidateJSONAgainstSchema(c.schema, []byte(text)); err != nil {
		log.Printf("gemini.Client: model output for %s failed schema validation: %v (raw: %s)",
			fileName, err, truncate(text, 500))
		return nil, fmt.Errorf("%w: %v", domain.ErrUnparseableResponse, err)
	}

	var payload struct {
		Clientes []domain.ClientData   `json:"clientes"`
		Empresas []domain.CompanyData  `json:"empresas"`
		Imoveis  []domain.PropertyData `json:"imoveis"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnparseableResponse, err)
	}

	for _, key := range []string{"clientes", "empresas", "imoveis"} {
		if _, ok := present[key]; !ok {
			log.Printf("gemini.Client: response for %s is missing the %q array; treating as empty", fileName, key)
		}
	}

	// Identifiers are always assigned locally; the service never supplies them.
	out := &domain.ExtractedData{
		Clientes: payload.Clientes,
		Empresas: payload.Empresas,
		Imoveis:  payload.Imoveis,
	}
	if out.Clientes == nil {
		out.Clientes = []domain.ClientData{}
	}
	if out.Empresas == nil {
		out.Empresas = []domain.CompanyData{}
	}
	if out.Imoveis == nil {
		out.Imoveis = []domain.PropertyData{}
	}
	for i := range out.Clientes {
		out.Clientes[i].ID = domain.NewID()
	}
	for i := range out.Empresas {
		out.Empresas[i].ID = domain.NewID()
	}
	for i := range out.Imoveis {
		out.Imoveis[i].ID = domain.NewID()
	}

	return out, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
