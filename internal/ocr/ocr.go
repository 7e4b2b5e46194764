// Package ocr extracts text from answer-sheet images via an external
// OCR service.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Extractor turns an uploaded image into raw text.
type Extractor interface {
	Extract(ctx context.Context, image []byte) (string, error)
}

// HTTPExtractor calls a sidecar OCR service over HTTP. The service
// accepts the raw image body on POST /extract and replies with
// {"text": "..."}.
type HTTPExtractor struct {
	baseURL string
	client  *http.Client
}

// HTTPOption configures an HTTPExtractor.
type HTTPOption func(*HTTPExtractor)

// WithHTTPClient overrides the HTTP client, mainly for tests.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(e *HTTPExtractor) {
		e.client = client
	}
}

func NewHTTPExtractor(baseURL string, opts ...HTTPOption) *HTTPExtractor {
	e := &HTTPExtractor{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type extractResponse struct {
	Text string `json:"text"`
}

func (e *HTTPExtractor) Extract(ctx context.Context, image []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		e.baseURL+"/extract", bytes.NewReader(image))
	if err != nil {
		return "", fmt.Errorf("creating OCR request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling OCR service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("OCR service returned %d: %s", resp.StatusCode, body)
	}

	var out extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding OCR response: %w", err)
	}
	return out.Text, nil
}

// MockExtractor returns a fixed result, for tests.
type MockExtractor struct {
	Text string
	Err  error

	LastImage []byte
}

func (m *MockExtractor) Extract(_ context.Context, image []byte) (string, error) {
	m.LastImage = image
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}
