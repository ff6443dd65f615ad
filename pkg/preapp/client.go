// Package preapp is the client for the pre-application PDF endpoint. It is
// used by tooling that fetches a rendered contract and hands the raw bytes
// to the caller, performing the same decoding the browser would.
package preapp

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gowaveline.backend/pkg/logger"
)

var (
	ErrEmptyResponse = errors.New("empty response from pdf endpoint")
	ErrNoPDF         = errors.New("response contains no pdf data")
)

// minPlausiblePDFBytes is the size below which a decoded payload is almost
// certainly not a real document. Such payloads are still returned; the
// caller decides, we only warn.
const minPlausiblePDFBytes = 100

// GenerateRequest is the payload sent to the PDF endpoint
type GenerateRequest struct {
	IndustrySlug string                 `json:"industrySlug,omitempty"`
	FormData     map[string]interface{} `json:"formData"`
}

// generateResponse mirrors the endpoint's JSON envelope
type generateResponse struct {
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
	PDFBase64    string `json:"pdfBase64,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
}

// Result is a decoded contract
type Result struct {
	PDF          []byte
	BusinessName string
}

// Client calls the pre-application PDF endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given backend base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Generate requests a rendered contract and decodes it. Any transport
// failure, non-2xx status, malformed envelope, or missing pdf data is
// fatal. A suspiciously small decoded payload is returned with a warning.
func (c *Client) Generate(ctx context.Context, req *GenerateRequest) (*Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/pdf/generate-preapp", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call pdf endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read pdf response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pdf endpoint returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ErrEmptyResponse
	}

	var envelope generateResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode pdf response: %w", err)
	}
	if !envelope.Success {
		if envelope.Error != "" {
			return nil, fmt.Errorf("pdf generation failed: %s", envelope.Error)
		}
		return nil, errors.New("pdf generation failed")
	}
	if envelope.PDFBase64 == "" {
		return nil, ErrNoPDF
	}

	pdf, err := DecodePDF(envelope.PDFBase64)
	if err != nil {
		return nil, err
	}

	if len(pdf) < minPlausiblePDFBytes {
		logger.Warn(ctx, "decoded pdf is suspiciously small",
			zap.Int("bytes", len(pdf)),
			zap.String("business_name", envelope.BusinessName))
	}

	return &Result{
		PDF:          pdf,
		BusinessName: envelope.BusinessName,
	}, nil
}

// DecodePDF turns the endpoint's base64 field into raw bytes. The value
// may carry a data-URL prefix, and some producers emit unpadded base64,
// so padding is restored before decoding.
func DecodePDF(encoded string) ([]byte, error) {
	if idx := strings.Index(encoded, ";base64,"); idx >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[idx+len(";base64,"):]
	}
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, ErrNoPDF
	}

	if rem := len(encoded) % 4; rem != 0 {
		encoded += strings.Repeat("=", 4-rem)
	}

	pdf, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode pdf base64: %w", err)
	}
	return pdf, nil
}
