package gateway_http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/bankedge/gateway/internal/pkg/apperr"
	httpclient "github.com/bankedge/gateway/internal/pkg/http"
	"github.com/bankedge/gateway/internal/pkg/models"
)

// passthroughHeaders are downstream response headers forwarded to the caller
var passthroughHeaders = []string{"Content-Type", "Content-Disposition", "Content-Length"}

// KycClient proxies document operations to the downstream KYC service
type KycClient struct {
	client *httpclient.Client
}

// NewKycClient creates a new KYC service client
func NewKycClient(cfg models.ServicesConfig) *KycClient {
	timeout := time.Duration(cfg.KYCTimeout) * time.Second
	return &KycClient{
		client: httpclient.NewClient(strings.TrimRight(cfg.KYCServiceURL, "/"), timeout),
	}
}

// UploadDocument forwards a document as multipart form data
func (g *KycClient) UploadDocument(ctx context.Context, authHeader string, upload *models.DocumentUpload) (*models.ProxyResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("name", upload.DocumentType); err != nil {
		return nil, fmt.Errorf("failed to write form field: %w", err)
	}

	part, err := writer.CreateFormFile("file", upload.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(upload.Content); err != nil {
		return nil, fmt.Errorf("failed to write file content: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	return g.do(ctx, nethttp.MethodPost, "/api/kyc/upload", authHeader, &buf, writer.FormDataContentType())
}

// ListDocuments fetches the caller's document listing
func (g *KycClient) ListDocuments(ctx context.Context, authHeader string) (*models.ProxyResponse, error) {
	return g.do(ctx, nethttp.MethodGet, "/api/kyc/my-documents", authHeader, nil, "")
}

// DownloadDocument fetches a stored document's binary content
func (g *KycClient) DownloadDocument(ctx context.Context, authHeader string, documentID int64) (*models.ProxyResponse, error) {
	endpoint := fmt.Sprintf("/api/kyc/document/%d/download", documentID)
	return g.do(ctx, nethttp.MethodGet, endpoint, authHeader, nil, "")
}

// DeleteDocument removes a stored document
func (g *KycClient) DeleteDocument(ctx context.Context, authHeader string, documentID int64) (*models.ProxyResponse, error) {
	endpoint := fmt.Sprintf("/api/kyc/document/%d", documentID)
	return g.do(ctx, nethttp.MethodDelete, endpoint, authHeader, nil, "")
}

// do performs the downstream call, propagating the caller's credential
// unchanged and translating failures to upstream errors. Downstream
// rejections never become authentication failures of this gateway.
func (g *KycClient) do(ctx context.Context, method, endpoint, authHeader string, body io.Reader, contentType string) (*models.ProxyResponse, error) {
	url := g.client.BaseURL + endpoint

	req, err := nethttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", authHeader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream("KYC service unreachable", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Upstream("Failed to read KYC service response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.Upstream(
			fmt.Sprintf("KYC service error (%d): %s", resp.StatusCode, summarize(respBody)),
			fmt.Errorf("downstream status %d", resp.StatusCode))
	}

	headers := make(map[string]string, len(passthroughHeaders))
	for _, name := range passthroughHeaders {
		if value := resp.Header.Get(name); value != "" {
			headers[name] = value
		}
	}

	return &models.ProxyResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Headers:     headers,
		Body:        respBody,
	}, nil
}

// summarize trims a downstream body to a short diagnostic string
func summarize(body []byte) string {
	const maxLen = 256
	text := strings.TrimSpace(string(body))
	if len(text) > maxLen {
		return text[:maxLen]
	}
	return text
}
