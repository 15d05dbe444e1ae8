// Package client provides the HTTP adapter for the remote PDF analyzer service.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"pdf-analyzer-client/internal/domain"
	apperrors "pdf-analyzer-client/pkg/errors"

	"github.com/google/uuid"
)

// DefaultBaseURL is the analyzer's API root when none is configured.
const DefaultBaseURL = "http://localhost:5000/api/v1"

const requestIDHeader = "X-Request-ID"

// AnalyzerClient implements domain.AnalyzerAPI over HTTP
type AnalyzerClient struct {
	baseURL    string
	httpClient *http.Client
	logger     domain.Logger
}

// NewAnalyzerClient creates a client for the analyzer API rooted at baseURL.
// A zero timeout leaves requests unbounded.
func NewAnalyzerClient(baseURL string, timeout time.Duration, logger domain.Logger) *AnalyzerClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &AnalyzerClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// BaseURL returns the API root used for every request
func (c *AnalyzerClient) BaseURL() string {
	return c.baseURL
}

// CheckConnectivity confirms the analyzer backend is reachable
func (c *AnalyzerClient) CheckConnectivity(ctx context.Context) (*domain.ConnectivityResponse, error) {
	var out domain.ConnectivityResponse
	if err := c.doJSON(ctx, http.MethodGet, "/test_connection", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload submits a PDF as multipart form data in the "file" field
func (c *AnalyzerClient) Upload(ctx context.Context, filename string, data []byte) (*domain.UploadResponse, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     "file",
		"filename": filename,
	}))
	partHeader.Set("Content-Type", "application/pdf")

	part, err := writer.CreatePart(partHeader)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build upload request", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, apperrors.NewInternalError("failed to build upload request", err)
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.NewInternalError("failed to build upload request", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/upload_pdf", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, respBody, err := c.send(req)
	if err != nil {
		return nil, err
	}

	var out domain.UploadResponse
	if err := decode(respBody, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analyze triggers component extraction for an uploaded document
func (c *AnalyzerClient) Analyze(ctx context.Context, documentID int64) (*domain.AnalyzeResponse, error) {
	var out domain.AnalyzeResponse
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/analyze_pdf/%d", documentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FetchResults retrieves the extracted components for a document
func (c *AnalyzerClient) FetchResults(ctx context.Context, documentID int64) (*domain.AnalysisResults, error) {
	var out domain.AnalysisResults
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/analysis_results/%d", documentID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health probes the analyzer's database connectivity
func (c *AnalyzerClient) Health(ctx context.Context) (*domain.HealthResponse, error) {
	var out domain.HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportResults downloads the analysis results of a document as a file
func (c *AnalyzerClient) ExportResults(ctx context.Context, documentID int64, format domain.ExportFormat) (*domain.ExportFile, error) {
	if format != domain.ExportFormatJSON && format != domain.ExportFormatCSV {
		return nil, apperrors.NewValidationError(domain.ErrUnsupportedExportFormat.Error() + ": " + string(format))
	}

	path := fmt.Sprintf("/analysis_results/%d/export?format=%s", documentID, url.QueryEscape(string(format)))
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	header, body, err := c.send(req)
	if err != nil {
		return nil, err
	}

	file := &domain.ExportFile{
		Filename:    fmt.Sprintf("analysis_%d.%s", documentID, format),
		ContentType: header.Get("Content-Type"),
		Data:        body,
	}
	if _, params, err := mime.ParseMediaType(header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		file.Filename = params["filename"]
	}
	return file, nil
}

func (c *AnalyzerClient) doJSON(ctx context.Context, method, path string, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, nil)
	if err != nil {
		return err
	}
	_, body, err := c.send(req)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *AnalyzerClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	return req, nil
}

// send performs the request and returns the body of a 2xx response.
// Any other outcome is normalized into an *apperrors.AppError.
func (c *AnalyzerClient) send(req *http.Request) (http.Header, []byte, error) {
	requestID := req.Header.Get(requestIDHeader)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Analyzer request failed", "method", req.Method, "url", req.URL.String(), "request_id", requestID, "error", err)
		return nil, nil, apperrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Warn("Failed to read analyzer response", "url", req.URL.String(), "request_id", requestID, "error", err)
		return nil, nil, apperrors.NewTransportError(err)
	}

	c.logger.Debug("Analyzer request completed",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, apperrors.NewServerError(resp.StatusCode, serverMessage(body))
	}
	return resp.Header, body, nil
}

func decode(body []byte, out interface{}) error {
	if err := json.Unmarshal(body, out); err != nil {
		return apperrors.NewTransportError(fmt.Errorf("invalid response from analyzer: %w", err))
	}
	return nil
}

// serverMessage extracts the error text from an analyzer error body.
func serverMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
