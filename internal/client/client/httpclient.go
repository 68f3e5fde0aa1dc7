package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gophdrop/internal/client/models"
	"github.com/dmitrijs2005/gophdrop/internal/logging"
	"github.com/dmitrijs2005/gophdrop/internal/netx"
)

const (
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

// HTTPClient talks to the storage REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
	metrics *Metrics
}

type Option func(*HTTPClient)

// WithTimeout sets the per-request timeout of the underlying transport.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func WithMetrics(m *Metrics) Option {
	return func(c *HTTPClient) { c.metrics = m }
}

// WithHTTPClient replaces the transport. Apply it before WithTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. http://localhost:5000/api).
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "api_client")
	return c, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// Ping probes GET /health.
func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, "health", http.MethodGet, "/health", nil, nil, -1)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

// PingDatabase probes GET /health/database.
func (c *HTTPClient) PingDatabase(ctx context.Context) error {
	resp, err := c.do(ctx, "database health", http.MethodGet, "/health/database", nil, nil, -1)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

func (c *HTTPClient) ListFiles(ctx context.Context) ([]models.FileRecord, error) {
	const op = "list files"

	resp, err := c.do(ctx, op, http.MethodGet, "/files", nil, jsonAccept(), -1)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	files, err := decodeData[[]models.FileRecord](op, resp.Body)
	if err != nil {
		return nil, err
	}
	if files == nil {
		files = []models.FileRecord{}
	}
	return files, nil
}

func (c *HTTPClient) GetFile(ctx context.Context, id string) (*models.FileRecord, error) {
	const op = "get file"

	resp, err := c.do(ctx, op, http.MethodGet, filePath(id), nil, jsonAccept(), -1)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	f, err := decodeData[*models.FileRecord](op, resp.Body)
	if err != nil {
		return nil, err
	}
	if f == nil || f.ID == "" {
		return nil, fmt.Errorf("%s: empty record in response: %w", op, ErrServer)
	}
	return f, nil
}

// UploadFile posts data as multipart field "file". onProgress, if set, is
// called from the transport goroutine while the body is being sent.
// The returned record is nil when the server answers with an empty body.
func (c *HTTPClient) UploadFile(ctx context.Context, data []byte, filename string, onProgress ProgressFunc) (*models.FileRecord, error) {
	const op = "upload file"

	body, contentType, err := netx.MultipartFile("file", filename, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	size := int64(body.Len())

	h := jsonAccept()
	h.Set("Content-Type", contentType)

	resp, err := c.do(ctx, op, http.MethodPost, "/files", netx.NewProgressReader(body, size, onProgress), h, size)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w: %w", op, ErrNetwork, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	return decodeData[*models.FileRecord](op, bytes.NewReader(raw))
}

// DownloadFile returns the raw file body. The caller must close it.
func (c *HTTPClient) DownloadFile(ctx context.Context, id string) (io.ReadCloser, error) {
	resp, err := c.do(ctx, "download file", http.MethodGet, filePath(id)+"/download", nil, nil, -1)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *HTTPClient) DeleteFile(ctx context.Context, id string) error {
	resp, err := c.do(ctx, "delete file", http.MethodDelete, filePath(id), nil, jsonAccept(), -1)
	if err != nil {
		return err
	}
	drain(resp)
	return nil
}

func (c *HTTPClient) DownloadURL(id string) string {
	return c.baseURL + filePath(id) + "/download"
}

func (c *HTTPClient) ViewURL(id string) string {
	return c.baseURL + filePath(id) + "/view"
}

// do sends one request and maps transport failures and non-2xx statuses to
// the package errors. On success the caller owns resp.Body.
func (c *HTTPClient) do(ctx context.Context, op, method, path string, body io.Reader, h http.Header, contentLength int64) (*http.Response, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	if contentLength >= 0 {
		req.ContentLength = contentLength
	}
	for k, v := range h {
		req.Header[k] = v
	}
	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)

	log := c.log.With("op", op, "request_id", reqID)
	log.Debug(ctx, "api request", "method", method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(op, start, ErrNetwork)
		log.Error(ctx, "api request failed", "error", err)
		return nil, fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
	}

	log.Debug(ctx, "api response", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := readAPIError(op, resp)
		c.metrics.observe(op, start, apiErr)
		log.Error(ctx, "api response error", "status", resp.StatusCode, "message", apiErr.Message)
		return nil, apiErr
	}

	c.metrics.observe(op, start, nil)
	return resp, nil
}

func readAPIError(op string, resp *http.Response) *APIError {
	defer resp.Body.Close()

	apiErr := &APIError{Op: op, StatusCode: resp.StatusCode, Kind: kindForStatus(resp.StatusCode)}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return apiErr
	}

	var env models.Envelope[json.RawMessage]
	if json.Unmarshal(raw, &env) == nil && (env.Message != "" || env.Error != "") {
		apiErr.Message = env.Message
		if apiErr.Message == "" {
			apiErr.Message = env.Error
		}
		return apiErr
	}

	msg := string(raw)
	if len(msg) > 200 {
		msg = msg[:200]
	}
	apiErr.Message = msg
	return apiErr
}

// decodeData decodes either a bare JSON payload or the {"data": ...}
// envelope the storage API usually wraps it in.
func decodeData[T any](op string, r io.Reader) (T, error) {
	var zero T

	raw, err := io.ReadAll(r)
	if err != nil {
		return zero, fmt.Errorf("%s: read body: %w: %w", op, ErrNetwork, err)
	}
	raw = bytes.TrimSpace(raw)

	if len(raw) > 0 && raw[0] == '{' {
		var env models.Envelope[json.RawMessage]
		if json.Unmarshal(raw, &env) == nil && env.Data != nil {
			raw = env.Data
		}
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, fmt.Errorf("%s: decode response: %w: %w", op, ErrServer, err)
	}
	return out, nil
}

func filePath(id string) string {
	return "/files/" + url.PathEscape(id)
}

func jsonAccept() http.Header {
	h := make(http.Header)
	h.Set("Accept", "application/json")
	return h
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
}
