package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jonathan/resume-builder/internal/metrics"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultTimeout bounds every call to the rendering service.
const DefaultTimeout = 30 * time.Second

// maxErrorBody caps how much of a failed response is read for its error message.
const maxErrorBody = 64 << 10

// Options configures the client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *slog.Logger
	Observer   metrics.Observer
}

// DefaultOptions returns sensible defaults for a local rendering service.
func DefaultOptions() *Options {
	return &Options{
		BaseURL: "http://localhost:5001",
		Timeout: DefaultTimeout,
	}
}

// Client is the HTTP transport to the rendering service. It does not hold any
// session state.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
	observer   metrics.Observer
}

// NewClient creates a client. Zero-valued options fall back to defaults.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	defaults := DefaultOptions()

	c := &Client{
		baseURL:    opts.BaseURL,
		timeout:    opts.Timeout,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		observer:   opts.Observer,
	}
	if c.baseURL == "" {
		c.baseURL = defaults.BaseURL
	}
	if c.timeout <= 0 {
		c.timeout = defaults.Timeout
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.observer == nil {
		c.observer = metrics.NopObserver{}
	}
	return c
}

// BaseURL returns the configured rendering service URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-request bound.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// GeneratePDF posts the document and returns the rendered PDF bytes.
// Failures are always *Error.
func (c *Client) GeneratePDF(ctx context.Context, doc types.ResumeDocument) ([]byte, error) {
	start := time.Now()
	data, err := c.generatePDF(ctx, doc)
	c.record(metrics.OperationGenerate, start, err)
	if err != nil {
		return nil, err
	}
	c.observer.RecordArtifact(len(data))
	return data, nil
}

func (c *Client) generatePDF(ctx context.Context, doc types.ResumeDocument) ([]byte, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, unknownError(fmt.Errorf("failed to encode resume: %w", err))
	}

	endpoint := BuildEndpoint(c.baseURL, PathGeneratePDF)
	body, err := c.do(ctx, http.MethodPost, endpoint, payload, PDFContentType)
	if err != nil {
		return nil, err
	}

	detected := mimetype.Detect(body)
	if !detected.Is(PDFContentType) {
		return nil, unknownError(fmt.Errorf("unexpected response content type %s", detected.String()))
	}
	return body, nil
}

// FetchSampleData retrieves the example resume. The payload must satisfy the
// resume document schema; the result has its list invariants restored.
func (c *Client) FetchSampleData(ctx context.Context) (types.ResumeDocument, error) {
	start := time.Now()
	doc, err := c.fetchSampleData(ctx)
	c.record(metrics.OperationSampleData, start, err)
	return doc, err
}

func (c *Client) fetchSampleData(ctx context.Context) (types.ResumeDocument, error) {
	endpoint := BuildEndpoint(c.baseURL, PathSampleData)
	body, err := c.do(ctx, http.MethodGet, endpoint, nil, "application/json")
	if err != nil {
		return types.ResumeDocument{}, err
	}

	if err := schemas.ValidateResumeDocument(body); err != nil {
		return types.ResumeDocument{}, unknownError(fmt.Errorf("invalid sample data: %w", err))
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return types.ResumeDocument{}, unknownError(fmt.Errorf("failed to decode sample data: %w", err))
	}
	doc.Normalize()
	return doc, nil
}

// do performs one request bounded by the client timeout and returns the body
// of a 2xx response.
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, accept string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, unknownError(fmt.Errorf("failed to create request: %w", err))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", accept)

	c.logger.Debug("rendering service request",
		slog.String("method", method),
		slog.String("url", endpoint),
		slog.Int("bytes", len(payload)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err, c.baseURL, c.timeout)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("rendering service response",
		slog.String("url", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.String("content_type", resp.Header.Get("Content-Type")),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newServerError(resp.StatusCode, errBody)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, classifyTransportError(err, c.baseURL, c.timeout)
		}
		// The response started but was cut off
		return nil, &Error{Kind: KindNoResponse, Message: noResponseMessage, Cause: err}
	}
	return body, nil
}

func (c *Client) record(operation string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = string(KindUnknown)
		if genErr, ok := err.(*Error); ok {
			outcome = string(genErr.Kind)
		}
	}
	c.observer.RecordRequest(operation, time.Since(start), outcome)
}
