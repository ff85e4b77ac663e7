package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/aretw0/docframe/internal/logging"
	"github.com/aretw0/docframe/pkg/content"
	"github.com/aretw0/docframe/pkg/observability"
	"github.com/aretw0/docframe/pkg/output"
	"github.com/aretw0/docframe/pkg/wire"
)

const (
	// DefaultURL is used when no base URL is configured.
	DefaultURL = "http://localhost:8080"

	// APIPath is the engine endpoint, relative to the base URL.
	APIPath = "/api/docframe"

	// maxErrorBody bounds the body excerpt kept in a StatusError.
	maxErrorBody = 512
)

// Result is a rendered document.
type Result struct {
	Data        []byte
	ContentType string
}

// Client talks to one rendering engine. It is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
	metrics *observability.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the access token sent as the "token" query parameter.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithMetrics records every request on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a client for the engine at baseURL. An empty baseURL means DefaultURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the full URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.baseURL + APIPath + "?token=" + url.QueryEscape(c.token)
}

// Convert renders e, usually a *content.Document, in the given format.
// Parameters are validated before anything is sent.
func (c *Client) Convert(ctx context.Context, e content.Element, format output.Format, params output.Params) (*Result, error) {
	if err := format.Validate(params); err != nil {
		return nil, fmt.Errorf("docframe: %w", err)
	}

	node, err := e.ToWire()
	if err != nil {
		return nil, fmt.Errorf("docframe: %w", err)
	}
	data, err := wire.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("docframe: encode: %w", err)
	}

	body, contentType, err := encodeForm(format, params, data)
	if err != nil {
		return nil, fmt.Errorf("docframe: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), body)
	if err != nil {
		return nil, fmt.Errorf("docframe: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	c.logger.Debug("Sending document", "format", format, "bytes", len(data))
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(string(format), 0, len(data), time.Since(start))
		c.logger.Error("Docframe request failed", "format", format, "error", err)
		return nil, fmt.Errorf("docframe: request: %w", err)
	}
	defer resp.Body.Close()

	c.metrics.ObserveRequest(string(format), resp.StatusCode, len(data), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn("Docframe rejected document", "format", format, "status", resp.StatusCode)
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(excerpt))}
	}

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("docframe: read response: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("docframe: %w", ErrEmptyResponse)
	}

	c.logger.Debug("Document rendered", "format", format, "bytes", len(out), "duration", time.Since(start))
	return &Result{Data: out, ContentType: resp.Header.Get("Content-Type")}, nil
}

// ConvertToPDF renders e as PDF.
func (c *Client) ConvertToPDF(ctx context.Context, e content.Element) (*Result, error) {
	return c.Convert(ctx, e, output.PDF, nil)
}

// encodeForm builds the multipart body. The format always wins over a
// parameter of the same name.
func encodeForm(format output.Format, params output.Params, data []byte) (io.Reader, string, error) {
	meta := make(map[string]any, len(params)+1)
	for k, v := range params {
		meta[k] = v
	}
	meta["format"] = format

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, "", fmt.Errorf("encode meta: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := writePart(mw, "meta", "meta", "application/json", metaJSON); err != nil {
		return nil, "", err
	}
	if err := writePart(mw, "proto-data", "data.proto", "application/protobuf", data); err != nil {
		return nil, "", err
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

func writePart(mw *multipart.Writer, name, filename, contentType string, body []byte) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, name, filename))
	h.Set("Content-Type", contentType)
	pw, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create part %s: %w", name, err)
	}
	if _, err := pw.Write(body); err != nil {
		return fmt.Errorf("write part %s: %w", name, err)
	}
	return nil
}
