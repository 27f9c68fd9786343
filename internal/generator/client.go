// Package generator talks to the spreadsheet generation service and stores
// the workbook it returns.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"listfmt/internal/excel"
	"listfmt/internal/form"
	"listfmt/internal/logger"
)

const (
	DefaultEndpoint = "/api/generate-excel"
	FileName        = "customer_list_format.xlsx"

	// DefaultMaxPayload caps how much of a response body is read.
	DefaultMaxPayload int64 = 64 << 20
)

var (
	ErrStatus    = errors.New("generation service returned an error status")
	ErrMalformed = errors.New("generation service returned a malformed workbook")
	ErrTooLarge  = errors.New("generation service response exceeds the size limit")
)

// Result is a generated workbook.
type Result struct {
	Payload []byte
	Summary *excel.Summary
	// FileName is the name the service suggested, if any.
	FileName string
}

type Client struct {
	baseURL    string
	endpoint   string
	httpClient *http.Client
	maxPayload int64
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithMaxPayload sets the largest response body Generate accepts.
func WithMaxPayload(n int64) Option {
	return func(cl *Client) {
		if n > 0 {
			cl.maxPayload = n
		}
	}
}

func WithEndpoint(path string) Option {
	return func(cl *Client) {
		if path != "" {
			cl.endpoint = path
		}
	}
}

// New creates a client for the service at baseURL. No timeout is set; the
// caller's context decides how long a request may run.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{},
		maxPayload: DefaultMaxPayload,
	}
	for _, opt := range opts {
		opt(c)
	}
	if !strings.HasPrefix(c.endpoint, "/") {
		c.endpoint = "/" + c.endpoint
	}
	return c
}

// Generate posts the column configuration and returns the workbook. Transport
// failures, non-2xx statuses and bodies that are not a workbook all fail.
func (c *Client) Generate(ctx context.Context, req form.Request) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := c.baseURL + c.endpoint
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	logger.Info("Sending generation request",
		"url", url,
		"dynamic_columns", len(req.DynamicColumns),
		"custom_columns", len(req.CustomColumns))
	logger.Debug("Generation request body", "body", string(body))

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		logger.Error("Generation request failed", "error", err, "duration", time.Since(start))
		return nil, fmt.Errorf("failed to reach generation service: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, c.maxPayload+1))
	if err != nil {
		logger.Error("Failed to read generation response", "error", err)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if int64(len(payload)) > c.maxPayload {
		logger.Error("Generation response too large", "limit", c.maxPayload, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, c.maxPayload)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("Generation service rejected request",
			"status", resp.StatusCode,
			"body", truncate(string(payload), 512))
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	summary, err := excel.Inspect(payload)
	if err != nil {
		logger.Error("Generation response is not a workbook",
			"error", err,
			"content_type", resp.Header.Get("Content-Type"),
			"size", len(payload))
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	logger.Info("Received generated workbook",
		"size", len(payload),
		"sheet", summary.Sheet,
		"headers", len(summary.Headers),
		"duration", time.Since(start))

	return &Result{
		Payload:  payload,
		Summary:  summary,
		FileName: attachmentName(resp.Header.Get("Content-Disposition")),
	}, nil
}

// Ping checks that the service answers on its root path and returns its
// status message.
func (c *Client) Ping(ctx context.Context) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to reach generation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	var status struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", fmt.Errorf("failed to decode status: %w", err)
	}
	return status.Message, nil
}

func attachmentName(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
