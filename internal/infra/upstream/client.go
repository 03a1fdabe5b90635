// Package upstream is the HTTP client for the hotel REST API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"hotel-front/internal/pkg/metrics"
)

const (
	defaultTimeout          = 10 * time.Second
	errorBodyLimit    int64 = 4096
	outcomeOK               = "ok"
)

var errBaseURLRequired = errors.New("upstream base url is required")

// Client calls the hotel API. Each call gets its own timeout on top of the
// caller's context and is never retried.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	timeout    time.Duration
	metrics    *metrics.Recorder
	logger     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func WithMetrics(rec *metrics.Recorder) Option {
	return func(c *Client) {
		c.metrics = rec
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errBaseURLRequired
	}
	parsed, err := url.Parse(strings.TrimRight(trimmed, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse upstream base url: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := &Client{
		httpClient: &http.Client{},
		baseURL:    parsed,
		timeout:    timeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

type call struct {
	op     string
	method string
	path   string
	query  url.Values
	token  string
	body   any
}

// do performs one request and decodes a JSON response into out when out is
// non-nil and the response has a body.
func (c *Client) do(ctx context.Context, req call, out any) (err error) {
	start := time.Now()
	defer func() {
		outcome := outcomeOK
		if err != nil {
			outcome = string(KindOf(err))
		}
		c.metrics.ObserveUpstream(req.op, outcome, time.Since(start))
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL.JoinPath(req.path)
	if len(req.query) > 0 {
		target.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", req.op, err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target.String(), body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", req.op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		upErr := transportError(req.op, err)
		c.logger.Warn("upstream request failed",
			slog.String("op", req.op),
			slog.String("kind", string(upErr.Kind)),
			slog.String("error", err.Error()))
		return upErr
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		upErr := statusError(req.op, resp.StatusCode, errorDetail(raw))
		if upErr.Kind == KindServer {
			c.logger.Error("upstream server error",
				slog.String("op", req.op),
				slog.Int("status", resp.StatusCode))
		}
		return upErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return transportError(req.op, ctxErr)
		}
		return &Error{Kind: KindServer, Op: req.op, Status: resp.StatusCode, Detail: "malformed response body", Err: err}
	}
	return nil
}

// errorDetail pulls a human readable message out of an error body. The API
// answers with {"detail": "..."} or a field -> messages object.
func errorDetail(raw []byte) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	var withDetail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &withDetail); err == nil && withDetail.Detail != "" {
		return withDetail.Detail
	}

	var fields map[string][]string
	if err := json.Unmarshal(raw, &fields); err == nil && len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for _, field := range slices.Sorted(maps.Keys(fields)) {
			parts = append(parts, field+": "+strings.Join(fields[field], " "))
		}
		return strings.Join(parts, "; ")
	}

	if len(raw) > 200 {
		raw = raw[:200]
	}
	return string(raw)
}
