// Package http provides an HTTP client for the transcript backend and the
// browser UI server that fronts it.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/earnings"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for backend requests. Ingestion
// fetches and indexes a full transcript, so it is generous.
const DefaultTimeout = 60 * time.Second

// Backend endpoint paths.
const (
	ingestPath      = "/ingest/ingest-in"
	listPath        = "/ingest/ingest-out/"
	viewPath        = "/ingest/view/"
	searchPath      = "/search/query"
	askPath         = "/qna/ask"
	maxErrorBodyLen = 64 << 10
)

// Ensure Client implements the backend services at compile time.
var (
	_ earnings.IngestService = (*Client)(nil)
	_ earnings.SearchService = (*Client)(nil)
	_ earnings.Asker         = (*Client)(nil)
)

// Client calls the transcript backend's REST API.
// It is safe for concurrent use.
type Client struct {
	baseURL     string
	client      *http.Client
	timeout     time.Duration
	limiter     *rate.Limiter
	retryDelays []time.Duration
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for backend requests.
// Defaults to DefaultTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient sets the underlying HTTP client. Its timeout is left as is.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimit limits outgoing requests to rps requests per second.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithRetryDelays sets the backoff delays used when retrying idempotent
// requests that failed because the backend was unavailable.
func WithRetryDelays(delays []time.Duration) Option {
	return func(c *Client) {
		c.retryDelays = delays
	}
}

// WithLogger sets the logger used to report retries.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Client for the backend at baseURL.
// Trailing slashes in baseURL are ignored.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		timeout:     DefaultTimeout,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// URL returns the absolute URL for a backend path.
func (c *Client) URL(path string) string {
	return c.baseURL + path
}

// Ingest fetches and indexes a transcript on the backend.
func (c *Client) Ingest(ctx context.Context, req earnings.IngestRequest) (*earnings.Ingestion, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out earnings.Ingestion
	if err := c.do(ctx, http.MethodPost, ingestPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTranscripts returns the transcripts stored for a company.
func (c *Client) ListTranscripts(ctx context.Context, companyName string) (*earnings.CompanyTranscripts, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, earnings.Errorf(earnings.EINVALID, "Company name is required.")
	}

	var out earnings.CompanyTranscripts
	if err := c.get(ctx, listPath+url.PathEscape(companyName), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindTranscript retrieves a transcript by ID.
func (c *Client) FindTranscript(ctx context.Context, id string) (*earnings.Transcript, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, earnings.Errorf(earnings.EINVALID, "Transcript id is missing.")
	}

	var out earnings.Transcript
	if err := c.get(ctx, viewPath+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search runs a full-text query over transcripts.
func (c *Client) Search(ctx context.Context, req earnings.SearchRequest) (*earnings.SearchResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out earnings.SearchResult
	if err := c.do(ctx, http.MethodPost, searchPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Ask answers a question using the backend's retrieval-augmented generation.
func (c *Client) Ask(ctx context.Context, req earnings.QuestionRequest) (*earnings.Answer, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out earnings.Answer
	if err := c.do(ctx, http.MethodPost, askPath, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get performs an idempotent GET, retrying while the backend is unavailable.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return withRetry(ctx, c.retryDelays, func() error {
		return c.do(ctx, http.MethodGet, path, nil, out)
	}, func(attempt int, err error) {
		if c.logger != nil {
			c.logger.Warn("retrying backend request", "path", path, "attempt", attempt, "err", err)
		}
	})
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(path), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return earnings.Errorf(earnings.EUNAVAILABLE, "Backend unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return readError(resp.StatusCode, b)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
