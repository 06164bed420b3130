package pubchem

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/trace"
)

const API_BASE_URL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

const defaultTimeout = 30 * time.Second

// ========================= CLIENT =========================

// Client issues PUG REST requests. It holds no per-request state and is safe
// for concurrent use once constructed.
type Client struct {
	http    *resty.Client
	baseURL string
	logger  *slog.Logger
	tracer  trace.Tracer

	httpClient     *http.Client
	timeout        time.Duration
	timeoutSet     bool
	userAgent      string
	tracerProvider trace.TracerProvider
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another PUG REST root, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying *http.Client (and its transport).
// Its Timeout is left alone unless WithTimeout is also given.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout bounds each request. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
		c.timeoutSet = true
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracerProvider sets where request spans go. The global provider is
// used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracerProvider = tp
	}
}

func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: API_BASE_URL,
		logger:  slog.Default(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("pubchem: invalid base URL: %w", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("pubchem: invalid base URL %q", c.baseURL)
	}

	if c.httpClient != nil {
		c.http = resty.NewWithClient(c.httpClient)
	} else {
		c.http = resty.New()
	}
	c.http.SetBaseURL(c.baseURL)
	if c.httpClient == nil || c.timeoutSet {
		c.http.SetTimeout(c.timeout)
	}
	c.http.SetRetryCount(0)
	if c.userAgent != "" {
		c.http.SetHeader("User-Agent", c.userAgent)
	}

	c.tracer = newTracer(c.tracerProvider)
	c.instrument()

	return c, nil
}

func (c *Client) BaseURL() string { return c.baseURL }

// ========================= API =========================

// Fetch performs exactly one GET for req and returns the raw body of a 2xx
// response. Failures to reach the server and non-2xx answers both come back
// as *RequestError.
func (c *Client) Fetch(ctx context.Context, req Request) (body []byte, err error) {
	if err = req.validate(); err != nil {
		return
	}
	path := req.Path()
	c.logger.DebugContext(ctx, fmt.Sprintf("GET %s", c.baseURL+path))

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", acceptHeader(req.Format)).
		Get(path)
	if err != nil {
		return nil, &RequestError{URL: c.baseURL + path, Err: err}
	}
	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		reqErr := &RequestError{
			URL:        c.baseURL + path,
			StatusCode: resp.StatusCode(),
			Fault:      parseFault(resp.Body()),
		}
		if details, ok := httpStatusMap[resp.StatusCode()]; ok {
			c.logger.ErrorContext(ctx, fmt.Sprintf("%d — %s", resp.StatusCode(), details))
		}
		return nil, reqErr
	}
	return resp.Body(), nil
}

func fetchAs[T any](ctx context.Context, c *Client, req Request, parse func([]byte) (T, error)) (res T, err error) {
	body, err := c.Fetch(ctx, req)
	if err != nil {
		return
	}
	return parse(body)
}

func acceptHeader(format Format) string {
	switch format {
	case FormatTXT:
		return "text/plain"
	case FormatCSV:
		return "text/csv"
	default:
		return "application/json"
	}
}
