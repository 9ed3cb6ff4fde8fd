package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/wellbeinghub/internal/common"
	"github.com/dmitrijs2005/wellbeinghub/internal/logging"
	"github.com/google/uuid"
)

// TokenSource yields the current session token. ok is false when no token
// is stored.
type TokenSource interface {
	Token(ctx context.Context) (token string, ok bool, err error)
}

// Request describes one call. Only Path is required.
type Request struct {
	Path    string
	Method  string
	Body    []byte
	Headers map[string]string
	UseAuth bool
}

// JSONBody serialises v for use as Request.Body.
func JSONBody(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return b, nil
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient creates a client for baseURL. A single trailing slash is
// stripped from baseURL. tokens may be nil, in which case authenticated
// requests go out without credentials.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// URL resolves path against the base URL.
func (c *HTTPClient) URL(path string) string {
	return c.baseURL + path
}

// Do sends req and, on a 2xx JSON response, decodes the body into out.
// out may be nil when the caller does not care about the body. Non-JSON and
// empty 2xx bodies leave out untouched.
func (c *HTTPClient) Do(ctx context.Context, req Request, out any) error {
	if req.Path == "" {
		return ErrEmptyPath
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.URL(req.Path), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	httpReq.Header.Set(common.HeaderContentType, common.ContentTypeJSON)
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if req.UseAuth && c.tokens != nil {
		token, ok, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read session token: %w", err)
		}
		if ok {
			httpReq.Header.Set(common.HeaderAuthorization, common.BearerPrefix+token)
		}
	}

	log := c.log.With("request_id", uuid.NewString(), "method", method, "path", req.Path)
	start := time.Now()

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return err
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if out == nil || !isJSON(resp.Header.Get(common.HeaderContentType)) {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Call is Do with the result type declared at the call site. It returns the
// zero value of T for non-JSON or empty responses. No shape validation is
// performed beyond JSON decoding.
func Call[T any](ctx context.Context, c *HTTPClient, req Request) (T, error) {
	var out T
	if err := c.Do(ctx, req, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), common.ContentTypeJSON)
}
