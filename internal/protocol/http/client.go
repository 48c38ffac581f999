package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/artpar/yarc/internal/core"
)

// Client submits request models over HTTP.
type Client struct {
	httpClient *http.Client
	config     Config
}

// Config holds HTTP client configuration.
type Config struct {
	Timeout        time.Duration
	FollowRedirect bool
}

// Option is a function that configures the Client.
type Option func(*Client)

// NewClient creates a new HTTP client with the given options. Cookies set
// by responses are kept for the lifetime of the client.
func NewClient(opts ...Option) *Client {
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	client := &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		config: Config{
			Timeout:        30 * time.Second,
			FollowRedirect: true,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.config.Timeout = timeout
		c.httpClient.Timeout = timeout
	}
}

// WithTransport sets a custom HTTP transport.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = transport
	}
}

// WithNoRedirects disables automatic redirect following.
func WithNoRedirects() Option {
	return func(c *Client) {
		c.config.FollowRedirect = false
		c.httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
}

// Protocol returns the protocol identifier.
func (c *Client) Protocol() string {
	return "http"
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Send executes req and returns the response.
func (c *Client) Send(ctx context.Context, req *core.Request) (*core.Response, error) {
	httpReq, err := NewHTTPRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &core.Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Proto:      httpResp.Proto,
		Headers:    sortedHeaders(httpResp.Header),
		Body:       body,
		Duration:   time.Since(start),
	}, nil
}

// NewHTTPRequest converts the request model into an http.Request.
func NewHTTPRequest(ctx context.Context, req *core.Request) (*http.Request, error) {
	address := strings.TrimSpace(req.Address())
	if address == "" {
		return nil, fmt.Errorf("no URL given")
	}
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	if _, err := url.ParseRequestURI(address); err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", address, err)
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method(), address, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for _, h := range req.Headers() {
		if h.Key == "" {
			continue
		}
		httpReq.Header.Add(h.Key, h.Value)
	}
	if contentType != "" && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	auth := req.Auth()
	switch auth.Format {
	case core.AuthBasic:
		httpReq.SetBasicAuth(auth.Username.Value(), auth.Password.Value())
	case core.AuthBearer:
		httpReq.Header.Set("Authorization", "Bearer "+auth.Token.Value())
	}

	return httpReq, nil
}

// encodeBody returns the body text and its default content type.
func encodeBody(req *core.Request) (string, string, error) {
	switch req.BodyFormat() {
	case core.BodyRaw:
		return req.RawBody(), "text/plain; charset=utf-8", nil
	case core.BodyJSON:
		fields := req.BodyFields()
		if len(fields) == 0 {
			return "", "", nil
		}
		obj := make(map[string]string, len(fields))
		for _, f := range fields {
			obj[f.Key] = f.Value
		}
		data, err := json.Marshal(obj)
		if err != nil {
			return "", "", fmt.Errorf("failed to encode body: %w", err)
		}
		return string(data), "application/json", nil
	default:
		fields := req.BodyFields()
		if len(fields) == 0 {
			return "", "", nil
		}
		values := url.Values{}
		for _, f := range fields {
			values.Add(f.Key, f.Value)
		}
		return values.Encode(), "application/x-www-form-urlencoded", nil
	}
}

func sortedHeaders(h http.Header) []core.Pair {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]core.Pair, 0, len(keys))
	for _, k := range keys {
		for _, v := range h[k] {
			pairs = append(pairs, core.Pair{Key: k, Value: v})
		}
	}
	return pairs
}
