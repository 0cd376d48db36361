// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package langfuse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/sirseerhq/langfuse-cli/internal/config"
	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
)

// DefaultUserAgent is sent when no WithUserAgent option is given.
const DefaultUserAgent = "lf/dev"

// RESTClient implements Client over the Langfuse public REST API.
// It performs exactly one HTTP request per call and never retries.
type RESTClient struct {
	host   string
	http   *http.Client
	logger hclog.Logger

	userAgent      string
	requestTimeout time.Duration
	connectTimeout time.Duration
}

// Option configures a RESTClient.
type Option func(*RESTClient)

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(logger hclog.Logger) Option {
	return func(c *RESTClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *RESTClient) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeouts overrides the request and connect timeouts. Production code
// uses the fixed defaults; tests shorten them.
func WithTimeouts(request, connect time.Duration) Option {
	return func(c *RESTClient) {
		if request > 0 {
			c.requestTimeout = request
		}
		if connect > 0 {
			c.connectTimeout = connect
		}
	}
}

// NewRESTClient creates a client for the given credentials. It refuses to
// construct a client unless both keys and the host are present and the
// host is an http or https URL.
func NewRESTClient(creds config.Credentials, opts ...Option) (*RESTClient, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	host := strings.TrimRight(creds.Host, "/")
	u, err := url.Parse(host)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, lferrors.NewConfigurationError("invalid host %q: expected an http or https URL", creds.Host)
	}

	c := &RESTClient{
		host:           host,
		logger:         hclog.NewNullLogger(),
		userAgent:      DefaultUserAgent,
		requestTimeout: RequestTimeout,
		connectTimeout: ConnectTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http = newHTTPClient(creds.PublicKey, creds.SecretKey, c.userAgent, c.requestTimeout, c.connectTimeout)
	return c, nil
}

// Host returns the base URL the client talks to.
func (c *RESTClient) Host() string {
	return c.host
}

// Get issues a GET against a v1 path and decodes the response into out.
func (c *RESTClient) Get(ctx context.Context, path string, params Params, out interface{}) error {
	return c.do(ctx, http.MethodGet, Endpoint{V1, path}, params, nil, out)
}

// GetV2 issues a GET against a v2 path.
func (c *RESTClient) GetV2(ctx context.Context, path string, params Params, out interface{}) error {
	return c.do(ctx, http.MethodGet, Endpoint{V2, path}, params, nil, out)
}

// Post sends body as JSON to a v1 path.
func (c *RESTClient) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, Endpoint{V1, path}, nil, body, out)
}

// PostV2 sends body as JSON to a v2 path.
func (c *RESTClient) PostV2(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, Endpoint{V2, path}, nil, body, out)
}

// PatchV2 sends body as JSON to a v2 path with PATCH.
func (c *RESTClient) PatchV2(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, Endpoint{V2, path}, nil, body, out)
}

// DeleteV2 deletes a v2 resource. The response body is ignored.
func (c *RESTClient) DeleteV2(ctx context.Context, path string, params Params) error {
	return c.do(ctx, http.MethodDelete, Endpoint{V2, path}, params, nil, nil)
}

// GetPage implements PageGetter.
func (c *RESTClient) GetPage(ctx context.Context, endpoint Endpoint, params Params) (*Page, error) {
	var page Page
	if err := c.do(ctx, http.MethodGet, endpoint, params, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *RESTClient) get(ctx context.Context, endpoint Endpoint, params Params) (Record, error) {
	var rec Record
	if err := c.do(ctx, http.MethodGet, endpoint, params, nil, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *RESTClient) send(ctx context.Context, method string, endpoint Endpoint, body interface{}) (Record, error) {
	var rec Record
	if err := c.do(ctx, method, endpoint, nil, body, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (c *RESTClient) list(ctx context.Context, endpoint Endpoint, opts ListOptions) ([]Record, error) {
	return Paginate(ctx, c, endpoint, opts, c.logger)
}

// do performs one request and classifies its outcome.
func (c *RESTClient) do(ctx context.Context, method string, endpoint Endpoint, params Params, body, out interface{}) error {
	target := c.host + endpoint.String()
	if query := params.Encode(); query != "" {
		target += "?" + query
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "url", target, "request_id", requestID, "error", err)
		return transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Debug("reading response failed", "method", method, "url", target, "request_id", requestID, "error", err)
		return transportError(err)
	}

	c.logger.Debug("request",
		"method", method,
		"url", target,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	return classify(method, resp.StatusCode, data, out)
}

// classify maps a completed HTTP exchange to success or a typed error.
func classify(method string, status int, body []byte, out interface{}) error {
	switch {
	case method == http.MethodDelete && (status == http.StatusNoContent || status == http.StatusOK):
		return nil
	case status == http.StatusOK || (status == http.StatusCreated && (method == http.MethodPost || method == http.MethodPatch)):
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return &lferrors.ResponseParseError{Err: err}
		}
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &lferrors.AuthenticationError{StatusCode: status, Body: string(body)}
	case status == http.StatusNotFound:
		return &lferrors.NotFoundError{Body: string(body)}
	case status == http.StatusTooManyRequests:
		return &lferrors.RateLimitError{Body: string(body)}
	default:
		return &lferrors.APIError{StatusCode: status, Body: string(body)}
	}
}

// transportError separates timeouts from every other transport failure.
func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &lferrors.TimeoutError{Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &lferrors.TimeoutError{Err: err}
	}
	return &lferrors.NetworkError{Err: err}
}
