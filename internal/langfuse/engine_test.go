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
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirseerhq/langfuse-cli/internal/config"
	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
	"github.com/sirseerhq/langfuse-cli/test/testutil"
)

func testCreds(host string) config.Credentials {
	return config.Credentials{PublicKey: "pk-lf-test", SecretKey: "sk-lf-test", Host: host}
}

func newTestClient(t *testing.T, host string, opts ...Option) *RESTClient {
	t.Helper()
	client, err := NewRESTClient(testCreds(host), opts...)
	require.NoError(t, err)
	return client
}

func TestNewRESTClient(t *testing.T) {
	tests := []struct {
		name    string
		creds   config.Credentials
		wantErr bool
	}{
		{name: "valid", creds: testCreds("https://cloud.langfuse.com")},
		{name: "plain http", creds: testCreds("http://localhost:3000")},
		{name: "missing public key", creds: config.Credentials{SecretKey: "sk", Host: "https://x.io"}, wantErr: true},
		{name: "missing secret key", creds: config.Credentials{PublicKey: "pk", Host: "https://x.io"}, wantErr: true},
		{name: "missing both keys", creds: config.Credentials{Host: "https://x.io"}, wantErr: true},
		{name: "missing keys and host", creds: config.Credentials{}, wantErr: true},
		{name: "missing host", creds: config.Credentials{PublicKey: "pk", SecretKey: "sk"}, wantErr: true},
		{name: "host without scheme", creds: testCreds("cloud.langfuse.com"), wantErr: true},
		{name: "unsupported scheme", creds: testCreds("ftp://cloud.langfuse.com"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewRESTClient(tt.creds)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.creds.Host, client.Host())
				return
			}
			require.Error(t, err)
			assert.Nil(t, client)
			assert.True(t, errors.Is(err, lferrors.ErrConfiguration), "got %v", err)
		})
	}
}

func TestRESTClientAppliesBasicAuthAndHeaders(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusOK, `{"id":"t1"}`)
	client := newTestClient(t, server.URL, WithUserAgent("lf/1.2.3"))

	_, err := client.GetTrace(context.Background(), "t1")
	require.NoError(t, err)

	req := server.LastRequest(t)
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("pk-lf-test:sk-lf-test"))
	assert.Equal(t, want, req.Header.Get("Authorization"))
	assert.Equal(t, "lf/1.2.3", req.Header.Get("User-Agent"))
	assert.NotEmpty(t, req.Header.Get("X-Request-Id"))
	assert.Equal(t, "/api/public/traces/t1", req.Path)
}

func TestRESTClientNamespaces(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusOK, `{"data":[],"meta":{"totalPages":0}}`)
	client := newTestClient(t, server.URL+"/")
	ctx := context.Background()

	tests := []struct {
		name     string
		call     func() error
		wantPath string
	}{
		{"v1 get", func() error { return client.Get(ctx, "/traces", nil, &Page{}) }, "/api/public/traces"},
		{"v2 get", func() error { return client.GetV2(ctx, "/prompts", nil, &Page{}) }, "/api/public/v2/prompts"},
		{"v1 post", func() error { return client.Post(ctx, "/scores", map[string]int{"a": 1}, nil) }, "/api/public/scores"},
		{"v2 post", func() error { return client.PostV2(ctx, "/datasets", map[string]int{"a": 1}, nil) }, "/api/public/v2/datasets"},
		{"v2 patch", func() error { return client.PatchV2(ctx, "/prompts/p/versions/1", map[string]int{}, nil) }, "/api/public/v2/prompts/p/versions/1"},
		{"v2 delete", func() error { return client.DeleteV2(ctx, "/prompts/p", nil) }, "/api/public/v2/prompts/p"},
		{"escaped name", func() error { _, err := client.GetDataset(ctx, "qa/set 1"); return err }, "/api/public/v2/datasets/qa%2Fset%201"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.wantPath, server.LastRequest(t).Path)
		})
	}
}

func TestRESTClientStatusClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		check    func(t *testing.T, err error)
	}{
		{
			name: "401", status: http.StatusUnauthorized, body: "bad key", sentinel: lferrors.ErrAuthentication,
			check: func(t *testing.T, err error) {
				var authErr *lferrors.AuthenticationError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, 401, authErr.StatusCode)
			},
		},
		{name: "403", status: http.StatusForbidden, body: "forbidden", sentinel: lferrors.ErrAuthentication},
		{
			name: "404", status: http.StatusNotFound, body: `{"message":"trace not found"}`, sentinel: lferrors.ErrNotFound,
			check: func(t *testing.T, err error) {
				var nf *lferrors.NotFoundError
				require.True(t, errors.As(err, &nf))
				assert.Equal(t, `{"message":"trace not found"}`, nf.Body)
			},
		},
		{name: "429", status: http.StatusTooManyRequests, body: "slow down", sentinel: lferrors.ErrRateLimit},
		{
			name: "500", status: http.StatusInternalServerError, body: "boom", sentinel: lferrors.ErrAPI,
			check: func(t *testing.T, err error) {
				var apiErr *lferrors.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, 500, apiErr.StatusCode)
				assert.Equal(t, "boom", apiErr.Body)
			},
		},
		{name: "201 on GET", status: http.StatusCreated, body: `{}`, sentinel: lferrors.ErrAPI},
		{name: "400", status: http.StatusBadRequest, body: "invalid", sentinel: lferrors.ErrAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewErrorServer(t, tt.status, tt.body)
			client := newTestClient(t, server.URL)

			_, err := client.GetTrace(context.Background(), "t1")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %T: %v", err, err)
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestRESTClientCreatedOnPost(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusCreated, `{"id":"score-1"}`)
	client := newTestClient(t, server.URL)

	rec, err := client.CreateScore(context.Background(), ScoreRequest{Name: "accuracy", Value: 0.9, TraceID: "t1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"score-1"}`, string(rec))

	req := server.LastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"name":"accuracy","value":0.9,"traceId":"t1"}`, string(req.Body))
}

func TestRESTClientDeleteIgnoresBody(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusOK} {
		server := testutil.NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			if status == http.StatusOK {
				_, _ = w.Write([]byte("not json"))
			}
		})
		client := newTestClient(t, server.URL)

		err := client.DeletePrompt(context.Background(), "greeting", PromptSelector{Label: "staging"})
		require.NoError(t, err, "status %d", status)

		req := server.LastRequest(t)
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "label=staging", req.RawQuery)
	}
}

func TestRESTClientResponseParseError(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusOK, `{"data": [oops`)
	client := newTestClient(t, server.URL)

	_, err := client.ListTraces(context.Background(), ListOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, lferrors.ErrResponseParse))
	assert.False(t, errors.Is(err, lferrors.ErrNetworkFailure))
	assert.False(t, errors.Is(err, lferrors.ErrAuthentication))
}

func TestRESTClientTimeout(t *testing.T) {
	server := testutil.NewSlowServer(t, 5*time.Second)
	client := newTestClient(t, server.URL, WithTimeouts(100*time.Millisecond, 0))

	_, err := client.GetTrace(context.Background(), "t1")
	require.Error(t, err)

	var timeoutErr *lferrors.TimeoutError
	assert.True(t, errors.As(err, &timeoutErr), "got %T: %v", err, err)
	assert.Equal(t, 3, lferrors.ExitCode(err))
	assert.Equal(t, 1, server.RequestCount(), "timeouts must not be retried")
}

func TestRESTClientNetworkError(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusOK, `{}`)
	host := server.URL
	server.Close()

	client := newTestClient(t, host)
	err := client.TestConnection(context.Background())
	require.Error(t, err)

	assert.True(t, errors.Is(err, lferrors.ErrNetworkFailure), "got %T: %v", err, err)
	assert.False(t, errors.Is(err, lferrors.ErrTimeout))
}

func TestRESTClientNoRetryOnRateLimit(t *testing.T) {
	server := testutil.NewErrorServer(t, http.StatusTooManyRequests, "slow down")
	client := newTestClient(t, server.URL)

	_, err := client.ListTraces(context.Background(), ListOptions{Limit: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, lferrors.ErrRateLimit))
	assert.Equal(t, 1, server.RequestCount())
}

func TestClassify(t *testing.T) {
	t.Run("decodes into out on 200", func(t *testing.T) {
		var out map[string]int
		require.NoError(t, classify(http.MethodGet, 200, []byte(`{"a":1}`), &out))
		assert.Equal(t, map[string]int{"a": 1}, out)
	})

	t.Run("201 on PATCH is success", func(t *testing.T) {
		var out json.RawMessage
		require.NoError(t, classify(http.MethodPatch, 201, []byte(`{"ok":true}`), &out))
	})

	t.Run("204 outside DELETE is an API error", func(t *testing.T) {
		err := classify(http.MethodGet, 204, nil, nil)
		assert.True(t, errors.Is(err, lferrors.ErrAPI))
	})
}
