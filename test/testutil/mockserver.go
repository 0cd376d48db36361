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

// Package testutil provides httptest fixtures of the Langfuse public API
// and filesystem helpers shared by package tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"
)

// RecordedRequest is what a MockServer saw for one request.
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Query    url.Values
	Header   http.Header
	Body     []byte
}

// MockServer wraps an httptest server and records every request it serves.
type MockServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewMockServer starts a server that records requests and delegates to
// handler. The server is closed when the test ends.
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()

	ms := &MockServer{}
	ms.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		ms.mu.Lock()
		ms.requests = append(ms.requests, RecordedRequest{
			Method:   r.Method,
			Path:     r.URL.EscapedPath(),
			RawQuery: r.URL.RawQuery,
			Query:    r.URL.Query(),
			Header:   r.Header.Clone(),
			Body:     body,
		})
		ms.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(ms.Close)

	return ms
}

// Requests returns a copy of the recorded requests in arrival order.
func (s *MockServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestCount returns the number of requests served so far.
func (s *MockServer) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// LastRequest returns the most recent request. It fails the test if none
// was received.
func (s *MockServer) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		t.Fatal("mock server received no requests")
	}
	return s.requests[len(s.requests)-1]
}

// NewJSONServer always answers with status and body.
func NewJSONServer(t *testing.T, status int, body string) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// NewErrorServer always answers with statusCode and body.
func NewErrorServer(t *testing.T, statusCode int, body string) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	})
}

// NewPagedServer serves pages[n-1] for ?page=n. Pages past the end are
// empty. When withMeta is set every response carries meta.totalPages.
func NewPagedServer(t *testing.T, pages [][]map[string]interface{}, withMeta bool) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			page = 1
		}

		data := []map[string]interface{}{}
		if page <= len(pages) {
			data = pages[page-1]
		}

		var totalPages *int
		if withMeta {
			n := len(pages)
			totalPages = &n
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(GeneratePage(data, page, totalPages))
	})
}

// NewSlowServer waits delay before answering with an empty page, or until
// the client gives up.
func NewSlowServer(t *testing.T, delay time.Duration) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
}

// GenerateRecords builds trace-like records numbered start through end.
func GenerateRecords(start, end int) []map[string]interface{} {
	records := make([]map[string]interface{}, 0, end-start+1)
	for i := start; i <= end; i++ {
		records = append(records, map[string]interface{}{
			"id":        fmt.Sprintf("trace-%d", i),
			"name":      fmt.Sprintf("trace %d", i),
			"timestamp": time.Date(2025, 1, 1, 0, i, 0, 0, time.UTC).Format(time.RFC3339),
		})
	}
	return records
}

// GeneratePage wraps data in the list envelope. totalPages is omitted from
// meta when nil.
func GeneratePage(data []map[string]interface{}, page int, totalPages *int) map[string]interface{} {
	meta := map[string]interface{}{
		"page":  page,
		"limit": len(data),
	}
	if totalPages != nil {
		meta["totalPages"] = *totalPages
		meta["totalItems"] = len(data) * *totalPages
	}
	return map[string]interface{}{
		"data": data,
		"meta": meta,
	}
}
