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
	"encoding/json"
	"fmt"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// Records returned by list operations, truncated to the requested limit
	Records []Record

	// Record returned by single-object operations
	Record Record

	// Error to return
	Error error

	// Behavior flags
	ShouldFailAuth     bool
	ShouldFailNetwork  bool
	ShouldFailNotFound bool

	// Track calls for verification
	CallCount   int
	Calls       []string
	LastID      string
	LastOptions ListOptions
	LastBody    interface{}
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Records: generateTestTraces(),
		Record:  Record(`{"id":"trace-1","name":"chat-completion"}`),
	}
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithRecords sets the records list operations return
func WithRecords(records []Record) MockClientOption {
	return func(m *MockClient) {
		m.Records = records
	}
}

// WithRecord sets the record single-object operations return
func WithRecord(record Record) MockClientOption {
	return func(m *MockClient) {
		m.Record = record
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithAuthFailure makes the client simulate authentication failure
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}

// fail tracks the call and returns the simulated error, if any.
func (m *MockClient) fail(ctx context.Context, call string) error {
	m.CallCount++
	m.Calls = append(m.Calls, call)

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return &lferrors.AuthenticationError{StatusCode: 401, Body: `{"message":"Invalid credentials"}`}
	}
	if m.ShouldFailNetwork {
		return &lferrors.NetworkError{Err: fmt.Errorf("dial tcp: connection refused")}
	}
	if m.ShouldFailNotFound {
		return &lferrors.NotFoundError{Body: `{"message":"not found"}`}
	}
	return m.Error
}

func (m *MockClient) list(ctx context.Context, call string, opts ListOptions) ([]Record, error) {
	m.LastOptions = opts
	if err := m.fail(ctx, call); err != nil {
		return nil, err
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	out := make([]Record, 0, len(m.Records))
	for _, r := range m.Records {
		if len(out) == limit {
			break
		}
		out = append(out, r)
	}
	if opts.Progress != nil {
		opts.Progress(1, len(out))
	}
	return out, nil
}

func (m *MockClient) one(ctx context.Context, call, id string, body interface{}) (Record, error) {
	m.LastID = id
	m.LastBody = body
	if err := m.fail(ctx, call); err != nil {
		return nil, err
	}
	return m.Record, nil
}

func (m *MockClient) ListTraces(ctx context.Context, opts ListOptions) ([]Record, error) {
	return m.list(ctx, "ListTraces", opts)
}

func (m *MockClient) GetTrace(ctx context.Context, id string) (Record, error) {
	return m.one(ctx, "GetTrace", id, nil)
}

func (m *MockClient) ListSessions(ctx context.Context, opts ListOptions) ([]Record, error) {
	return m.list(ctx, "ListSessions", opts)
}

func (m *MockClient) GetSession(ctx context.Context, id string) (Record, error) {
	return m.one(ctx, "GetSession", id, nil)
}

func (m *MockClient) ListObservations(ctx context.Context, opts ListOptions) ([]Record, error) {
	return m.list(ctx, "ListObservations", opts)
}

func (m *MockClient) GetObservation(ctx context.Context, id string) (Record, error) {
	return m.one(ctx, "GetObservation", id, nil)
}

func (m *MockClient) ListScores(ctx context.Context, opts ListOptions) ([]Record, error) {
	return m.list(ctx, "ListScores", opts)
}

func (m *MockClient) GetScore(ctx context.Context, id string) (Record, error) {
	return m.one(ctx, "GetScore", id, nil)
}

func (m *MockClient) CreateScore(ctx context.Context, req ScoreRequest) (Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return m.one(ctx, "CreateScore", req.ID, req)
}

func (m *MockClient) QueryMetrics(ctx context.Context, query MetricsQuery) ([]Record, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	m.LastBody = query
	return m.list(ctx, "QueryMetrics", ListOptions{Limit: len(m.Records) + 1})
}

func (m *MockClient) ListPrompts(ctx context.Context, opts ListOptions) ([]Record, error) {
	return m.list(ctx, "ListPrompts", opts)
}

func (m *MockClient) GetPrompt(ctx context.Context, name string, sel PromptSelector) (Record, error) {
	if err := sel.validate(); err != nil {
		return nil, err
	}
	return m.one(ctx, "GetPrompt", name, sel)
}

func (m *MockClient) CreatePrompt(ctx context.Context, req PromptRequest) (Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return m.one(ctx, "CreatePrompt", req.Name, req)
}

func (m *MockClient) UpdatePromptLabels(ctx context.Context, name string, version int, labels []string) (Record, error) {
	return m.one(ctx, "UpdatePromptLabels", name, promptLabelsRequest{NewLabels: labels})
}

func (m *MockClient) DeletePrompt(ctx context.Context, name string, sel PromptSelector) error {
	if err := sel.validate(); err != nil {
		return err
	}
	_, err := m.one(ctx, "DeletePrompt", name, sel)
	return err
}

func (m *MockClient) ListDatasets(ctx context.Context, opts ListOptions) ([]Record, error) {
	return m.list(ctx, "ListDatasets", opts)
}

func (m *MockClient) GetDataset(ctx context.Context, name string) (Record, error) {
	return m.one(ctx, "GetDataset", name, nil)
}

func (m *MockClient) CreateDataset(ctx context.Context, req DatasetRequest) (Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return m.one(ctx, "CreateDataset", req.Name, req)
}

func (m *MockClient) ListDatasetItems(ctx context.Context, opts ListOptions) ([]Record, error) {
	return m.list(ctx, "ListDatasetItems", opts)
}

func (m *MockClient) GetDatasetItem(ctx context.Context, id string) (Record, error) {
	return m.one(ctx, "GetDatasetItem", id, nil)
}

func (m *MockClient) CreateDatasetItem(ctx context.Context, req DatasetItemRequest) (Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return m.one(ctx, "CreateDatasetItem", req.DatasetName, req)
}

func (m *MockClient) ListDatasetRuns(ctx context.Context, dataset string, opts ListOptions) ([]Record, error) {
	m.LastID = dataset
	return m.list(ctx, "ListDatasetRuns", opts)
}

func (m *MockClient) GetDatasetRun(ctx context.Context, dataset, run string) (Record, error) {
	return m.one(ctx, "GetDatasetRun", dataset+"/"+run, nil)
}

func (m *MockClient) TestConnection(ctx context.Context) error {
	return m.fail(ctx, "TestConnection")
}

// generateTestTraces creates sample trace records for testing
func generateTestTraces() []Record {
	traces := []map[string]interface{}{
		{"id": "trace-1", "name": "chat-completion", "userId": "alice", "tags": []string{"prod"}, "latency": 1.25},
		{"id": "trace-2", "name": "embedding", "userId": "bob", "sessionId": "sess-1"},
		{"id": "trace-3", "name": "rag-pipeline", "userId": "alice", "public": true},
	}

	records := make([]Record, 0, len(traces))
	for _, t := range traces {
		data, _ := json.Marshal(t)
		records = append(records, data)
	}
	return records
}

var _ Client = (*MockClient)(nil)
