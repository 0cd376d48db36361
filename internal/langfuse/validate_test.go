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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
)

func TestScoreRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     ScoreRequest
		wantErr string
	}{
		{name: "numeric on trace", req: ScoreRequest{Name: "accuracy", Value: 0.8, TraceID: "t"}},
		{name: "categorical on session", req: ScoreRequest{Name: "tone", Value: "ok", SessionID: "s", DataType: "CATEGORICAL"}},
		{name: "missing name", req: ScoreRequest{Value: 1, TraceID: "t"}, wantErr: "name"},
		{name: "missing value", req: ScoreRequest{Name: "x", TraceID: "t"}, wantErr: "value"},
		{name: "missing target", req: ScoreRequest{Name: "x", Value: 1}, wantErr: "traceId or sessionId is required"},
		{name: "unknown data type", req: ScoreRequest{Name: "x", Value: 1, TraceID: "t", DataType: "TEXT"}, wantErr: "dataType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, lferrors.ErrValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMetricsQueryValidate(t *testing.T) {
	valid := MetricsQuery{View: "traces", Measure: "totalCost", Aggregation: "sum"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(q *MetricsQuery)
	}{
		{"missing view", func(q *MetricsQuery) { q.View = "" }},
		{"unknown measure", func(q *MetricsQuery) { q.Measure = "tokens" }},
		{"unknown aggregation", func(q *MetricsQuery) { q.Aggregation = "median" }},
		{"unknown granularity", func(q *MetricsQuery) { q.Granularity = "year" }},
		{"negative limit", func(q *MetricsQuery) { q.Limit = -1 }},
		{"blank dimension", func(q *MetricsQuery) { q.Dimensions = []Dimension{{Field: " "}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			tt.mutate(&q)
			err := q.Validate()
			assert.True(t, errors.Is(err, lferrors.ErrValidation), "got %v", err)
		})
	}
}

func TestPromptRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     PromptRequest
		wantErr bool
	}{
		{name: "text", req: PromptRequest{Name: "p", Type: PromptTypeText, Prompt: "hello"}},
		{name: "chat", req: PromptRequest{Name: "p", Type: PromptTypeChat, Prompt: []ChatMessage{{Role: "user", Content: "hi"}}}},
		{name: "blank text", req: PromptRequest{Name: "p", Type: PromptTypeText, Prompt: "  "}, wantErr: true},
		{name: "chat given a string", req: PromptRequest{Name: "p", Type: PromptTypeChat, Prompt: "hi"}, wantErr: true},
		{name: "text given messages", req: PromptRequest{Name: "p", Type: PromptTypeText, Prompt: []ChatMessage{{Role: "user", Content: "hi"}}}, wantErr: true},
		{name: "empty chat", req: PromptRequest{Name: "p", Type: PromptTypeChat, Prompt: []ChatMessage{}}, wantErr: true},
		{name: "message without role", req: PromptRequest{Name: "p", Type: PromptTypeChat, Prompt: []ChatMessage{{Content: "hi"}}}, wantErr: true},
		{name: "unknown type", req: PromptRequest{Name: "p", Type: "image", Prompt: "x"}, wantErr: true},
		{name: "missing content", req: PromptRequest{Name: "p", Type: PromptTypeText}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, lferrors.ErrValidation), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
