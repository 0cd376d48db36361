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

// Package langfuse types define the page envelope, list options and the
// request bodies of the write operations.
package langfuse

import (
	"encoding/json"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
)

const (
	// DefaultLimit is the number of records a list operation returns when
	// the caller does not ask for a specific amount.
	DefaultLimit = 50

	// MaxPageSize is the largest page the API serves per request.
	MaxPageSize = 100
)

// Record is one schema-less JSON value as returned by the server.
type Record = json.RawMessage

// Page is the list response envelope.
type Page struct {
	Data []Record `json:"data"`
	Meta *Meta    `json:"meta,omitempty"`
}

// Meta is the optional pagination metadata. Any field may be missing.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalItems int  `json:"totalItems"`
	TotalPages *int `json:"totalPages,omitempty"`
}

// totalPages reports the server's page count and whether it was present.
func (p *Page) totalPages() (int, bool) {
	if p.Meta == nil || p.Meta.TotalPages == nil {
		return 0, false
	}
	return *p.Meta.TotalPages, true
}

func (p *Page) totalItems() int {
	if p.Meta == nil {
		return 0
	}
	return p.Meta.TotalItems
}

// ProgressFunc is called after every page with the page number just fetched
// and the number of records accumulated so far.
type ProgressFunc func(page, fetched int)

// ListOptions controls a paginated list operation.
type ListOptions struct {
	// Limit is the maximum number of records to return. Values <= 0 mean DefaultLimit.
	Limit int

	// Page is the first page to request. Values < 1 mean 1.
	Page int

	// Filters are sent with every page request, in order.
	Filters Params

	// Progress, if set, is invoked after each page.
	Progress ProgressFunc
}

// PromptSelector picks one version of a prompt. At most one of Version and
// Label may be set.
type PromptSelector struct {
	Version int
	Label   string
}

func (s PromptSelector) validate() error {
	if s.Version > 0 && s.Label != "" {
		return lferrors.NewConfigurationError("specify either a prompt version or a label, not both")
	}
	if s.Version < 0 {
		return lferrors.NewConfigurationError("prompt version must be a positive integer, got %d", s.Version)
	}
	return nil
}

func (s PromptSelector) params() Params {
	var p Params
	if s.Version > 0 {
		p.AddInt("version", s.Version)
	}
	if s.Label != "" {
		p.Add("label", s.Label)
	}
	return p
}

// ScoreRequest is the body of a score creation.
type ScoreRequest struct {
	ID            string      `json:"id,omitempty"`
	Name          string      `json:"name"`
	Value         interface{} `json:"value"`
	TraceID       string      `json:"traceId,omitempty"`
	ObservationID string      `json:"observationId,omitempty"`
	SessionID     string      `json:"sessionId,omitempty"`
	DataType      string      `json:"dataType,omitempty"`
	Comment       string      `json:"comment,omitempty"`
}

// MetricsQuery is the body of a metrics query.
type MetricsQuery struct {
	View          string      `json:"view"`
	Measure       string      `json:"measure"`
	Aggregation   string      `json:"aggregation"`
	Dimensions    []Dimension `json:"dimensions,omitempty"`
	FromTimestamp string      `json:"fromTimestamp,omitempty"`
	ToTimestamp   string      `json:"toTimestamp,omitempty"`
	Granularity   string      `json:"granularity,omitempty"`
	Limit         int         `json:"limit,omitempty"`
}

// Dimension groups metrics by one field.
type Dimension struct {
	Field string `json:"field"`
}

// ChatMessage is one message of a chat prompt.
type ChatMessage struct {
	Role    string `json:"role" mapstructure:"role"`
	Content string `json:"content" mapstructure:"content"`
}

// Prompt types accepted by the API.
const (
	PromptTypeText = "text"
	PromptTypeChat = "chat"
)

// PromptRequest is the body of a prompt creation. Prompt holds a string for
// text prompts and a []ChatMessage for chat prompts.
type PromptRequest struct {
	Name          string                 `json:"name"`
	Type          string                 `json:"type"`
	Prompt        interface{}            `json:"prompt"`
	Labels        []string               `json:"labels,omitempty"`
	Tags          []string               `json:"tags,omitempty"`
	Config        map[string]interface{} `json:"config,omitempty"`
	CommitMessage string                 `json:"commitMessage,omitempty"`
}

// promptLabelsRequest is the body of a prompt label update.
type promptLabelsRequest struct {
	NewLabels []string `json:"newLabels"`
}

// DatasetRequest is the body of a dataset creation.
type DatasetRequest struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// DatasetItemRequest is the body of a dataset item creation. Input,
// ExpectedOutput and Metadata are arbitrary JSON values.
type DatasetItemRequest struct {
	DatasetName         string      `json:"datasetName"`
	Input               interface{} `json:"input,omitempty"`
	ExpectedOutput      interface{} `json:"expectedOutput,omitempty"`
	Metadata            interface{} `json:"metadata,omitempty"`
	SourceTraceID       string      `json:"sourceTraceId,omitempty"`
	SourceObservationID string      `json:"sourceObservationId,omitempty"`
}

// metricsResponse is the envelope of a metrics query.
type metricsResponse struct {
	Data []Record `json:"data"`
}
