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
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
)

// Allowed values for enumerated request fields.
var (
	ScoreDataTypes    = []string{"NUMERIC", "CATEGORICAL", "BOOLEAN"}
	ObservationTypes  = []string{"GENERATION", "SPAN", "EVENT"}
	MetricsViews      = []string{"traces", "observations"}
	MetricsMeasures   = []string{"count", "latency", "inputTokens", "outputTokens", "totalTokens", "inputCost", "outputCost", "totalCost"}
	MetricsAggregates = []string{"count", "sum", "avg", "p50", "p95", "p99", "histogram"}
	Granularities     = []string{"auto", "minute", "hour", "day", "week", "month"}
)

// Validate checks the score before it is sent.
func (r ScoreRequest) Validate() error {
	return wrapValidation("score", validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Value, validation.NotNil),
		validation.Field(&r.DataType, validation.In(stringsToAny(ScoreDataTypes)...)),
		validation.Field(&r.TraceID, validation.When(r.SessionID == "", validation.Required.Error("traceId or sessionId is required"))),
	))
}

// Validate checks the query before it is sent.
func (q MetricsQuery) Validate() error {
	return wrapValidation("metrics query", validation.ValidateStruct(&q,
		validation.Field(&q.View, validation.Required, validation.In(stringsToAny(MetricsViews)...)),
		validation.Field(&q.Measure, validation.Required, validation.In(stringsToAny(MetricsMeasures)...)),
		validation.Field(&q.Aggregation, validation.Required, validation.In(stringsToAny(MetricsAggregates)...)),
		validation.Field(&q.Granularity, validation.In(stringsToAny(Granularities)...)),
		validation.Field(&q.Limit, validation.Min(0)),
		validation.Field(&q.Dimensions, validation.Each(validation.By(func(value interface{}) error {
			if d, ok := value.(Dimension); ok && strings.TrimSpace(d.Field) == "" {
				return errors.New("dimension field cannot be blank")
			}
			return nil
		}))),
	))
}

// Validate checks the prompt before it is sent.
func (r PromptRequest) Validate() error {
	return wrapValidation("prompt", validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Type, validation.Required, validation.In(PromptTypeText, PromptTypeChat)),
		validation.Field(&r.Prompt, validation.NotNil, validation.By(r.checkContent)),
	))
}

func (r PromptRequest) checkContent(value interface{}) error {
	switch content := value.(type) {
	case string:
		if r.Type != PromptTypeText {
			return errors.New("chat prompts need a list of messages")
		}
		if strings.TrimSpace(content) == "" {
			return errors.New("cannot be blank")
		}
	case []ChatMessage:
		if r.Type != PromptTypeChat {
			return errors.New("text prompts need a string")
		}
		if len(content) == 0 {
			return errors.New("needs at least one message")
		}
		for i, msg := range content {
			if msg.Role == "" || msg.Content == "" {
				return fmt.Errorf("message %d needs a role and content", i)
			}
		}
	}
	return nil
}

// Validate checks the dataset before it is sent.
func (r DatasetRequest) Validate() error {
	return wrapValidation("dataset", validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	))
}

// Validate checks the dataset item before it is sent.
func (r DatasetItemRequest) Validate() error {
	return wrapValidation("dataset item", validation.ValidateStruct(&r,
		validation.Field(&r.DatasetName, validation.Required),
		validation.Field(&r.Input, validation.NotNil),
	))
}

func wrapValidation(resource string, err error) error {
	if err == nil {
		return nil
	}
	return &lferrors.ValidationError{Resource: resource, Err: err}
}

func stringsToAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
