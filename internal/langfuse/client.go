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

import "context"

// Client defines the resource operations of the Langfuse public API.
// This interface allows for easy mocking in tests.
type Client interface {
	// ListTraces returns up to opts.Limit traces, following pages as needed.
	ListTraces(ctx context.Context, opts ListOptions) ([]Record, error)
	GetTrace(ctx context.Context, id string) (Record, error)

	ListSessions(ctx context.Context, opts ListOptions) ([]Record, error)
	GetSession(ctx context.Context, id string) (Record, error)

	ListObservations(ctx context.Context, opts ListOptions) ([]Record, error)
	GetObservation(ctx context.Context, id string) (Record, error)

	ListScores(ctx context.Context, opts ListOptions) ([]Record, error)
	GetScore(ctx context.Context, id string) (Record, error)
	CreateScore(ctx context.Context, req ScoreRequest) (Record, error)

	// QueryMetrics posts an aggregation query and returns its data rows.
	QueryMetrics(ctx context.Context, query MetricsQuery) ([]Record, error)

	ListPrompts(ctx context.Context, opts ListOptions) ([]Record, error)
	GetPrompt(ctx context.Context, name string, sel PromptSelector) (Record, error)
	CreatePrompt(ctx context.Context, req PromptRequest) (Record, error)
	UpdatePromptLabels(ctx context.Context, name string, version int, labels []string) (Record, error)
	DeletePrompt(ctx context.Context, name string, sel PromptSelector) error

	ListDatasets(ctx context.Context, opts ListOptions) ([]Record, error)
	GetDataset(ctx context.Context, name string) (Record, error)
	CreateDataset(ctx context.Context, req DatasetRequest) (Record, error)

	ListDatasetItems(ctx context.Context, opts ListOptions) ([]Record, error)
	GetDatasetItem(ctx context.Context, id string) (Record, error)
	CreateDatasetItem(ctx context.Context, req DatasetItemRequest) (Record, error)

	ListDatasetRuns(ctx context.Context, dataset string, opts ListOptions) ([]Record, error)
	GetDatasetRun(ctx context.Context, dataset, run string) (Record, error)

	// TestConnection issues the cheapest authenticated request the API
	// offers and returns its classified error, if any.
	TestConnection(ctx context.Context) error
}

// PageGetter fetches one page of a list endpoint. RESTClient implements it;
// Paginate depends only on this.
type PageGetter interface {
	GetPage(ctx context.Context, endpoint Endpoint, params Params) (*Page, error)
}
