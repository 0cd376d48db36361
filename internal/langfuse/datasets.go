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
	"net/http"
)

func (c *RESTClient) ListDatasets(ctx context.Context, opts ListOptions) ([]Record, error) {
	return c.list(ctx, endpoints.Datasets, opts)
}

func (c *RESTClient) GetDataset(ctx context.Context, name string) (Record, error) {
	return c.get(ctx, endpoints.Datasets.Sub(name), nil)
}

func (c *RESTClient) CreateDataset(ctx context.Context, req DatasetRequest) (Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return c.send(ctx, http.MethodPost, endpoints.Datasets, req)
}

// ListDatasetItems returns dataset items. Filter by datasetName to restrict
// the listing to one dataset.
func (c *RESTClient) ListDatasetItems(ctx context.Context, opts ListOptions) ([]Record, error) {
	return c.list(ctx, endpoints.DatasetItems, opts)
}

func (c *RESTClient) GetDatasetItem(ctx context.Context, id string) (Record, error) {
	return c.get(ctx, endpoints.DatasetItems.Sub(id), nil)
}

func (c *RESTClient) CreateDatasetItem(ctx context.Context, req DatasetItemRequest) (Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return c.send(ctx, http.MethodPost, endpoints.DatasetItems, req)
}

// ListDatasetRuns returns the experiment runs recorded against a dataset.
func (c *RESTClient) ListDatasetRuns(ctx context.Context, dataset string, opts ListOptions) ([]Record, error) {
	return c.list(ctx, endpoints.DatasetsLegacy.Sub(dataset, "runs"), opts)
}

func (c *RESTClient) GetDatasetRun(ctx context.Context, dataset, run string) (Record, error) {
	return c.get(ctx, endpoints.DatasetsLegacy.Sub(dataset, "runs", run), nil)
}
