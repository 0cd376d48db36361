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

func (c *RESTClient) ListScores(ctx context.Context, opts ListOptions) ([]Record, error) {
	return c.list(ctx, endpoints.Scores, opts)
}

func (c *RESTClient) GetScore(ctx context.Context, id string) (Record, error) {
	return c.get(ctx, endpoints.Scores.Sub(id), nil)
}

// CreateScore validates req and posts it. The caller should set req.ID so
// that resending after a RateLimitError does not create a duplicate.
func (c *RESTClient) CreateScore(ctx context.Context, req ScoreRequest) (Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return c.send(ctx, http.MethodPost, endpoints.Scores, req)
}

// QueryMetrics posts the query and unwraps the data rows of the response.
func (c *RESTClient) QueryMetrics(ctx context.Context, query MetricsQuery) ([]Record, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var resp metricsResponse
	if err := c.do(ctx, http.MethodPost, endpoints.Metrics, nil, query, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []Record{}, nil
	}
	return resp.Data, nil
}
