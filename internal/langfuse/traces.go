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

// ListTraces returns traces matching opts.Filters.
func (c *RESTClient) ListTraces(ctx context.Context, opts ListOptions) ([]Record, error) {
	return c.list(ctx, endpoints.Traces, opts)
}

// GetTrace returns a single trace including its scores and observation ids.
func (c *RESTClient) GetTrace(ctx context.Context, id string) (Record, error) {
	return c.get(ctx, endpoints.Traces.Sub(id), nil)
}

func (c *RESTClient) ListSessions(ctx context.Context, opts ListOptions) ([]Record, error) {
	return c.list(ctx, endpoints.Sessions, opts)
}

func (c *RESTClient) GetSession(ctx context.Context, id string) (Record, error) {
	return c.get(ctx, endpoints.Sessions.Sub(id), nil)
}

// ListObservations returns observations. Filter by traceId to get the spans
// and generations of one trace.
func (c *RESTClient) ListObservations(ctx context.Context, opts ListOptions) ([]Record, error) {
	return c.list(ctx, endpoints.Observations, opts)
}

func (c *RESTClient) GetObservation(ctx context.Context, id string) (Record, error) {
	return c.get(ctx, endpoints.Observations.Sub(id), nil)
}
