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

// TestConnection lists a single trace. A nil error means the host is
// reachable and the keys are accepted.
func (c *RESTClient) TestConnection(ctx context.Context) error {
	var params Params
	params.AddInt("limit", 1)
	_, err := c.GetPage(ctx, endpoints.Traces, params)
	return err
}

// Compile-time check that RESTClient satisfies both interfaces.
var (
	_ Client     = (*RESTClient)(nil)
	_ PageGetter = (*RESTClient)(nil)
)
