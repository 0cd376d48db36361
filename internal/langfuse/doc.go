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

// Package langfuse provides a client for the Langfuse public REST API.
// Every resource operation funnels through one authenticated request engine
// that applies Basic authentication, enforces fixed timeouts and classifies
// each outcome into the typed errors of the internal/errors package. List
// operations go through a pagination driver that accumulates pages until
// the caller's limit or the server's last page is reached.
//
// The package includes:
//   - A Client interface covering traces, sessions, observations, scores,
//     metrics, prompts and datasets
//   - RESTClient, the net/http implementation
//   - Paginate, the page accumulation loop shared by all list operations
//   - MockClient for testing command code without a server
//
// Records are kept as raw JSON so that rendering sees exactly what the
// server sent.
//
// Basic usage:
//
//	client, err := langfuse.NewRESTClient(creds, langfuse.WithLogger(logger))
//	if err != nil {
//	    // Missing keys or host
//	}
//	traces, err := client.ListTraces(ctx, langfuse.ListOptions{Limit: 20})
//	if err != nil {
//	    // Handle error
//	}
//	for _, trace := range traces {
//	    // Process raw JSON record
//	}
//
// No operation is retried. A RateLimitError is returned to the caller as is.
package langfuse
