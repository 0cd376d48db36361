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

// Package main implements the lf command-line interface.
// lf queries and manages data in a Langfuse project through its public
// REST API and renders the results for terminals and scripts.
//
// The CLI supports:
//   - Listing traces, sessions, observations, scores, prompts, datasets,
//     dataset items and dataset runs with automatic pagination
//   - Fetching single records, optionally with their related records
//   - Creating scores, prompt versions, datasets and dataset items
//   - Metrics aggregation queries
//   - Table, JSON, CSV and Markdown output to stdout or a file
//   - Named credential profiles with flag and environment overrides
//
// Usage:
//
//	lf <resource> <action> [flags]
//
// Example:
//
//	export LANGFUSE_PUBLIC_KEY=pk-lf-...
//	export LANGFUSE_SECRET_KEY=sk-lf-...
//	lf traces list --from 24h --user-id alice --format csv --output traces.csv
//
// Exit codes:
//   - 0: Success
//   - 1: General error (configuration, validation, API or parse errors)
//   - 2: Authentication, not found or rate limit error
//   - 3: Network error or timeout
package main
