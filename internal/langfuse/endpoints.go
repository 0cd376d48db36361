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
	"net/url"
	"strings"
)

// APIVersion selects the base path namespace of an endpoint.
type APIVersion int

const (
	// V1 endpoints live under {host}/api/public.
	V1 APIVersion = iota
	// V2 endpoints live under {host}/api/public/v2.
	V2
)

// basePath returns the path prefix for the version.
func (v APIVersion) basePath() string {
	if v == V2 {
		return "/api/public/v2"
	}
	return "/api/public"
}

// Endpoint is a path within one of the API namespaces.
type Endpoint struct {
	Version APIVersion
	Path    string
}

// Sub returns the endpoint extended by path-escaped segments.
func (e Endpoint) Sub(segments ...string) Endpoint {
	var b strings.Builder
	b.WriteString(e.Path)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return Endpoint{Version: e.Version, Path: b.String()}
}

// String returns the namespaced path, e.g. /api/public/v2/prompts.
func (e Endpoint) String() string {
	return e.Version.basePath() + e.Path
}

// endpoints is the static routing table. The namespace of each resource
// is fixed here and not configurable by callers.
var endpoints = struct {
	Traces       Endpoint
	Sessions     Endpoint
	Observations Endpoint
	Scores       Endpoint
	Metrics      Endpoint

	// v2 API endpoints
	Prompts  Endpoint
	Datasets Endpoint

	// Dataset items and runs remain on v1
	DatasetItems   Endpoint
	DatasetsLegacy Endpoint
}{
	Traces:       Endpoint{V1, "/traces"},
	Sessions:     Endpoint{V1, "/sessions"},
	Observations: Endpoint{V1, "/observations"},
	Scores:       Endpoint{V1, "/scores"},
	Metrics:      Endpoint{V1, "/metrics"},

	Prompts:  Endpoint{V2, "/prompts"},
	Datasets: Endpoint{V2, "/datasets"},

	DatasetItems:   Endpoint{V1, "/dataset-items"},
	DatasetsLegacy: Endpoint{V1, "/datasets"},
}
