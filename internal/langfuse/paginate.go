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

	"github.com/hashicorp/go-hclog"

	"github.com/sirseerhq/langfuse-cli/internal/metadata"
)

// Reasons a pagination loop stopped, reported in the debug summary.
const (
	stopLimit     = "limit reached"
	stopLastPage  = "last page"
	stopEmptyPage = "empty page"
	stopShortPage = "short page"
)

// Paginate fetches pages from endpoint until opts.Limit records have been
// collected or the server runs out of data. Records keep server order and
// the result never exceeds the limit. Any error aborts the whole fetch and
// no partial result is returned.
func Paginate(ctx context.Context, getter PageGetter, endpoint Endpoint, opts ListOptions, logger hclog.Logger) ([]Record, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	pageSize := limit
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	current := opts.Page
	if current < 1 {
		current = 1
	}

	tracker := metadata.New()
	records := make([]Record, 0, pageSize)
	var reason string

	for {
		params := make(Params, 0, len(opts.Filters)+2)
		params.AddInt("limit", pageSize)
		params.AddInt("page", current)
		params = append(params, opts.Filters...)

		tracker.IncrementRequest()
		page, err := getter.GetPage(ctx, endpoint, params)
		if err != nil {
			logger.Debug("pagination aborted", "endpoint", endpoint.String(), "page", current, "error", err)
			return nil, err
		}

		totalPages, hasTotal := page.totalPages()
		tracker.RecordPage(current, len(page.Data), page.totalItems(), totalPages)
		records = append(records, page.Data...)

		logger.Debug("fetched page",
			"endpoint", endpoint.String(),
			"page", current,
			"records", len(page.Data),
			"accumulated", len(records),
		)
		if opts.Progress != nil {
			opts.Progress(current, len(records))
		}

		if len(records) >= limit {
			records = records[:limit]
			reason = stopLimit
			break
		}
		if hasTotal && current >= totalPages {
			reason = stopLastPage
			break
		}
		if len(page.Data) == 0 {
			reason = stopEmptyPage
			break
		}
		if !hasTotal && len(page.Data) < pageSize {
			reason = stopShortPage
			break
		}

		current++
	}

	summary := tracker.Summarize(endpoint.String(), len(records), reason)
	logger.Debug(summary.String())

	return records, nil
}
