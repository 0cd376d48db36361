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

// Package metadata tracks statistics about a paginated fetch: how many
// requests were issued, how many records each page contributed, what the
// server reported as its total, and how long the whole operation took.
//
// The pagination driver creates one Tracker per list operation and the CLI
// prints the resulting summary in verbose mode. Nothing is persisted.
package metadata

import (
	"fmt"
	"time"
)

// Tracker collects statistics during a fetch operation. Create a new
// tracker at the start of each list operation and call its methods as
// pages arrive. A Tracker is not safe for concurrent use; pagination is
// strictly sequential.
type Tracker struct {
	startTime    time.Time
	now          func() time.Time
	requestCount int
	pageStats    PageStats
}

// PageStats holds the running page and record counts for one fetch.
type PageStats struct {
	FirstPage    int // Page number of the first request
	LastPage     int // Page number of the most recent response
	Records      int // Records received before truncation
	ServerTotal  int // totalItems reported by the server, 0 if unknown
	ServerPages  int // totalPages reported by the server, 0 if unknown
	ShortestPage int // Fewest records seen on a single page
}

// FetchSummary is the final record of a fetch operation.
type FetchSummary struct {
	Endpoint    string        `json:"endpoint"`
	Requests    int           `json:"requests"`
	Pages       PageStats     `json:"pages"`
	Returned    int           `json:"returned"`
	Truncated   bool          `json:"truncated"`
	Duration    time.Duration `json:"duration"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
	StopReason  string        `json:"stop_reason"`
}

// New creates a new tracker and initializes it with the current time.
func New() *Tracker {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Tracker {
	return &Tracker{
		startTime: now(),
		now:       now,
		pageStats: PageStats{ShortestPage: -1},
	}
}

// IncrementRequest records that an API call was issued.
func (t *Tracker) IncrementRequest() {
	t.requestCount++
}

// Requests returns the number of API calls recorded so far.
func (t *Tracker) Requests() int {
	return t.requestCount
}

// RecordPage updates the running statistics with one page of results.
// totalItems and totalPages are zero when the server omitted them.
func (t *Tracker) RecordPage(page, records, totalItems, totalPages int) {
	if t.pageStats.FirstPage == 0 || page < t.pageStats.FirstPage {
		t.pageStats.FirstPage = page
	}
	if page > t.pageStats.LastPage {
		t.pageStats.LastPage = page
	}

	t.pageStats.Records += records
	if t.pageStats.ShortestPage < 0 || records < t.pageStats.ShortestPage {
		t.pageStats.ShortestPage = records
	}

	if totalItems > 0 {
		t.pageStats.ServerTotal = totalItems
	}
	if totalPages > 0 {
		t.pageStats.ServerPages = totalPages
	}
}

// Stats returns a copy of the running page statistics.
func (t *Tracker) Stats() PageStats {
	stats := t.pageStats
	if stats.ShortestPage < 0 {
		stats.ShortestPage = 0
	}
	return stats
}

// Summarize produces the final summary. returned is the number of records
// handed back to the caller after truncation.
func (t *Tracker) Summarize(endpoint string, returned int, stopReason string) *FetchSummary {
	completedAt := t.now()
	stats := t.Stats()

	return &FetchSummary{
		Endpoint:    endpoint,
		Requests:    t.requestCount,
		Pages:       stats,
		Returned:    returned,
		Truncated:   returned < stats.Records,
		Duration:    completedAt.Sub(t.startTime),
		StartedAt:   t.startTime,
		CompletedAt: completedAt,
		StopReason:  stopReason,
	}
}

// String renders the summary as a single human readable line.
func (s *FetchSummary) String() string {
	pages := s.Pages.LastPage - s.Pages.FirstPage + 1
	if s.Pages.LastPage == 0 {
		pages = 0
	}

	line := fmt.Sprintf("%s: %d records from %d page(s) in %d request(s), %s",
		s.Endpoint, s.Returned, pages, s.Requests, s.Duration.Round(time.Millisecond))
	if s.Pages.ServerTotal > 0 {
		line += fmt.Sprintf(", server reports %d total", s.Pages.ServerTotal)
	}
	if s.StopReason != "" {
		line += " (" + s.StopReason + ")"
	}
	return line
}
