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

// Package timerange parses the timestamp arguments accepted by list and
// metrics commands. A value is either a relative duration counted back from
// now ("90m", "7d", "1w2d") or an absolute date in any common layout. The
// result is always an RFC 3339 UTC string, which is what the API expects.
package timerange

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/xhit/go-str2duration/v2"
)

// Parse converts value to an RFC 3339 timestamp relative to now.
func Parse(value string, now time.Time) (string, error) {
	t, err := ParseTime(value, now)
	if err != nil {
		return "", err
	}
	return t.UTC().Format(time.RFC3339), nil
}

// ParseTime converts value to a time. Relative durations are subtracted
// from now. Absolute values without a zone are interpreted as UTC.
func ParseTime(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("timestamp cannot be empty")
	}

	if d, err := str2duration.ParseDuration(value); err == nil {
		if d < 0 {
			return time.Time{}, fmt.Errorf("relative timestamp %q must not be negative", value)
		}
		return now.Add(-d), nil
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: use RFC 3339 (2024-01-15T10:30:00Z), a date (2024-01-15) or a relative duration (7d, 12h)", value)
	}
	return t, nil
}
