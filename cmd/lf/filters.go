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

package main

import (
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
	"github.com/sirseerhq/langfuse-cli/internal/langfuse"
	"github.com/sirseerhq/langfuse-cli/internal/timerange"
)

// listFlags are the pagination flags of every list command.
type listFlags struct {
	limit int
	page  int
}

func addListFlags(cmd *cobra.Command, lf *listFlags) {
	cmd.Flags().IntVarP(&lf.limit, "limit", "l", langfuse.DefaultLimit, "Maximum number of records to return")
	cmd.Flags().IntVarP(&lf.page, "page", "p", 1, "Page to start from")
}

// options validates the pagination flags and builds the list options.
func (lf listFlags) options(filters langfuse.Params, progress langfuse.ProgressFunc) (langfuse.ListOptions, error) {
	if lf.limit < 1 {
		return langfuse.ListOptions{}, lferrors.NewConfigurationError("--limit must be at least 1, got %d", lf.limit)
	}
	if lf.page < 1 {
		return langfuse.ListOptions{}, lferrors.NewConfigurationError("--page must be at least 1, got %d", lf.page)
	}
	return langfuse.ListOptions{
		Limit:    lf.limit,
		Page:     lf.page,
		Filters:  filters,
		Progress: progress,
	}, nil
}

// filterBuilder turns filter flags into query parameters in the order they
// are added. The first invalid value is kept and reported by build.
type filterBuilder struct {
	cmd    *cobra.Command
	now    time.Time
	params langfuse.Params
	err    error
}

func (a *app) filters(cmd *cobra.Command) *filterBuilder {
	return &filterBuilder{cmd: cmd, now: a.now()}
}

// str adds a string flag under its lowerCamel name (--user-id becomes userId).
func (b *filterBuilder) str(flag string) *filterBuilder {
	return b.strAs(flag, strcase.ToLowerCamel(flag))
}

// strAs adds a string flag under an explicit parameter name.
func (b *filterBuilder) strAs(flag, param string) *filterBuilder {
	if value := b.value(flag); value != "" {
		b.params.Add(param, value)
	}
	return b
}

// all adds one parameter per value of a repeatable flag.
func (b *filterBuilder) all(flag string) *filterBuilder {
	if b.err != nil {
		return b
	}
	values, err := b.cmd.Flags().GetStringSlice(flag)
	if err != nil {
		b.err = err
		return b
	}
	b.params.AddAll(strcase.ToLowerCamel(flag), values)
	return b
}

// enum upper-cases the flag value and checks it against allowed.
func (b *filterBuilder) enum(flag string, allowed []string) *filterBuilder {
	value := strings.ToUpper(b.value(flag))
	if value == "" || b.err != nil {
		return b
	}
	for _, candidate := range allowed {
		if value == candidate {
			b.params.Add(strcase.ToLowerCamel(flag), value)
			return b
		}
	}
	b.err = lferrors.NewConfigurationError("invalid --%s %q (expected one of %s)", flag, value, strings.Join(allowed, ", "))
	return b
}

// timestamp parses a timestamp flag and adds it as RFC 3339 UTC.
func (b *filterBuilder) timestamp(flag, param string) *filterBuilder {
	value := b.value(flag)
	if value == "" || b.err != nil {
		return b
	}
	ts, err := timerange.Parse(value, b.now)
	if err != nil {
		b.err = &lferrors.ConfigurationError{Detail: "invalid --" + flag, Err: err}
		return b
	}
	b.params.Add(param, ts)
	return b
}

func (b *filterBuilder) value(flag string) string {
	if b.err != nil {
		return ""
	}
	value, err := b.cmd.Flags().GetString(flag)
	if err != nil {
		b.err = err
		return ""
	}
	return strings.TrimSpace(value)
}

func (b *filterBuilder) build() (langfuse.Params, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.params, nil
}

// parseTimestamp converts an optional timestamp flag value for request bodies.
func (a *app) parseTimestamp(flag, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	ts, err := timerange.Parse(value, a.now())
	if err != nil {
		return "", &lferrors.ConfigurationError{Detail: "invalid --" + flag, Err: err}
	}
	return ts, nil
}
