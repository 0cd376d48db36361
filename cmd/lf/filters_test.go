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
	"bytes"
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
	"github.com/sirseerhq/langfuse-cli/internal/langfuse"
)

func newFilterCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("user-id", "", "")
	cmd.Flags().String("type", "", "")
	cmd.Flags().String("from", "", "")
	cmd.Flags().StringSlice("tags", nil, "")
	require.NoError(t, cmd.Flags().Parse(args))
	return cmd
}

func TestFilterBuilder(t *testing.T) {
	te := newTestEnv(t, nil)
	cmd := newFilterCommand(t, "--user-id", " alice ", "--type", "span", "--tags", "a,b", "--from", "2h")

	params, err := te.app.filters(cmd).
		str("user-id").
		enum("type", langfuse.ObservationTypes).
		all("tags").
		timestamp("from", "fromStartTime").
		build()
	require.NoError(t, err)

	assert.Equal(t, langfuse.Params{
		{Name: "userId", Value: "alice"},
		{Name: "type", Value: "SPAN"},
		{Name: "tags", Value: "a"},
		{Name: "tags", Value: "b"},
		{Name: "fromStartTime", Value: "2025-06-15T10:00:00Z"},
	}, params)
}

func TestFilterBuilderSkipsUnsetFlags(t *testing.T) {
	te := newTestEnv(t, nil)
	cmd := newFilterCommand(t)

	params, err := te.app.filters(cmd).
		str("user-id").
		enum("type", langfuse.ObservationTypes).
		all("tags").
		timestamp("from", "fromTimestamp").
		build()
	require.NoError(t, err)
	assert.Empty(t, params)
}

func TestFilterBuilderKeepsFirstError(t *testing.T) {
	te := newTestEnv(t, nil)
	cmd := newFilterCommand(t, "--type", "tool", "--from", "not a time")

	_, err := te.app.filters(cmd).
		enum("type", langfuse.ObservationTypes).
		timestamp("from", "fromTimestamp").
		build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, lferrors.ErrConfiguration))
	assert.Contains(t, err.Error(), "--type")
}

func TestListFlagsOptions(t *testing.T) {
	progress := func(page, fetched int) {}

	opts, err := listFlags{limit: 75, page: 2}.options(langfuse.Params{{Name: "name", Value: "x"}}, progress)
	require.NoError(t, err)
	assert.Equal(t, 75, opts.Limit)
	assert.Equal(t, 2, opts.Page)
	assert.Len(t, opts.Filters, 1)
	assert.NotNil(t, opts.Progress)

	_, err = listFlags{limit: -1, page: 1}.options(nil, nil)
	assert.Error(t, err)
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer

	p := &progress{w: &buf, enabled: true}
	p.update(1, 100)
	p.update(2, 150)
	p.done()
	assert.Equal(t, "\rFetching page 1... (100 records)\rFetching page 2... (150 records)\r\033[K", buf.String())

	buf.Reset()
	p = &progress{w: &buf}
	p.update(1, 100)
	p.done()
	assert.Empty(t, buf.String(), "disabled progress prints nothing")
}

func TestProgressDisabledWhenVerbose(t *testing.T) {
	te := newTestEnv(t, nil)
	te.app.isTerminal = func() bool { return true }

	assert.True(t, te.app.newProgress().enabled)

	te.app.flags.verbose = true
	assert.False(t, te.app.newProgress().enabled)
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		env     map[string]string
		want    hclog.Level
	}{
		{name: "default", want: hclog.Warn},
		{name: "verbose", verbose: true, want: hclog.Debug},
		{name: "env override", env: map[string]string{envLogLevel: "trace"}, want: hclog.Trace},
		{name: "env beats verbose", verbose: true, env: map[string]string{envLogLevel: "error"}, want: hclog.Error},
		{name: "unknown env level ignored", env: map[string]string{envLogLevel: "loud"}, want: hclog.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := newTestEnv(t, tt.env)
			te.app.flags.verbose = tt.verbose

			te.app.setupLogger()
			assert.Equal(t, tt.want, te.app.logger.GetLevel())
		})
	}
}
