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
	"context"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/langfuse-cli/internal/langfuse"
	"github.com/sirseerhq/langfuse-cli/internal/output"
)

// relatedLimit caps the children fetched by --with-observations and
// --with-traces.
const relatedLimit = 100

// traceWithObservations is rendered by 'traces get --with-observations'.
type traceWithObservations struct {
	Trace        langfuse.Record   `json:"trace"`
	Observations []langfuse.Record `json:"observations"`
}

func newTracesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traces",
		Short: "List and inspect traces",
	}
	cmd.AddCommand(newTracesListCommand(a), newTracesGetCommand(a))
	return cmd
}

func newTracesListCommand(a *app) *cobra.Command {
	var pages listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List traces",
		Long: `List traces, newest first.

Timestamps accept RFC 3339, a plain date, or a duration counted back from
now such as 90m, 7d or 1w2d.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := a.filters(cmd).
				str("name").
				str("user-id").
				str("session-id").
				all("tags").
				timestamp("from", "fromTimestamp").
				timestamp("to", "toTimestamp").
				build()
			if err != nil {
				return err
			}
			return a.runList(cmd.Context(), langfuse.Client.ListTraces, pages, filters)
		},
	}

	cmd.Flags().String("name", "", "Filter by trace name")
	cmd.Flags().String("user-id", "", "Filter by user ID")
	cmd.Flags().String("session-id", "", "Filter by session ID")
	cmd.Flags().StringSlice("tags", nil, "Filter by tag (repeatable)")
	cmd.Flags().String("from", "", "Only traces at or after this time")
	cmd.Flags().String("to", "", "Only traces before this time")
	addListFlags(cmd, &pages)

	return cmd
}

func newTracesGetCommand(a *app) *cobra.Command {
	var withObservations bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get a trace by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !withObservations {
				return a.runGet(cmd.Context(), langfuse.Client.GetTrace, args[0], output.FormatTable)
			}
			return runTraceWithObservations(cmd.Context(), a, args[0])
		},
	}

	cmd.Flags().BoolVar(&withObservations, "with-observations", false, "Include the trace's observations")

	return cmd
}

func runTraceWithObservations(ctx context.Context, a *app, id string) error {
	format, err := a.outputFormat(output.FormatTable)
	if err != nil {
		return err
	}
	client, err := a.client()
	if err != nil {
		return err
	}

	trace, err := client.GetTrace(ctx, id)
	if err != nil {
		return err
	}

	var filters langfuse.Params
	filters.Add("traceId", id)
	observations, err := client.ListObservations(ctx, langfuse.ListOptions{
		Limit:   relatedLimit,
		Filters: filters,
	})
	if err != nil {
		return err
	}

	return a.render(traceWithObservations{Trace: trace, Observations: observations}, format)
}
